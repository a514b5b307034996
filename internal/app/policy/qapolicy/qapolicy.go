// internal/app/policy/qapolicy/qapolicy.go
package qapolicy

import (
	"github.com/huddlehq/huddle/internal/domain/models"
)

// CanAcceptAnswer reports whether the user may mark answers on the
// question as accepted. Only the question's author can.
func CanAcceptAnswer(q models.Question, userID string) bool {
	return q.UserID != "" && q.UserID == userID
}
