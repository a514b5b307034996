// internal/app/policy/discussionpolicy/discussionpolicy.go
package discussionpolicy

import (
	"github.com/huddlehq/huddle/internal/domain/models"
)

// CanParticipate reports whether the user may read or post in a
// discussion owned by the given group. Membership is checked against the
// group's live member set, not the participants snapshot, so leaving a
// group revokes access immediately. A nil group means the discussion
// predates group ownership and is open to any caller.
func CanParticipate(g *models.Group, userID string) bool {
	if g == nil {
		return true
	}
	return g.HasMember(userID)
}
