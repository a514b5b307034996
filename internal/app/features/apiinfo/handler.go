// internal/app/features/apiinfo/handler.go
package apiinfo

import (
	"net/http"

	"github.com/huddlehq/huddle/internal/app/system/httpjson"
)

// Handler serves the static API capability listing that the front end and
// smoke tests probe.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Serve handles GET /test.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	httpjson.OK(w, map[string]any{
		"message": "The Huddle API is working!",
		"databases": map[string]any{
			"student_network_db": []string{"users", "groups", "posts", "questions", "discussions"},
			"chat_db":            []string{"chats"},
		},
		"endpoints": map[string]any{
			"auth":          []string{"/signup [POST]", "/login [POST]", "/logout [POST]", "/me [GET]"},
			"profile":       []string{"/updateprofile [POST]", "/getuser/{userID} [GET]"},
			"groups":        []string{"/getavailablegroups [GET/POST]", "/creategroup [POST]", "/joingroup [POST]", "/leavegroup [POST]", "/getmygroups [GET]"},
			"posts":         []string{"/createpost [POST]", "/getposts [GET]"},
			"qa":            []string{"/createquestion [POST]", "/getquestions [GET]", "/addanswer [POST]", "/votequestion [POST]", "/acceptanswer [POST]", "/voteanswer [POST]"},
			"discussions":   []string{"/getdiscussions [GET]", "/creatediscussion [POST]", "/getmessages/{discussionID} [GET]", "/sendmessage [POST]"},
			"chat":          []string{"/chat [POST]", "/chats [GET]"},
			"notifications": []string{"/getnotifications [GET]"},
			"utility":       []string{"/health [GET]", "/test [GET]"},
		},
	})
}
