// Package notify synthesizes notification entries from current group
// membership facts. Nothing is persisted: every call derives the entries
// fresh from the groups passed in, so there is no read state and no
// deduplication across calls.
package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/huddlehq/huddle/internal/domain/models"
)

// Notification is one synthesized entry.
type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	Time      string `json:"time"`
	Content   string `json:"content"`
	Unread    bool   `json:"unread"`
	ActionURL string `json:"actionUrl"`
	CreatedAt string `json:"createdAt"`
}

// ForUser derives the notification list for a user from the groups they
// belong to: one "you joined" entry per group, a "new member" entry for
// groups the user created once membership exceeds one, and a trailing
// platform announcement.
func ForUser(userID string, groups []models.Group, now time.Time) []Notification {
	out := make([]Notification, 0, len(groups)*2+1)

	for _, g := range groups {
		gid := g.ID.Hex()
		name := strings.TrimSpace(g.ProjectName)
		if name == "" {
			name = "Unnamed Group"
		}
		createdAt := g.CreatedAt.UTC().Format(time.RFC3339)

		out = append(out, Notification{
			ID:        "group-" + gid,
			Type:      "group",
			Name:      name,
			Avatar:    avatarInitials(name),
			Time:      createdAt,
			Content:   fmt.Sprintf("You joined the group '%s'. Start collaborating!", name),
			Unread:    true,
			ActionURL: "mainpage.html#group-" + gid,
			CreatedAt: createdAt,
		})

		if g.CreatorUserID == userID && len(g.Members) > 1 {
			out = append(out, Notification{
				ID:        "member-" + gid,
				Type:      "activity",
				Name:      "New Member Alert",
				Avatar:    "👥",
				Time:      createdAt,
				Content:   fmt.Sprintf("Your group '%s' now has %d members!", name, len(g.Members)),
				Unread:    true,
				ActionURL: "mainpage.html#group-" + gid,
				CreatedAt: createdAt,
			})
		}
	}

	ts := now.UTC().Format(time.RFC3339)
	out = append(out, Notification{
		ID:        "system-qa-update",
		Type:      "activity",
		Name:      "Platform Update",
		Avatar:    "🎉",
		Time:      ts,
		Content:   "New Q&A features are now live! Try asking your first question.",
		Unread:    true,
		ActionURL: "qa.html",
		CreatedAt: ts,
	})

	return out
}

func avatarInitials(name string) string {
	r := []rune(strings.ToUpper(name))
	if len(r) >= 2 {
		return string(r[:2])
	}
	if len(r) == 1 {
		return string(r)
	}
	return "UG"
}
