package store

import "time"

// Role tags for conversation turns
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Turn is a single message inside a conversation session
type Turn struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// Session represents the in-memory conversation state for one chat session.
// Sessions are a non-durable cache: a restart drops them all.
type Session struct {
	ID            string    `json:"session_id"`
	History       []Turn    `json:"history"`
	CreatedAt     time.Time `json:"created_at"`
	LastActivity  time.Time `json:"last_activity"`
	TotalMessages int       `json:"total_messages"`
}

// DurationMinutes returns how long the session has been alive, in whole minutes.
func (s *Session) DurationMinutes() int {
	return int(s.LastActivity.Sub(s.CreatedAt).Minutes())
}
