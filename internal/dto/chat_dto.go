package dto

type ChatRequest struct {
	Message   string        `json:"message" validate:"required"`
	Model     string        `json:"model,omitempty"`
	SessionID string        `json:"session_id,omitempty"`
	History   []SessionTurn `json:"history,omitempty"`
}

type ChatResponse struct {
	Response     string `json:"response"`
	Intent       string `json:"intent"`
	UsedDatabase bool   `json:"used_database"`
	Model        string `json:"model"`
	SessionID    string `json:"session_id,omitempty"`
	HasContext   bool   `json:"has_context"`
}

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

type SessionTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type SessionHistoryResponse struct {
	SessionID string        `json:"session_id"`
	Total     int           `json:"total"`
	History   []SessionTurn `json:"history"`
}

type ListSessionsResponse struct {
	Total    int      `json:"total"`
	Sessions []string `json:"sessions"`
}

type SessionStatsResponse struct {
	SessionID       string `json:"session_id"`
	TotalMessages   int    `json:"total_messages"`
	DurationMinutes int    `json:"duration_minutes"`
	CreatedAt       string `json:"created_at"`
	LastActivity    string `json:"last_activity"`
}

type ModelInfoResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Provider    string `json:"provider"`
}

type ListModelsResponse struct {
	Total  int                 `json:"total"`
	Models []ModelInfoResponse `json:"models"`
}
