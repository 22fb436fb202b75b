package models

// ChatRequest is an incoming customer message bound to a session.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ChatResponse carries the agent's reply plus the order state after the
// message was applied.
type ChatResponse struct {
	Message     string   `json:"message"`
	Order       Order    `json:"order"`
	Suggestions []string `json:"suggestions"`
}

// SessionStartResponse is returned when a new order session begins.
type SessionStartResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// CompletedOrder is the finalized order summary returned on completion.
type CompletedOrder struct {
	OrderID   string      `json:"order_id"`
	SessionID string      `json:"session_id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
}
