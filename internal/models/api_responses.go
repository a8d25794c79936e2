package models

import (
	"time"

	"github.com/google/uuid"
)

// AskRequest is the body of a query submission.
type AskRequest struct {
	Query string `json:"query"`
}

// AskResponse contains the resolved answer for a query.
type AskResponse struct {
	Query    string   `json:"query"`
	Answer   string   `json:"answer"`
	Category Category `json:"category"`
	Entity   string   `json:"entity,omitempty"`
	Intent   string   `json:"intent"`
}

// HistoryItem is one entry of a user's query history.
type HistoryItem struct {
	ID        uuid.UUID `json:"id"`
	Category  Category  `json:"category"`
	Query     string    `json:"query"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// FactResponse contains a single knowledge base entry.
type FactResponse struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Key      string   `json:"key"`
	Fact     string   `json:"fact"`
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
