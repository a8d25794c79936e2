package models

import (
	"time"

	"github.com/google/uuid"
)

// QueryRecord is one answered query, persisted to the history log.
type QueryRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Category  Category  `json:"category"`
	Query     string    `json:"query"`
	Answer    string    `json:"answer"`
	Entity    string    `json:"entity,omitempty"` // KB key, empty when no entity was found
	Intent    string    `json:"intent"`
	CreatedAt time.Time `json:"created_at"`
}

// QueryStat is an aggregate count of recorded queries for metrics export.
type QueryStat struct {
	Category Category
	Intent   string
	Count    int64
}
