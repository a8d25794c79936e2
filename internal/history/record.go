package history

import (
	"github.com/google/uuid"

	"krishisahay/internal/engine"
	"krishisahay/internal/models"
)

// NewRecord builds the history record for an answered query.
func NewRecord(userID uuid.UUID, query string, res engine.Result) *models.QueryRecord {
	return &models.QueryRecord{
		UserID:   userID,
		Category: res.Category,
		Query:    query,
		Answer:   res.Answer,
		Entity:   res.Entity.Key,
		Intent:   string(res.Intent),
	}
}
