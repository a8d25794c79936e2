package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"krishisahay/internal/db"
	"krishisahay/internal/engine"
	"krishisahay/internal/history"
	"krishisahay/internal/models"
	"krishisahay/internal/validation"
)

// Answerer resolves a query to an answer.
type Answerer interface {
	Answer(cat models.Category, query string) engine.Result
}

// Recorder accepts answered queries for background persistence.
type Recorder interface {
	Record(rec *models.QueryRecord) bool
}

// HistoryReader reads a user's past queries.
type HistoryReader interface {
	ListQueryRecordsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.QueryRecord, error)
	GetQueryRecord(ctx context.Context, userID, id uuid.UUID) (*models.QueryRecord, error)
}

// QueryHandler answers queries and lists query history via JSON API.
type QueryHandler struct {
	engine   Answerer
	recorder Recorder
	history  HistoryReader
}

// NewQueryHandler creates a new API query handler.
func NewQueryHandler(answerer Answerer, recorder Recorder, reader HistoryReader) *QueryHandler {
	return &QueryHandler{engine: answerer, recorder: recorder, history: reader}
}

// Ask answers a query in the category named by the route.
func (h *QueryHandler) Ask(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	cat, ok := categoryParam(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid category")
	}

	var body models.AskRequest
	if raw := c.Body(); len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return jsonError(c, fiber.StatusBadRequest, "invalid request body")
		}
	}

	if valid, msg := validation.ValidateQuery(body.Query); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	query := validation.NormalizeQuery(body.Query)

	res := h.engine.Answer(cat, query)

	// Recording never delays the answer.
	h.recorder.Record(history.NewRecord(user.ID, query, res))

	return jsonSuccess(c, models.AskResponse{
		Query:    query,
		Answer:   res.Answer,
		Category: cat,
		Entity:   res.Entity.Key,
		Intent:   string(res.Intent),
	})
}

// History returns the current user's recent queries, newest first.
func (h *QueryHandler) History(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit := validation.ParseLimit(c.Query("limit"))
	records, err := h.history.ListQueryRecordsByUser(c.Context(), user.ID, limit)
	if err != nil {
		slog.Error("failed to list query history", "user_id", user.ID, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch history")
	}

	items := make([]models.HistoryItem, 0, len(records))
	for _, r := range records {
		items = append(items, models.HistoryItem{
			ID:        r.ID,
			Category:  r.Category,
			Query:     r.Query,
			Answer:    r.Answer,
			CreatedAt: r.CreatedAt,
		})
	}
	return jsonSuccess(c, items)
}

// GetRecord returns one of the current user's past queries.
func (h *QueryHandler) GetRecord(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	rec, err := h.history.GetQueryRecord(c.Context(), user.ID, id)
	if errors.Is(err, db.ErrQueryRecordNotFound) {
		return jsonError(c, fiber.StatusNotFound, "not found")
	}
	if err != nil {
		slog.Error("failed to get query record", "user_id", user.ID, "id", id, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch record")
	}

	return jsonSuccess(c, models.HistoryItem{
		ID:        rec.ID,
		Category:  rec.Category,
		Query:     rec.Query,
		Answer:    rec.Answer,
		CreatedAt: rec.CreatedAt,
	})
}
