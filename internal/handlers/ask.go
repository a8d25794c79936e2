package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"krishisahay/internal/config"
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

// HistoryReader lists a user's past queries.
type HistoryReader interface {
	ListQueryRecordsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.QueryRecord, error)
}

// AskHandler serves the question form, answers and history pages.
type AskHandler struct {
	engine   Answerer
	recorder Recorder
	history  HistoryReader
	cfg      *config.Config
}

// NewAskHandler creates a new ask handler.
func NewAskHandler(answerer Answerer, recorder Recorder, reader HistoryReader, cfg *config.Config) *AskHandler {
	return &AskHandler{engine: answerer, recorder: recorder, history: reader, cfg: cfg}
}

// Index renders the question form.
func (h *AskHandler) Index(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	return c.Render("index", MergeBranding(fiber.Map{
		"Title":      "Ask",
		"User":       user,
		"Categories": models.Categories,
		"Category":   c.Query("category", string(models.CategoryCrops)),
	}, h.cfg))
}

// Ask answers the submitted question and renders it below the form.
func (h *AskHandler) Ask(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	data := fiber.Map{
		"Title":      "Ask",
		"User":       user,
		"Categories": models.Categories,
		"Category":   c.FormValue("category"),
		"Query":      c.FormValue("query"),
	}

	cat, ok := models.ParseCategory(c.FormValue("category"))
	if !ok {
		data["Error"] = "Please choose crops, pests or fertilizers."
		return c.Status(fiber.StatusBadRequest).Render("index", MergeBranding(data, h.cfg))
	}

	raw := c.FormValue("query")
	if valid, msg := validation.ValidateQuery(raw); !valid {
		data["Error"] = msg
		return c.Status(fiber.StatusBadRequest).Render("index", MergeBranding(data, h.cfg))
	}
	query := validation.NormalizeQuery(raw)

	res := h.engine.Answer(cat, query)
	h.recorder.Record(history.NewRecord(user.ID, query, res))

	data["Query"] = query
	data["Answer"] = res.Answer
	data["Entity"] = res.Entity.DisplayName()
	return c.Render("index", MergeBranding(data, h.cfg))
}

// History renders the current user's recent questions.
func (h *AskHandler) History(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	records, err := h.history.ListQueryRecordsByUser(c.Context(), user.ID, validation.ParseLimit(c.Query("limit")))
	if err != nil {
		slog.Error("failed to list query history", "user_id", user.ID, "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not load your history")
	}

	return c.Render("history", MergeBranding(fiber.Map{
		"Title":   "History",
		"User":    user,
		"Records": records,
	}, h.cfg))
}

// Login renders the login page, or the signed-in state when a user is
// already known.
func (h *AskHandler) Login(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	return c.Render("login", MergeBranding(fiber.Map{
		"Title": "Sign in",
		"User":  user,
	}, h.cfg))
}
