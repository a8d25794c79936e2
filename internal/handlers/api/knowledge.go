package api

import (
	"github.com/gofiber/fiber/v3"

	"krishisahay/internal/knowledge"
	"krishisahay/internal/models"
	"krishisahay/internal/validation"
)

// KnowledgeHandler exposes the read-only knowledge base via JSON API.
type KnowledgeHandler struct {
	kb *knowledge.Base
}

// NewKnowledgeHandler creates a new API knowledge handler.
func NewKnowledgeHandler(kb *knowledge.Base) *KnowledgeHandler {
	return &KnowledgeHandler{kb: kb}
}

// Categories lists the categories queries can be asked in.
func (h *KnowledgeHandler) Categories(c fiber.Ctx) error {
	return jsonSuccess(c, models.Categories)
}

// List returns every fact in a category.
func (h *KnowledgeHandler) List(c fiber.Ctx) error {
	cat, ok := categoryParam(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid category")
	}

	facts, err := h.kb.Facts(cat)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid category")
	}
	return jsonSuccess(c, facts)
}

// Get returns one fact. Names are resolved the same way queries are, so
// "corn" finds maize and "aphid" finds aphids.
func (h *KnowledgeHandler) Get(c fiber.Ctx) error {
	cat, ok := categoryParam(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid category")
	}

	name := c.Params("name")
	if !validation.ValidateName(name) {
		return jsonError(c, fiber.StatusBadRequest, "invalid name")
	}

	key, ok := h.kb.Resolve(cat, name)
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "not found")
	}
	fact, _ := h.kb.Fact(cat, key)

	return jsonSuccess(c, models.FactResponse{
		Category: cat,
		Name:     name,
		Key:      key,
		Fact:     fact,
	})
}
