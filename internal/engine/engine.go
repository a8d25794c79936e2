// Package engine resolves free-text agricultural questions to a deterministic,
// pre-authored answer.
//
// A query goes through three stages: entity extraction (which crop, pest or
// nutrient is mentioned), intent classification (ordered keyword rules, first
// match wins) and composition (a candidate set is chosen from the entity and
// intent, and Select picks one phrasing from it using the query text).
// Every stage has a default, so every query gets an answer.
package engine

import (
	"errors"
	"strings"

	"krishisahay/internal/knowledge"
	"krishisahay/internal/models"
)

// Options tune engine behavior.
type Options struct {
	// FirstMatchBuckets makes the fallback topic for crop queries without a
	// named crop use the first matching bucket instead of the last.
	FirstMatchBuckets bool
}

// Result is the outcome of answering one query.
type Result struct {
	Category models.Category
	Entity   Entity
	Intent   Intent
	Answer   string
}

// Engine answers queries against a knowledge base. It holds no mutable state
// and is safe for concurrent use.
type Engine struct {
	kb   *knowledge.Base
	opts Options

	crops     []string
	pests     []string
	nutrients []string
}

// New creates an engine over kb.
func New(kb *knowledge.Base, opts Options) (*Engine, error) {
	if kb == nil {
		return nil, errors.New("engine: knowledge base is required")
	}
	return &Engine{
		kb:        kb,
		opts:      opts,
		crops:     kb.CropMentions(),
		pests:     kb.PestMentions(),
		nutrients: kb.NutrientMentions(),
	}, nil
}

// Knowledge returns the knowledge base the engine answers from.
func (e *Engine) Knowledge() *knowledge.Base {
	return e.kb
}

// Answer runs extraction, classification and composition for query.
func (e *Engine) Answer(cat models.Category, query string) Result {
	ent := e.Extract(query, cat)
	intent := e.Classify(query, cat, ent)
	return Result{
		Category: cat,
		Entity:   ent,
		Intent:   intent,
		Answer:   e.Compose(cat, ent, intent, query),
	}
}

// Classify picks the intent of query. Which rule set applies depends on the
// category and on what kind of entity, if any, was extracted.
func (e *Engine) Classify(query string, cat models.Category, ent Entity) Intent {
	lower := strings.ToLower(query)

	switch cat {
	case models.CategoryCrops:
		if ent.Found() {
			return cropRules.first(lower, IntentGeneral)
		}
		if e.opts.FirstMatchBuckets {
			return cropBuckets.first(lower, IntentGrow)
		}
		return cropBuckets.last(lower, IntentGrow)

	case models.CategoryPests:
		if ent.Found() {
			return pestRules.first(lower, IntentGeneral)
		}
		return pestTopicRules.first(lower, IntentGeneral)

	case models.CategoryFertilizers:
		switch ent.Kind {
		case KindNutrient:
			return nutrientRules.first(lower, IntentGeneral)
		case KindCrop:
			return cropFertilizerRules.first(lower, IntentGeneral)
		}
		return fertilizerTopicRules.first(lower, IntentGeneral)
	}
	return IntentGeneral
}
