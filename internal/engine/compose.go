package engine

import (
	"strings"

	"krishisahay/internal/models"
)

// templateTable holds the candidate sets for entity answers of one kind.
// specific is keyed by intent then knowledge base key; generic is keyed by
// intent and interpolates the entity's display name and fact.
type templateTable struct {
	specific map[Intent]map[string][]string
	generic  map[Intent][]string
}

// candidates returns the most specific non-empty set for the intent and key.
func (t templateTable) candidates(intent Intent, key string) []string {
	if set := t.specific[intent][key]; len(set) > 0 {
		return set
	}
	if set := t.generic[intent]; len(set) > 0 {
		return set
	}
	return t.generic[IntentGeneral]
}

// unknownCategoryAnswer is used only when a caller skips category validation.
const unknownCategoryAnswer = "Please ask about crops, pests or fertilizers so we can give specific guidance."

// Compose builds the answer text. It never returns an empty string.
func (e *Engine) Compose(cat models.Category, ent Entity, intent Intent, query string) string {
	if ent.Found() {
		return e.composeEntity(cat, ent, intent, query)
	}

	switch cat {
	case models.CategoryCrops:
		set := cropTopicTemplates[intent]
		if len(set) == 0 {
			set = cropTopicTemplates[IntentGrow]
		}
		return pick(set, query) + pick(cropSuggestions, query)
	case models.CategoryPests:
		return pick(topicSet(pestTopicTemplates, intent), query)
	case models.CategoryFertilizers:
		return pick(topicSet(fertilizerTopicTemplates, intent), query)
	}
	return unknownCategoryAnswer
}

func (e *Engine) composeEntity(cat models.Category, ent Entity, intent Intent, query string) string {
	var table templateTable
	var factCat models.Category

	switch {
	case cat == models.CategoryCrops && ent.Kind == KindCrop:
		table, factCat = cropTable, models.CategoryCrops
	case cat == models.CategoryPests && ent.Kind == KindPest:
		table, factCat = pestTable, models.CategoryPests
	case cat == models.CategoryFertilizers && ent.Kind == KindNutrient:
		table, factCat = nutrientTable, models.CategoryFertilizers
	case cat == models.CategoryFertilizers && ent.Kind == KindCrop:
		table, factCat = cropFertilizerTable, models.CategoryCrops
	default:
		return unknownCategoryAnswer
	}

	fact, _ := e.kb.Fact(factCat, ent.Key)
	answer := render(pick(table.candidates(intent, ent.Key), query), ent.DisplayName(), fact)

	if cat == models.CategoryPests {
		answer += pick(pestTips, query)
	}
	return answer
}

func topicSet(sets map[Intent][]string, intent Intent) []string {
	if set := sets[intent]; len(set) > 0 {
		return set
	}
	return sets[IntentGeneral]
}

func pick(set []string, query string) string {
	return set[Select(query, len(set))]
}

func render(tpl, name, fact string) string {
	return strings.NewReplacer("{fact}", fact, "{name}", name).Replace(tpl)
}
