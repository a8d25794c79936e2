package engine

import (
	"strings"

	"krishisahay/internal/models"
)

// EntityKind says which vocabulary an entity came from.
type EntityKind string

// Entity kinds
const (
	KindNone     EntityKind = ""
	KindCrop     EntityKind = "crop"
	KindPest     EntityKind = "pest"
	KindNutrient EntityKind = "nutrient"
)

// Entity is a crop, pest or nutrient recognized in a query.
type Entity struct {
	Kind EntityKind
	Name string // as mentioned, e.g. "corn"
	Key  string // knowledge base key, e.g. "maize"
}

// Found reports whether the extractor recognized anything.
func (e Entity) Found() bool {
	return e.Kind != KindNone
}

// DisplayName returns the mention with its first letter upper-cased.
func (e Entity) DisplayName() string {
	if e.Name == "" {
		return ""
	}
	return strings.ToUpper(e.Name[:1]) + e.Name[1:]
}

// Extract finds the entity a query refers to within the given category.
func (e *Engine) Extract(query string, cat models.Category) Entity {
	lower := strings.ToLower(query)

	switch cat {
	case models.CategoryCrops:
		return e.findCrop(lower)
	case models.CategoryPests:
		return e.findPest(lower)
	case models.CategoryFertilizers:
		if ent := e.findNutrient(lower); ent.Found() {
			return ent
		}
		return e.findCrop(lower)
	}
	return Entity{}
}

// findCrop returns the earliest crop in vocabulary order whose name, or its
// "s"/"es" plural, appears in the query.
func (e *Engine) findCrop(lower string) Entity {
	for _, name := range e.crops {
		if strings.Contains(lower, name) || strings.Contains(lower, name+"s") || strings.Contains(lower, name+"es") {
			key, _ := e.kb.ResolveCrop(name)
			return Entity{Kind: KindCrop, Name: name, Key: key}
		}
	}
	return Entity{}
}

func (e *Engine) findPest(lower string) Entity {
	for _, name := range e.pests {
		if strings.Contains(lower, name) {
			key, _ := e.kb.ResolvePest(name)
			return Entity{Kind: KindPest, Name: name, Key: key}
		}
	}
	return Entity{}
}

func (e *Engine) findNutrient(lower string) Entity {
	for _, name := range e.nutrients {
		if strings.Contains(lower, name) {
			key, _ := e.kb.ResolveNutrient(name)
			return Entity{Kind: KindNutrient, Name: name, Key: key}
		}
	}
	return Entity{}
}
