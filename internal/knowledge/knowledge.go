// Package knowledge holds the immutable agricultural knowledge base: fact
// strings per crop, pest and nutrient, the ordered mention vocabularies used
// for entity extraction, and the alias tables that map mentions to fact keys.
package knowledge

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"krishisahay/internal/models"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrMissingFact     = errors.New("mention has no knowledge entry")
	ErrEmptyFact       = errors.New("knowledge entry is empty")
)

// Data is the raw material a Base is built from. Mention lists are ordered:
// earlier entries win when a query mentions more than one.
type Data struct {
	Crops     map[string]string
	Pests     map[string]string
	Nutrients map[string]string

	CropMentions     []string
	PestMentions     []string
	NutrientMentions []string

	CropAliases     map[string]string
	PestAliases     map[string]string
	NutrientAliases map[string]string
}

// Base is a validated, read-only knowledge base. It is safe for concurrent use.
type Base struct {
	facts    map[models.Category]map[string]string
	aliases  map[models.Category]map[string]string
	crops    []string
	pests    []string
	nutrient []string
}

// New validates d and builds a Base from a private copy of it.
func New(d Data) (*Base, error) {
	b := &Base{
		facts: map[models.Category]map[string]string{
			models.CategoryCrops:       lowerKeys(d.Crops),
			models.CategoryPests:       lowerKeys(d.Pests),
			models.CategoryFertilizers: lowerKeys(d.Nutrients),
		},
		aliases: map[models.Category]map[string]string{
			models.CategoryCrops:       lowerKeys(d.CropAliases),
			models.CategoryPests:       lowerKeys(d.PestAliases),
			models.CategoryFertilizers: lowerKeys(d.NutrientAliases),
		},
		crops:    lowerAll(d.CropMentions),
		pests:    lowerAll(d.PestMentions),
		nutrient: lowerAll(d.NutrientMentions),
	}

	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// validate checks that every fact is non-empty and every mention resolves.
func (b *Base) validate() error {
	for cat, facts := range b.facts {
		for key, fact := range facts {
			if strings.TrimSpace(fact) == "" {
				return fmt.Errorf("%s/%s: %w", cat, key, ErrEmptyFact)
			}
		}
	}
	for _, name := range b.crops {
		if _, ok := b.ResolveCrop(name); !ok {
			return fmt.Errorf("crop %q: %w", name, ErrMissingFact)
		}
	}
	for _, name := range b.pests {
		if _, ok := b.ResolvePest(name); !ok {
			return fmt.Errorf("pest %q: %w", name, ErrMissingFact)
		}
	}
	for _, name := range b.nutrient {
		if _, ok := b.ResolveNutrient(name); !ok {
			return fmt.Errorf("nutrient %q: %w", name, ErrMissingFact)
		}
	}
	return nil
}

// WithFacts returns a new Base whose facts are b's facts overlaid with
// overrides. Vocabularies and aliases are unchanged.
func (b *Base) WithFacts(overrides map[models.Category]map[string]string) (*Base, error) {
	d := b.data()
	for cat, facts := range overrides {
		var dst map[string]string
		switch cat {
		case models.CategoryCrops:
			dst = d.Crops
		case models.CategoryPests:
			dst = d.Pests
		case models.CategoryFertilizers:
			dst = d.Nutrients
		default:
			return nil, fmt.Errorf("%q: %w", cat, ErrUnknownCategory)
		}
		maps.Copy(dst, lowerKeys(facts))
	}
	return New(d)
}

func (b *Base) data() Data {
	return Data{
		Crops:            maps.Clone(b.facts[models.CategoryCrops]),
		Pests:            maps.Clone(b.facts[models.CategoryPests]),
		Nutrients:        maps.Clone(b.facts[models.CategoryFertilizers]),
		CropMentions:     slices.Clone(b.crops),
		PestMentions:     slices.Clone(b.pests),
		NutrientMentions: slices.Clone(b.nutrient),
		CropAliases:      maps.Clone(b.aliases[models.CategoryCrops]),
		PestAliases:      maps.Clone(b.aliases[models.CategoryPests]),
		NutrientAliases:  maps.Clone(b.aliases[models.CategoryFertilizers]),
	}
}

// Fact returns the fact stored under key for the category.
// Fertilizer facts are keyed by nutrient.
func (b *Base) Fact(cat models.Category, key string) (string, bool) {
	fact, ok := b.facts[cat][key]
	return fact, ok
}

// Facts returns a copy of every fact in the category.
func (b *Base) Facts(cat models.Category) (map[string]string, error) {
	facts, ok := b.facts[cat]
	if !ok {
		return nil, fmt.Errorf("%q: %w", cat, ErrUnknownCategory)
	}
	return maps.Clone(facts), nil
}

// Keys returns the fact keys of the category in sorted order.
func (b *Base) Keys(cat models.Category) []string {
	keys := make([]string, 0, len(b.facts[cat]))
	for k := range b.facts[cat] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CropMentions returns the ordered crop vocabulary.
func (b *Base) CropMentions() []string { return slices.Clone(b.crops) }

// PestMentions returns the ordered pest vocabulary.
func (b *Base) PestMentions() []string { return slices.Clone(b.pests) }

// NutrientMentions returns the ordered nutrient vocabulary.
func (b *Base) NutrientMentions() []string { return slices.Clone(b.nutrient) }

// ResolveCrop maps a crop mention to its fact key, following aliases.
func (b *Base) ResolveCrop(name string) (string, bool) {
	return b.resolve(models.CategoryCrops, name)
}

// ResolveNutrient maps a nutrient mention to its fact key, following aliases.
func (b *Base) ResolveNutrient(name string) (string, bool) {
	return b.resolve(models.CategoryFertilizers, name)
}

// ResolvePest maps a pest mention to its fact key. Pest facts are keyed by
// plural, so name+"s" is tried first, then the bare name, then the alias
// table for irregular plurals.
func (b *Base) ResolvePest(name string) (string, bool) {
	facts := b.facts[models.CategoryPests]
	if _, ok := facts[name+"s"]; ok {
		return name + "s", true
	}
	if _, ok := facts[name]; ok {
		return name, true
	}
	if alias, ok := b.aliases[models.CategoryPests][name]; ok {
		if _, ok := facts[alias]; ok {
			return alias, true
		}
	}
	return "", false
}

// Resolve maps a free-form name in the given category to its fact key.
func (b *Base) Resolve(cat models.Category, name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if cat == models.CategoryPests {
		return b.ResolvePest(name)
	}
	return b.resolve(cat, name)
}

func (b *Base) resolve(cat models.Category, name string) (string, bool) {
	facts := b.facts[cat]
	if _, ok := facts[name]; ok {
		return name, true
	}
	if alias, ok := b.aliases[cat][name]; ok {
		if _, ok := facts[alias]; ok {
			return alias, true
		}
	}
	return "", false
}

// lowerKeys lowercases the keys of m. Keys are visited in sorted order so
// that when "Rice" and "rice" collide the lowercase spelling always wins.
func lowerKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out[strings.ToLower(k)] = m[k]
	}
	return out
}

func lowerAll(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = strings.ToLower(v)
	}
	return out
}
