package models

// Category identifies which part of the knowledge base a query is asked against.
type Category string

// Category constants
const (
	CategoryCrops       Category = "crops"
	CategoryPests       Category = "pests"
	CategoryFertilizers Category = "fertilizers"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryCrops, CategoryPests, CategoryFertilizers}

// ParseCategory returns the category named by s and whether it is known.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryCrops, CategoryPests, CategoryFertilizers:
		return Category(s), true
	}
	return "", false
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}
