package models

import "golang.org/x/exp/slices"

// Category classifies a cost entry.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryHealth    Category = "health"
	CategoryHousing   Category = "housing"
	CategorySports    Category = "sports"
	CategoryEducation Category = "education"
)

// Categories is the canonical ordering of all categories. Reports list
// their buckets in exactly this order, independent of the data.
var Categories = [...]Category{
	CategoryFood,
	CategoryHealth,
	CategoryHousing,
	CategorySports,
	CategoryEducation,
}

// Valid reports whether the category is one of the known categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories[:], c)
}
