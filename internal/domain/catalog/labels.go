package catalog

// UncategorizedLabel is shown for ingredients without a category
const UncategorizedLabel = "Uncategorized"

// NoValueLabel is shown for empty optional enum values
const NoValueLabel = "-"

var categoryLabels = map[IngredientCategory]string{
	CategoryDairy:     "Dairy",
	CategoryMeat:      "Meat",
	CategoryVegetable: "Vegetable",
	CategoryGrain:     "Grain / Nut",
	CategoryOther:     "Other",
}

var unitLabels = map[IngredientUnit]string{
	UnitGram:       "gram",
	UnitMilliliter: "milliliter",
	UnitPiece:      "piece",
	UnitFruit:      "fruit",
}

var difficultyLabels = map[Difficulty]string{
	DifficultyEasy:   "Easy",
	DifficultyMedium: "Medium",
	DifficultyHard:   "Hard",
}

var mealTypeLabels = map[MealType]string{
	MealTypeBreakfast: "Breakfast",
	MealTypeLunch:     "Lunch",
	MealTypeDinner:    "Dinner",
}

// Label returns the display name of the category
func (c IngredientCategory) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	if c == "" {
		return UncategorizedLabel
	}
	return string(c)
}

// Label returns the display name of the unit
func (u IngredientUnit) Label() string {
	if l, ok := unitLabels[u]; ok {
		return l
	}
	return string(u)
}

// Label returns the display name of the difficulty
func (d Difficulty) Label() string {
	if l, ok := difficultyLabels[d]; ok {
		return l
	}
	if d == "" {
		return NoValueLabel
	}
	return string(d)
}

// Label returns the display name of the meal type
func (m MealType) Label() string {
	if l, ok := mealTypeLabels[m]; ok {
		return l
	}
	if m == "" {
		return NoValueLabel
	}
	return string(m)
}
