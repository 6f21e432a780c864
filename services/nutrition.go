package services

import "math"

// Calories per gram of each macronutrient (Atwater factors).
const (
	caloriesPerGramProtein = 4
	caloriesPerGramCarbs   = 4
	caloriesPerGramFat     = 9
)

// DeriveCalories computes kilocalories per serving from macronutrient
// grams, rounded to the nearest integer. Pure and total over
// non-negative inputs.
func DeriveCalories(protein, carbs, fat float64) float64 {
	return math.Round(protein*caloriesPerGramProtein + carbs*caloriesPerGramCarbs + fat*caloriesPerGramFat)
}
