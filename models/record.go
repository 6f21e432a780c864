package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal buckets a record belongs to within a day.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

func ValidMealType(mealType string) bool {
	switch mealType {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// One instance of a user eating a quantity of a food at a given meal
// and time. TotalCalories is derived from the linked food and the
// quantity; it is never set by clients directly.
type Record struct {
	gorm.Model
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	FoodID        uint      `gorm:"index;not null" json:"food_id"`
	Food          Food      `gorm:"foreignKey:FoodID" json:"food"`
	Quantity      float64   `gorm:"not null;default:1" json:"quantity"`
	MealType      string    `gorm:"type:varchar(16);not null;index" json:"meal_type"`
	RecordedAt    time.Time `gorm:"index;not null" json:"recorded_at"`
	TotalCalories int       `gorm:"not null" json:"total_calories"`
	Notes         string    `gorm:"default:''" json:"notes"`
}
