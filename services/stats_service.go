package services

import (
	"math"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type MealStats struct {
	Count    int `json:"count"`
	Calories int `json:"calories"`
}

type DayStats struct {
	Date          string               `json:"date"`
	TotalCalories int                  `json:"total_calories"`
	MealBreakdown map[string]MealStats `json:"meal_breakdown"`
	Records       []models.Record      `json:"records"`
}

type RangeStats struct {
	TotalRecords      int            `json:"total_records"`
	TotalCalories     int            `json:"total_calories"`
	AvgCaloriesPerDay int            `json:"avg_calories_per_day"`
	RecordsByMealType map[string]int `json:"records_by_meal_type"`
}

// StatsService folds consumption records into per-meal and per-day
// calorie summaries. All day boundaries use one fixed location.
type StatsService struct {
	db  *gorm.DB
	loc *time.Location
}

func NewStatsService(db *gorm.DB, loc *time.Location) *StatsService {
	if loc == nil {
		loc = time.UTC
	}
	return &StatsService{db: db, loc: loc}
}

// DayStats returns the calorie summary for one calendar day together
// with the records it was computed from. An empty day yields an
// all-zero summary.
func (s *StatsService) DayStats(userID uint, date time.Time) (*DayStats, error) {
	from := dayStart(date.In(s.loc))
	to := dayEnd(date.In(s.loc))

	records := make([]models.Record, 0)
	if err := s.db.Preload("Food").
		Where("user_id = ? AND recorded_at BETWEEN ? AND ?", userID, from, to).
		Order("recorded_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	stats := &DayStats{
		Date:          from.Format("2006-01-02"),
		MealBreakdown: emptyMealBreakdown(),
		Records:       records,
	}
	for _, r := range records {
		stats.TotalCalories += r.TotalCalories
		bucket := stats.MealBreakdown[r.MealType]
		bucket.Count++
		bucket.Calories += r.TotalCalories
		stats.MealBreakdown[r.MealType] = bucket
	}
	return stats, nil
}

// RangeStats aggregates a user's records over an optional inclusive
// time range. avgCaloriesPerDay divides by the number of distinct
// calendar days that have records, and is 0 when there are none.
func (s *StatsService) RangeStats(userID uint, from, to *time.Time) (*RangeStats, error) {
	q := s.db.Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("recorded_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("recorded_at <= ?", *to)
	}

	records := make([]models.Record, 0)
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}

	stats := &RangeStats{
		TotalRecords: len(records),
		RecordsByMealType: map[string]int{
			models.MealBreakfast: 0,
			models.MealLunch:     0,
			models.MealDinner:    0,
			models.MealSnack:     0,
		},
	}

	days := make(map[string]struct{})
	for _, r := range records {
		stats.TotalCalories += r.TotalCalories
		stats.RecordsByMealType[r.MealType]++
		days[r.RecordedAt.In(s.loc).Format("2006-01-02")] = struct{}{}
	}
	if len(days) > 0 {
		stats.AvgCaloriesPerDay = int(math.Round(float64(stats.TotalCalories) / float64(len(days))))
	}
	return stats, nil
}

func emptyMealBreakdown() map[string]MealStats {
	return map[string]MealStats{
		models.MealBreakfast: {},
		models.MealLunch:     {},
		models.MealDinner:    {},
		models.MealSnack:     {},
	}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
