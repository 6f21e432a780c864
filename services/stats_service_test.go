package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logRecord(t *testing.T, svc *RecordService, userID, foodID uint, meal string, quantity float64, at time.Time) {
	t.Helper()
	_, err := svc.Create(userID, CreateRecordInput{
		FoodID:     foodID,
		Quantity:   quantity,
		MealType:   meal,
		RecordedAt: &at,
	})
	require.NoError(t, err)
}

func TestDayStatsEmptyDay(t *testing.T) {
	svc := NewStatsService(newTestDB(t), time.UTC)

	stats, err := svc.DayStats(1, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", stats.Date)
	assert.Equal(t, 0, stats.TotalCalories)
	assert.Empty(t, stats.Records)

	require.Len(t, stats.MealBreakdown, 4)
	for _, meal := range []string{models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack} {
		bucket, ok := stats.MealBreakdown[meal]
		require.True(t, ok, "missing bucket for %s", meal)
		assert.Equal(t, MealStats{}, bucket)
	}
}

func TestDayStatsBreakdown(t *testing.T) {
	db := newTestDB(t)
	records := NewRecordService(db, nil)
	svc := NewStatsService(db, time.UTC)

	breakfast := seedFood(t, db, "牛奶", 100)
	lunch := seedFood(t, db, "便當", 200)
	soup := seedFood(t, db, "味噌湯", 150)

	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	logRecord(t, records, 1, breakfast.ID, models.MealBreakfast, 1, day.Add(8*time.Hour))
	logRecord(t, records, 1, lunch.ID, models.MealLunch, 1, day.Add(12*time.Hour))
	logRecord(t, records, 1, soup.ID, models.MealLunch, 1, day.Add(13*time.Hour))

	// Outside the day and outside the user: both excluded.
	logRecord(t, records, 1, lunch.ID, models.MealDinner, 1, day.Add(25*time.Hour))
	logRecord(t, records, 2, lunch.ID, models.MealLunch, 1, day.Add(12*time.Hour))

	stats, err := svc.DayStats(1, day)
	require.NoError(t, err)
	assert.Equal(t, 450, stats.TotalCalories)
	assert.Len(t, stats.Records, 3)
	assert.Equal(t, MealStats{Count: 1, Calories: 100}, stats.MealBreakdown[models.MealBreakfast])
	assert.Equal(t, MealStats{Count: 2, Calories: 350}, stats.MealBreakdown[models.MealLunch])
	assert.Equal(t, MealStats{}, stats.MealBreakdown[models.MealDinner])
	assert.Equal(t, MealStats{}, stats.MealBreakdown[models.MealSnack])
}

func TestDayStatsHonorsLocation(t *testing.T) {
	db := newTestDB(t)
	records := NewRecordService(db, nil)

	taipei, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)
	svc := NewStatsService(db, taipei)

	food := seedFood(t, db, "宵夜", 300)

	// 23:00 UTC on March 1 is already March 2 in Taipei.
	logRecord(t, records, 1, food.ID, models.MealSnack, 1, time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC))

	march1, err := svc.DayStats(1, time.Date(2026, 3, 1, 12, 0, 0, 0, taipei))
	require.NoError(t, err)
	assert.Equal(t, 0, march1.TotalCalories)

	march2, err := svc.DayStats(1, time.Date(2026, 3, 2, 12, 0, 0, 0, taipei))
	require.NoError(t, err)
	assert.Equal(t, 300, march2.TotalCalories)
}

func TestRangeStats(t *testing.T) {
	db := newTestDB(t)
	records := NewRecordService(db, nil)
	svc := NewStatsService(db, time.UTC)

	food := seedFood(t, db, "便當", 200)

	logRecord(t, records, 1, food.ID, models.MealBreakfast, 1, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	logRecord(t, records, 1, food.ID, models.MealLunch, 1, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	logRecord(t, records, 1, food.ID, models.MealDinner, 1.5, time.Date(2026, 3, 3, 19, 0, 0, 0, time.UTC))

	stats, err := svc.RangeStats(1, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalRecords)
	assert.Equal(t, 700, stats.TotalCalories)
	// Two distinct days with records, not the three days the range spans.
	assert.Equal(t, 350, stats.AvgCaloriesPerDay)
	assert.Equal(t, 1, stats.RecordsByMealType[models.MealBreakfast])
	assert.Equal(t, 1, stats.RecordsByMealType[models.MealLunch])
	assert.Equal(t, 1, stats.RecordsByMealType[models.MealDinner])
	assert.Equal(t, 0, stats.RecordsByMealType[models.MealSnack])
}

func TestRangeStatsWindow(t *testing.T) {
	db := newTestDB(t)
	records := NewRecordService(db, nil)
	svc := NewStatsService(db, time.UTC)

	food := seedFood(t, db, "便當", 200)

	logRecord(t, records, 1, food.ID, models.MealLunch, 1, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	logRecord(t, records, 1, food.ID, models.MealLunch, 1, time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC))

	from := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	stats, err := svc.RangeStats(1, &from, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalRecords)
	assert.Equal(t, 200, stats.TotalCalories)
}

func TestRangeStatsEmpty(t *testing.T) {
	svc := NewStatsService(newTestDB(t), time.UTC)

	stats, err := svc.RangeStats(1, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalRecords)
	assert.Equal(t, 0, stats.TotalCalories)
	assert.Equal(t, 0, stats.AvgCaloriesPerDay)
}
