package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type RecordService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

// NewRecordService builds the consumption record store. The hub is
// optional; a nil hub disables the realtime feed.
func NewRecordService(db *gorm.DB, hub *RealtimeHub) *RecordService {
	return &RecordService{db: db, hub: hub}
}

type CreateRecordInput struct {
	FoodID     uint       `json:"food_id" binding:"required"`
	Quantity   float64    `json:"quantity"`
	MealType   string     `json:"meal_type" binding:"required"`
	RecordedAt *time.Time `json:"recorded_at"`
	Notes      string     `json:"notes"`
}

func (s *RecordService) Create(userID uint, in CreateRecordInput) (*models.Record, error) {
	if in.FoodID == 0 || in.MealType == "" {
		return nil, fmt.Errorf("%w: food_id and meal_type are required", ErrInvalidInput)
	}
	if !models.ValidMealType(in.MealType) {
		return nil, fmt.Errorf("%w: unknown meal type %q", ErrInvalidInput, in.MealType)
	}

	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	var food models.Food
	if err := s.db.First(&food, in.FoodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: food %d", ErrNotFound, in.FoodID)
		}
		return nil, err
	}

	recordedAt := time.Now()
	if in.RecordedAt != nil {
		recordedAt = *in.RecordedAt
	}

	record := models.Record{
		UserID:        userID,
		FoodID:        food.ID,
		Quantity:      quantity,
		MealType:      in.MealType,
		RecordedAt:    recordedAt,
		TotalCalories: totalCalories(food.Calories, quantity),
		Notes:         in.Notes,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	record.Food = food

	s.broadcast(EventRecordCreated, &record)
	return &record, nil
}

type RecordFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	MealType  string
}

func (s *RecordService) List(userID uint, filter RecordFilter) ([]models.Record, error) {
	q := s.db.Preload("Food").Where("user_id = ?", userID)
	if filter.StartDate != nil {
		q = q.Where("recorded_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("recorded_at <= ?", *filter.EndDate)
	}
	if filter.MealType != "" {
		q = q.Where("meal_type = ?", filter.MealType)
	}

	records := make([]models.Record, 0)
	err := q.Order("recorded_at DESC").Find(&records).Error
	return records, err
}

// Get enforces ownership: a record is only visible to the user who
// logged it.
func (s *RecordService) Get(userID, id uint) (*models.Record, error) {
	var record models.Record
	if err := s.db.Preload("Food").First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: record %d", ErrNotFound, id)
		}
		return nil, err
	}
	if record.UserID != userID {
		return nil, fmt.Errorf("%w: record %d", ErrForbidden, id)
	}
	return &record, nil
}

type UpdateRecordInput struct {
	FoodID     *uint      `json:"food_id"`
	Quantity   *float64   `json:"quantity"`
	MealType   *string    `json:"meal_type"`
	RecordedAt *time.Time `json:"recorded_at"`
	Notes      *string    `json:"notes"`
}

func (s *RecordService) Update(userID, id uint, in UpdateRecordInput) (*models.Record, error) {
	record, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if in.FoodID != nil {
		var food models.Food
		if err := s.db.First(&food, *in.FoodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: food %d", ErrNotFound, *in.FoodID)
			}
			return nil, err
		}
		record.FoodID = food.ID
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
		}
		record.Quantity = *in.Quantity
	}
	if in.MealType != nil {
		if !models.ValidMealType(*in.MealType) {
			return nil, fmt.Errorf("%w: unknown meal type %q", ErrInvalidInput, *in.MealType)
		}
		record.MealType = *in.MealType
	}
	if in.RecordedAt != nil {
		record.RecordedAt = *in.RecordedAt
	}
	if in.Notes != nil {
		record.Notes = *in.Notes
	}

	// Total calories always follow the currently linked food, so edits
	// to the food's calorie value are picked up here.
	var food models.Food
	if err := s.db.First(&food, record.FoodID).Error; err != nil {
		return nil, err
	}
	record.TotalCalories = totalCalories(food.Calories, record.Quantity)

	if err := s.db.Save(record).Error; err != nil {
		return nil, err
	}
	record.Food = food

	s.broadcast(EventRecordUpdated, record)
	return record, nil
}

func (s *RecordService) Delete(userID, id uint) error {
	record, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&models.Record{}, record.ID).Error; err != nil {
		return err
	}

	s.broadcast(EventRecordDeleted, record)
	return nil
}

func (s *RecordService) broadcast(eventType string, record *models.Record) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastRecordEvent(record.UserID, RecordEvent{Type: eventType, Record: record})
}

func totalCalories(perServing, quantity float64) int {
	return int(math.Round(perServing * quantity))
}
