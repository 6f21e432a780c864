package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

const (
	localSearchLimit     = 10
	referenceSearchLimit = 5
	combinedSearchLimit  = 15
	listLimit            = 100
)

// FoodCandidate is one row of a food search result: either a persisted
// catalog entry (ID set) or a reference-table row that has not been
// materialized into the store yet (ID nil).
type FoodCandidate struct {
	ID          *uint   `json:"id,omitempty"`
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize string  `json:"serving_size"`
	Source      string  `json:"source"`
	SourceID    *string `json:"source_id,omitempty"`
}

type FoodService struct {
	db      *gorm.DB
	ref     ReferenceProvider
	barcode BarcodeProvider
}

func NewFoodService(db *gorm.DB, ref ReferenceProvider, barcode BarcodeProvider) *FoodService {
	return &FoodService{db: db, ref: ref, barcode: barcode}
}

type CreateFoodInput struct {
	Name        string   `json:"name" binding:"required"`
	Calories    *float64 `json:"calories" binding:"omitempty,gte=0"`
	Protein     float64  `json:"protein" binding:"gte=0"`
	Carbs       float64  `json:"carbs" binding:"gte=0"`
	Fat         float64  `json:"fat" binding:"gte=0"`
	ServingSize string   `json:"serving_size"`
}

func (s *FoodService) Create(userID uint, in CreateFoodInput) (*models.Food, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	calories := 0.0
	if in.Calories != nil {
		calories = *in.Calories
	}
	// Absent or zero calories are derived from the macronutrients. All
	// zeros keep calories at 0; the formula is purely additive.
	if calories == 0 {
		calories = DeriveCalories(in.Protein, in.Carbs, in.Fat)
	}

	serving := in.ServingSize
	if serving == "" {
		serving = models.DefaultServingSize
	}

	food := models.Food{
		Name:        name,
		Calories:    calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
		ServingSize: serving,
		Source:      models.SourceUser,
		CreatedBy:   &userID,
		IsPublic:    true,
	}
	if err := s.db.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) List(search, source string) ([]models.Food, error) {
	q := s.db.Model(&models.Food{})
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if source != "" {
		q = q.Where("source = ?", source)
	}

	foods := make([]models.Food, 0)
	err := q.Order("created_at DESC").Limit(listLimit).Find(&foods).Error
	return foods, err
}

func (s *FoodService) Get(id uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: food %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &food, nil
}

type UpdateFoodInput struct {
	Name        *string  `json:"name"`
	Calories    *float64 `json:"calories" binding:"omitempty,gte=0"`
	Protein     *float64 `json:"protein" binding:"omitempty,gte=0"`
	Carbs       *float64 `json:"carbs" binding:"omitempty,gte=0"`
	Fat         *float64 `json:"fat" binding:"omitempty,gte=0"`
	ServingSize *string  `json:"serving_size"`
}

func (s *FoodService) Update(id uint, in UpdateFoodInput) (*models.Food, error) {
	food, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		food.Name = name
	}
	if in.Calories != nil {
		food.Calories = *in.Calories
	}
	if in.Protein != nil {
		food.Protein = *in.Protein
	}
	if in.Carbs != nil {
		food.Carbs = *in.Carbs
	}
	if in.Fat != nil {
		food.Fat = *in.Fat
	}
	if in.ServingSize != nil {
		food.ServingSize = *in.ServingSize
	}

	if err := s.db.Save(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

// Delete removes a catalog entry. Entries still referenced by
// consumption records are protected: deleting them would leave
// unresolvable food references behind.
func (s *FoodService) Delete(id uint) error {
	food, err := s.Get(id)
	if err != nil {
		return err
	}

	var referencing int64
	if err := s.db.Model(&models.Record{}).Where("food_id = ?", food.ID).Count(&referencing).Error; err != nil {
		return err
	}
	if referencing > 0 {
		return fmt.Errorf("%w: food %d is referenced by %d records", ErrConflict, food.ID, referencing)
	}

	return s.db.Delete(&models.Food{}, food.ID).Error
}

// SearchByName runs the two-tier search: persisted entries first, then
// the static reference table as best-effort enrichment.
func (s *FoodService) SearchByName(name, source string) ([]FoodCandidate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	var local []models.Food
	if err := s.db.
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%").
		Order("created_at DESC").
		Limit(localSearchLimit).
		Find(&local).Error; err != nil {
		return nil, err
	}

	results := make([]FoodCandidate, 0, len(local))
	for i := range local {
		results = append(results, candidateFromFood(&local[i]))
	}

	// Reference tier: consulted when asked for explicitly, or as a
	// fallback when the local store has nothing and the caller did not
	// pin the search to local entries.
	if source == models.SourceTFDA || (source != "local" && len(results) == 0) {
		results = append(results, s.referenceMatches(name)...)
	}

	if len(results) > combinedSearchLimit {
		results = results[:combinedSearchLimit]
	}
	return results, nil
}

// referenceMatches never propagates a failure: the reference tier is
// enrichment, not a hard dependency.
func (s *FoodService) referenceMatches(name string) (matches []FoodCandidate) {
	if s.ref == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("reference food search failed: %v", r)
			matches = nil
		}
	}()

	matches = s.ref.SearchByName(name)
	if len(matches) > referenceSearchLimit {
		matches = matches[:referenceSearchLimit]
	}
	return matches
}

// LookupBarcode resolves a barcode to a persisted catalog entry,
// materializing the external product on first sight. Looking up the
// same barcode twice returns the same entry.
func (s *FoodService) LookupBarcode(code string) (*models.Food, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: barcode is required", ErrInvalidInput)
	}

	// Soft-deleted entries still occupy the source_id unique index, so
	// the lookup must see them and revive instead of recreating.
	var food models.Food
	err := s.db.Unscoped().Where("source_id = ?", code).First(&food).Error
	if err == nil {
		if food.DeletedAt.Valid {
			if err := s.db.Unscoped().Model(&food).Update("deleted_at", nil).Error; err != nil {
				return nil, err
			}
			food.DeletedAt = gorm.DeletedAt{}
		}
		return &food, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if s.barcode == nil {
		return nil, fmt.Errorf("%w: barcode %s", ErrNotFound, code)
	}
	cand, lookupErr := s.barcode.LookupByBarcode(code)
	if lookupErr != nil {
		log.Printf("barcode lookup failed for %s: %v", code, lookupErr)
		return nil, fmt.Errorf("%w: barcode %s", ErrNotFound, code)
	}
	if cand == nil {
		return nil, fmt.Errorf("%w: barcode %s", ErrNotFound, code)
	}

	food = models.Food{
		Name:        cand.Name,
		Calories:    cand.Calories,
		Protein:     cand.Protein,
		Carbs:       cand.Carbs,
		Fat:         cand.Fat,
		ServingSize: cand.ServingSize,
		Source:      cand.Source,
		SourceID:    &code,
		IsPublic:    true,
	}
	if err := s.db.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func candidateFromFood(f *models.Food) FoodCandidate {
	id := f.ID
	return FoodCandidate{
		ID:          &id,
		Name:        f.Name,
		Calories:    f.Calories,
		Protein:     f.Protein,
		Carbs:       f.Carbs,
		Fat:         f.Fat,
		ServingSize: f.ServingSize,
		Source:      f.Source,
		SourceID:    f.SourceID,
	}
}
