package services

import (
	"strings"

	"backend/data"
	"backend/models"
)

// ReferenceProvider is the static fallback tier of the food search.
// Implementations never fail: a provider with nothing to offer returns
// an empty slice.
type ReferenceProvider interface {
	SearchByName(name string) []FoodCandidate
}

// TFDAProvider serves the bundled TFDA common-food table.
type TFDAProvider struct{}

func NewTFDAProvider() *TFDAProvider { return &TFDAProvider{} }

func (p *TFDAProvider) SearchByName(name string) []FoodCandidate {
	needle := strings.ToLower(name)

	out := make([]FoodCandidate, 0)
	for _, f := range data.Foods {
		if !strings.Contains(strings.ToLower(f.Name), needle) {
			continue
		}
		sourceID := f.Name
		out = append(out, FoodCandidate{
			Name:        f.Name,
			Calories:    f.Calories,
			Protein:     f.Protein,
			Carbs:       f.Carbs,
			Fat:         f.Fat,
			ServingSize: f.ServingSize,
			Source:      models.SourceTFDA,
			SourceID:    &sourceID,
		})
		if len(out) == 10 {
			break
		}
	}
	return out
}
