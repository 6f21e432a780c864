package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"backend/models"
)

const defaultOpenFoodFactsAPI = "https://world.openfoodfacts.org/api/v0"

// BarcodeProvider resolves a product barcode to a food candidate. A nil
// candidate with a nil error means the barcode is unknown upstream.
type BarcodeProvider interface {
	LookupByBarcode(code string) (*FoodCandidate, error)
}

// OpenFoodFactsService queries the Open Food Facts product API.
type OpenFoodFactsService struct {
	baseURL string
	client  *http.Client
}

func NewOpenFoodFactsService() *OpenFoodFactsService {
	base := os.Getenv("OPEN_FOOD_FACTS_API")
	if base == "" {
		base = defaultOpenFoodFactsAPI
	}
	return &OpenFoodFactsService{
		baseURL: base,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type productResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName string `json:"product_name"`
		GenericName string `json:"generic_name"`
		Nutriments  struct {
			EnergyKcal    float64 `json:"energy-kcal"`
			EnergyKcalAlt float64 `json:"energy_kcal"`
			Proteins      float64 `json:"proteins"`
			Carbohydrates float64 `json:"carbohydrates"`
			Fat           float64 `json:"fat"`
		} `json:"nutriments"`
	} `json:"product"`
}

func (s *OpenFoodFactsService) LookupByBarcode(code string) (*FoodCandidate, error) {
	u := fmt.Sprintf("%s/product/%s.json", s.baseURL, code)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call Open Food Facts: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Open Food Facts response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open Food Facts API error %d: %s", resp.StatusCode, string(body))
	}

	var pr productResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse Open Food Facts JSON: %w", err)
	}
	if pr.Status != 1 {
		return nil, nil
	}

	name := pr.Product.ProductName
	if name == "" {
		name = pr.Product.GenericName
	}
	if name == "" {
		name = "未知商品"
	}

	calories := pr.Product.Nutriments.EnergyKcal
	if calories == 0 {
		calories = pr.Product.Nutriments.EnergyKcalAlt
	}

	sourceID := code
	return &FoodCandidate{
		Name:        name,
		Calories:    calories,
		Protein:     pr.Product.Nutriments.Proteins,
		Carbs:       pr.Product.Nutriments.Carbohydrates,
		Fat:         pr.Product.Nutriments.Fat,
		ServingSize: models.DefaultServingSize,
		Source:      models.SourceOpenFoodFacts,
		SourceID:    &sourceID,
	}, nil
}
