package models

import "gorm.io/gorm"

// Provenance of a catalog entry.
const (
	SourceUser          = "user"
	SourceTFDA          = "tfda"
	SourceOpenFoodFacts = "open_food_facts"
)

const DefaultServingSize = "100克"

// A food catalog entry with nutrition values per serving.
type Food struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize string  `gorm:"default:100克" json:"serving_size"`
	Source      string  `gorm:"type:varchar(32);default:user;index" json:"source"`
	// SourceID holds the external system's identifier: the barcode for
	// open_food_facts entries, the table key for tfda entries.
	SourceID  *string `gorm:"type:varchar(255);uniqueIndex" json:"source_id,omitempty"`
	CreatedBy *uint   `json:"created_by,omitempty"`
	IsPublic  bool    `gorm:"default:true" json:"is_public"`
}
