package db_models

import (
	"github.com/lib/pq"

	"tripsmith/internal/models/response_models"
)

// TouristSpot is one knowledge-store record. Rows are written by cmd/ingest
// and only read by the planning pipeline.
type TouristSpot struct {
	BaseModel
	Slug           string  `gorm:"uniqueIndex;not null"`
	Name           string  `gorm:"not null"`
	Type           *string `gorm:"column:type"`
	Address        *string
	District       *string `gorm:"index"`
	City           *string
	Province       *string
	Grade          *string
	AGADivision    *string        `gorm:"column:aga_division"`
	LocalAuthority *string        `gorm:"column:local_authority"`
	SourceFile     *string        `gorm:"column:source_file"`
	ImageURLs      pq.StringArray `gorm:"column:image_urls;type:text[]"`
}

func (TouristSpot) TableName() string {
	return "tourist_spots"
}

// ToResponse converts the row into the value object handed to the pipeline.
func (s TouristSpot) ToResponse() response_models.TouristSpot {
	grade := deref(s.Grade)
	if grade == "" {
		grade = response_models.DefaultGrade
	}

	images := make([]string, 0, len(s.ImageURLs))
	images = append(images, s.ImageURLs...)

	return response_models.TouristSpot{
		ID:        s.ID.String(),
		Name:      s.Name,
		Type:      deref(s.Type),
		Address:   deref(s.Address),
		District:  deref(s.District),
		City:      deref(s.City),
		Province:  deref(s.Province),
		Grade:     grade,
		ImageURLs: images,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
