package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ServiceCategory struct {
	BaseModel
	Name         string                          `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Slug         string                          `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description  string                          `gorm:"type:text;not null" json:"description"`
	MainImage    string                          `json:"mainImage"`
	MainImageKey string                          `json:"mainImageKey"`
	SubServices  datatypes.JSONSlice[SubService] `json:"subServices"`
	IsActive     bool                            `gorm:"index" json:"isActive"`
}

// SubService хранится внутри категории, id нужен для сверки при обновлении
type SubService struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	ImageKey    string `json:"imageKey"`
}

func (ServiceCategory) TableName() string {
	return "service_categories"
}

func (s *ServiceCategory) BeforeSave(tx *gorm.DB) error {
	s.SubServices = emptyIfNil(s.SubServices)
	return nil
}

func (s *ServiceCategory) UniqueKeys() map[string]string {
	return map[string]string{"name": s.Name, "slug": s.Slug}
}

func (s *ServiceCategory) MediaKeys() []string {
	keys := collectKeys(s.MainImageKey)
	for _, sub := range s.SubServices {
		if sub.ImageKey != "" {
			keys = append(keys, sub.ImageKey)
		}
	}
	return keys
}
