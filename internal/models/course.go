package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Course struct {
	BaseModel
	Title               string                      `gorm:"size:255;uniqueIndex;not null" json:"title"`
	Slug                string                      `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description         string                      `gorm:"type:text;not null" json:"description"`
	ShortDescription    string                      `gorm:"size:500" json:"shortDescription"`
	Price               float64                     `gorm:"index;not null" json:"price"`
	OriginalPrice       *float64                    `json:"originalPrice"`
	Rating              float64                     `json:"rating"`
	TotalRatings        int                         `json:"totalRatings"`
	ImageURL            string                      `json:"imageUrl"`
	ImageKey            string                      `json:"imageKey"`
	Category            string                      `gorm:"size:100;index;not null" json:"category"`
	Instructor          string                      `gorm:"size:255" json:"instructor"`
	Duration            string                      `gorm:"size:100" json:"duration"`
	Level               CourseLevel                 `gorm:"type:varchar(20)" json:"level"`
	Language            string                      `gorm:"size:50" json:"language"`
	Features            datatypes.JSONSlice[string] `json:"features"`
	Requirements        datatypes.JSONSlice[string] `json:"requirements"`
	WhatYouWillLearn    datatypes.JSONSlice[string] `json:"whatYouWillLearn"`
	IsActive            bool                        `gorm:"index" json:"isActive"`
	IsFeatured          bool                        `gorm:"index" json:"isFeatured"`
	EnrollmentCount     int                         `json:"enrollmentCount"`
	CertificateIncluded bool                        `json:"certificateIncluded"`
	LifetimeAccess      bool                        `json:"lifetimeAccess"`
	MobileAccess        bool                        `json:"mobileAccess"`
}

func (c *Course) BeforeSave(tx *gorm.DB) error {
	c.Features = emptyIfNil(c.Features)
	c.Requirements = emptyIfNil(c.Requirements)
	c.WhatYouWillLearn = emptyIfNil(c.WhatYouWillLearn)
	return nil
}

func (c *Course) UniqueKeys() map[string]string {
	return map[string]string{"title": c.Title, "slug": c.Slug}
}

func (c *Course) MediaKeys() []string {
	return collectKeys(c.ImageKey)
}

// AddRating пересчитывает среднюю оценку, округляя до одного знака
func (c *Course) AddRating(value int) {
	total := c.Rating*float64(c.TotalRatings) + float64(value)
	c.TotalRatings++
	c.Rating = roundTo1(total / float64(c.TotalRatings))
}

func roundTo1(v float64) float64 {
	return float64(int64(v*10+0.5)) / 10
}
