package models

import (
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Student struct {
	BaseModel
	Slug            string                                  `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Name            string                                  `gorm:"size:255;not null" json:"name"`
	Title           string                                  `gorm:"size:255" json:"title"`
	Image           string                                  `json:"image"`
	ImageKey        string                                  `json:"imageKey"`
	CoverImage      string                                  `json:"coverImage"`
	CoverImageKey   string                                  `json:"coverImageKey"`
	Badges          datatypes.JSONSlice[string]             `json:"badges"`
	Location        string                                  `gorm:"size:255" json:"location"`
	Email           string                                  `gorm:"size:255" json:"email"`
	Phone           string                                  `gorm:"size:50" json:"phone"`
	Experience      string                                  `gorm:"size:255" json:"experience"`
	Bio             string                                  `gorm:"type:text" json:"bio"`
	Education       datatypes.JSONSlice[Education]          `json:"education"`
	Specializations datatypes.JSONSlice[string]             `json:"specializations"`
	Testimonials    datatypes.JSONSlice[StudentTestimonial] `json:"testimonials"`

	// Денормализация для переносимых фильтров (postgres/mysql/sqlite)
	BadgeCount          int    `gorm:"index" json:"-"`
	SpecializationIndex string `gorm:"type:text" json:"-"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Achievement string `json:"achievement,omitempty"`
}

type StudentTestimonial struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Text string `json:"text"`
}

func (s *Student) BeforeSave(tx *gorm.DB) error {
	s.Badges = emptyIfNil(s.Badges)
	s.Education = emptyIfNil(s.Education)
	s.Specializations = emptyIfNil(s.Specializations)
	s.Testimonials = emptyIfNil(s.Testimonials)

	s.BadgeCount = len(s.Badges)
	s.SpecializationIndex = SpecializationToken(s.Specializations...)
	return nil
}

// SpecializationToken строит строку вида |a|b| для поиска через LIKE %|a|%
func SpecializationToken(values ...string) string {
	if len(values) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("|")
	for _, v := range values {
		b.WriteString(strings.ToLower(strings.TrimSpace(v)))
		b.WriteString("|")
	}
	return b.String()
}

func (s *Student) UniqueKeys() map[string]string {
	return map[string]string{"slug": s.Slug}
}

func (s *Student) MediaKeys() []string {
	return collectKeys(s.ImageKey, s.CoverImageKey)
}
