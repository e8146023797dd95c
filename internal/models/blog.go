package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Blog struct {
	BaseModel
	Title           string                      `gorm:"size:255;not null" json:"title"`
	Slug            string                      `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Excerpt         string                      `gorm:"type:text" json:"excerpt"`
	Content         string                      `gorm:"type:text" json:"content"`
	Category        string                      `gorm:"size:100;index" json:"category"`
	Tags            datatypes.JSONSlice[string] `json:"tags"`
	Author          string                      `gorm:"size:255" json:"author"`
	PublishDate     *time.Time                  `json:"publishDate"`
	MetaTitle       string                      `gorm:"size:255" json:"metaTitle"`
	MetaDescription string                      `gorm:"type:text" json:"metaDescription"`
	Status          BlogStatus                  `gorm:"type:varchar(20);index;not null" json:"status"`
	ImageURL        string                      `json:"imageUrl"`
	ImageKey        string                      `json:"imageKey"`
}

func (b *Blog) BeforeSave(tx *gorm.DB) error {
	b.Tags = emptyIfNil(b.Tags)
	return nil
}

func (b *Blog) UniqueKeys() map[string]string {
	return map[string]string{"slug": b.Slug}
}

func (b *Blog) MediaKeys() []string {
	return collectKeys(b.ImageKey)
}
