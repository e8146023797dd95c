package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate выдает UUID, если id не задан заранее
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *BaseModel) GetID() string {
	return m.ID
}

// MediaRef - пара публичный URL + ключ удаления в хранилище
type MediaRef struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"contentType,omitempty"`
}

// Entity - общий контракт контентных сущностей
type Entity interface {
	GetID() string
	// UniqueKeys - колонки, уникальные в пределах типа (колонка -> значение)
	UniqueKeys() map[string]string
	// MediaKeys - все ключи блобов, принадлежащих записи
	MediaKeys() []string
}

func collectKeys(keys ...string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}

// emptyIfNil - в JSON-колонках храним [] вместо null
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
