package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"jits_backend/internal/logger"
	"jits_backend/internal/services/dto"
	"jits_backend/internal/validator"
	"jits_backend/pkg/apperrors"
)

// ============================================
// РАЗБОР ПОЛЕЙ ФОРМЫ
// ============================================

// decodeStringList разбирает списочное поле формы. Одно значение пробуем как JSON
// (массив или строка), при ошибке оставляем исходный текст одним элементом.
func decodeStringList(ctx context.Context, field string, values []string) []string {
	if values == nil {
		return nil
	}
	if len(values) != 1 {
		return compactStrings(values)
	}

	raw := strings.TrimSpace(values[0])
	if raw == "" {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return compactStrings(list)
	}

	var single string
	if err := json.Unmarshal([]byte(raw), &single); err == nil {
		return compactStrings([]string{single})
	}

	logger.CtxWarn(ctx, "Failed to decode list field, keeping raw value", "field", field)
	return []string{raw}
}

// splitTags - теги блога приходят через запятую
func splitTags(values []string) []string {
	if values == nil {
		return nil
	}
	var tags []string
	for _, v := range values {
		tags = append(tags, strings.Split(v, ",")...)
	}
	return compactStrings(tags)
}

// decodeObjectList разбирает вложенный список объектов и проверяет элементы.
// Битый JSON - ошибка валидации.
func decodeObjectList[E any](v *validator.Validator, field string, text dto.JSONText) ([]E, error) {
	if text.Blank() {
		return []E{}, nil
	}

	var items []E
	if err := json.Unmarshal(text.Bytes(), &items); err != nil {
		return nil, apperrors.ValidationError(map[string]string{
			field: "Must be a JSON array",
		})
	}
	if items == nil {
		items = []E{}
	}

	if v != nil {
		details := make(map[string]string)
		for i := range items {
			err := v.Validate(&items[i])
			if err == nil {
				continue
			}
			vErr, ok := err.(*validator.ValidationError)
			if !ok {
				return nil, apperrors.InternalError(err)
			}
			for name, msg := range vErr.Errors {
				details[fmt.Sprintf("%s[%d].%s", field, i, name)] = msg
			}
		}
		if len(details) > 0 {
			return nil, apperrors.ValidationError(details)
		}
	}
	return items, nil
}

var publishDateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

func parsePublishDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range publishDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, apperrors.ValidationError(map[string]string{
		"publishDate": fmt.Sprintf("Invalid date '%s'", value),
	})
}

func compactStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}
