package dto

import (
	"encoding/json"
	"strings"
)

// JSONText - вложенный список, пришедший строкой формы или JSON-массивом.
// Нулевое значение означает, что поле не передано.
type JSONText struct {
	raw []byte
	set bool
}

func NewJSONText(s string) JSONText {
	return JSONText{raw: []byte(s), set: true}
}

// UnmarshalParam - привязка из multipart/urlencoded формы
func (t *JSONText) UnmarshalParam(param string) error {
	*t = NewJSONText(param)
	return nil
}

// UnmarshalJSON принимает и массив, и строку с JSON внутри
func (t *JSONText) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = NewJSONText(s)
		return nil
	}
	*t = JSONText{raw: append([]byte(nil), data...), set: true}
	return nil
}

func (t JSONText) Present() bool {
	return t.set
}

// Blank - не передано или пусто
func (t JSONText) Blank() bool {
	s := strings.TrimSpace(string(t.raw))
	return s == "" || s == "null"
}

func (t JSONText) Bytes() []byte {
	return t.raw
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DataResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SuccessResponse - формат ответов студентов и auth
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type PagedResponse struct {
	Success     bool        `json:"success"`
	Data        interface{} `json:"data"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
	Total       int64       `json:"total"`
}
