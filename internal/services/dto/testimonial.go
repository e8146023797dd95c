package dto

import "mime/multipart"

// CreateTestimonialRequest используется и для историй успеха
type CreateTestimonialRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=255"`
	Designation string `json:"designation" form:"designation" validate:"required,max=255"`
	Content     string `json:"content" form:"content" validate:"required"`
	Rating      *int   `json:"rating" form:"rating" validate:"omitempty,gte=1,lte=5"`
	IsActive    *bool  `json:"isActive" form:"isActive"`
	Order       *int   `json:"order" form:"order"`
	Location    string `json:"location" form:"location" validate:"max=255"`
}

type UpdateTestimonialRequest struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,max=255"`
	Designation *string `json:"designation" form:"designation" validate:"omitempty,max=255"`
	Content     *string `json:"content" form:"content"`
	Rating      *int    `json:"rating" form:"rating" validate:"omitempty,gte=1,lte=5"`
	IsActive    *bool   `json:"isActive" form:"isActive"`
	Order       *int    `json:"order" form:"order"`
	Location    *string `json:"location" form:"location" validate:"omitempty,max=255"`
	// RemoveMedia - удалить текущий файл без замены
	RemoveMedia *bool `json:"removeMedia" form:"removeMedia"`
}

type TestimonialListQuery struct {
	IsActive *bool `form:"isActive"`
}

type TestimonialFiles struct {
	Media        *multipart.FileHeader
	ProfileImage *multipart.FileHeader // только истории успеха
}
