package dto

import "mime/multipart"

type CreateStudentRequest struct {
	Slug            string   `json:"slug" form:"slug" validate:"required,slug,max=255"`
	Name            string   `json:"name" form:"name" validate:"required,max=255"`
	Title           string   `json:"title" form:"title" validate:"max=255"`
	Badges          []string `json:"badges" form:"badges"`
	Location        string   `json:"location" form:"location" validate:"max=255"`
	Email           string   `json:"email" form:"email" validate:"omitempty,basic_email,max=255"`
	Phone           string   `json:"phone" form:"phone" validate:"omitempty,phone"`
	Experience      string   `json:"experience" form:"experience" validate:"max=255"`
	Bio             string   `json:"bio" form:"bio"`
	Education       JSONText `json:"education" form:"education" swaggertype:"string"`
	Specializations []string `json:"specializations" form:"specializations"`
	Testimonials    JSONText `json:"testimonials" form:"testimonials" swaggertype:"string"`
}

type UpdateStudentRequest struct {
	Slug            *string  `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Name            *string  `json:"name" form:"name" validate:"omitempty,max=255"`
	Title           *string  `json:"title" form:"title" validate:"omitempty,max=255"`
	Badges          []string `json:"badges" form:"badges"`
	Location        *string  `json:"location" form:"location" validate:"omitempty,max=255"`
	Email           *string  `json:"email" form:"email" validate:"omitempty,basic_email,max=255"`
	Phone           *string  `json:"phone" form:"phone" validate:"omitempty,phone"`
	Experience      *string  `json:"experience" form:"experience" validate:"omitempty,max=255"`
	Bio             *string  `json:"bio" form:"bio"`
	Education       JSONText `json:"education" form:"education" swaggertype:"string"`
	Specializations []string `json:"specializations" form:"specializations"`
	Testimonials    JSONText `json:"testimonials" form:"testimonials" swaggertype:"string"`
}

type EducationPayload struct {
	Degree      string `json:"degree" validate:"required"`
	Institution string `json:"institution" validate:"required"`
	Year        string `json:"year" validate:"required,year4"`
	Achievement string `json:"achievement"`
}

type StudentTestimonialPayload struct {
	Name string `json:"name" form:"name" validate:"required"`
	Role string `json:"role" form:"role" validate:"required"`
	Text string `json:"text" form:"text" validate:"required,min=10"`
}

type AddEducationRequest struct {
	Degree      string `json:"degree" form:"degree" validate:"required"`
	Institution string `json:"institution" form:"institution" validate:"required"`
	Year        string `json:"year" form:"year" validate:"required,year4"`
	Achievement string `json:"achievement" form:"achievement"`
}

type StudentListQuery struct {
	Page           int    `form:"page" validate:"omitempty,gte=1"`
	Limit          int    `form:"limit" validate:"omitempty,gte=1,lte=100"`
	Search         string `form:"search"`
	Specialization string `form:"specialization"`
}

type StudentFiles struct {
	Image      *multipart.FileHeader
	CoverImage *multipart.FileHeader
}
