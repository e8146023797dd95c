package dto

type CreateCourseRequest struct {
	Title               string   `json:"title" form:"title" validate:"required,max=255"`
	Slug                string   `json:"slug" form:"slug" validate:"required,slug,max=255"`
	Description         string   `json:"description" form:"description" validate:"required"`
	ShortDescription    string   `json:"shortDescription" form:"shortDescription" validate:"max=500"`
	Price               *float64 `json:"price" form:"price" validate:"required,gte=0"`
	OriginalPrice       *float64 `json:"originalPrice" form:"originalPrice" validate:"omitempty,gte=0"`
	Category            string   `json:"category" form:"category" validate:"required,max=100"`
	Instructor          string   `json:"instructor" form:"instructor" validate:"max=255"`
	Duration            string   `json:"duration" form:"duration" validate:"max=100"`
	Level               string   `json:"level" form:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Language            string   `json:"language" form:"language" validate:"max=50"`
	Features            []string `json:"features" form:"features"`
	Requirements        []string `json:"requirements" form:"requirements"`
	WhatYouWillLearn    []string `json:"whatYouWillLearn" form:"whatYouWillLearn"`
	IsActive            *bool    `json:"isActive" form:"isActive"`
	IsFeatured          *bool    `json:"isFeatured" form:"isFeatured"`
	EnrollmentCount     *int     `json:"enrollmentCount" form:"enrollmentCount" validate:"omitempty,gte=0"`
	CertificateIncluded *bool    `json:"certificateIncluded" form:"certificateIncluded"`
	LifetimeAccess      *bool    `json:"lifetimeAccess" form:"lifetimeAccess"`
	MobileAccess        *bool    `json:"mobileAccess" form:"mobileAccess"`
}

type UpdateCourseRequest struct {
	Title               *string  `json:"title" form:"title" validate:"omitempty,max=255"`
	Slug                *string  `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Description         *string  `json:"description" form:"description"`
	ShortDescription    *string  `json:"shortDescription" form:"shortDescription" validate:"omitempty,max=500"`
	Price               *float64 `json:"price" form:"price" validate:"omitempty,gte=0"`
	OriginalPrice       *float64 `json:"originalPrice" form:"originalPrice" validate:"omitempty,gte=0"`
	Category            *string  `json:"category" form:"category" validate:"omitempty,max=100"`
	Instructor          *string  `json:"instructor" form:"instructor" validate:"omitempty,max=255"`
	Duration            *string  `json:"duration" form:"duration" validate:"omitempty,max=100"`
	Level               *string  `json:"level" form:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Language            *string  `json:"language" form:"language" validate:"omitempty,max=50"`
	Features            []string `json:"features" form:"features"`
	Requirements        []string `json:"requirements" form:"requirements"`
	WhatYouWillLearn    []string `json:"whatYouWillLearn" form:"whatYouWillLearn"`
	IsActive            *bool    `json:"isActive" form:"isActive"`
	IsFeatured          *bool    `json:"isFeatured" form:"isFeatured"`
	EnrollmentCount     *int     `json:"enrollmentCount" form:"enrollmentCount" validate:"omitempty,gte=0"`
	CertificateIncluded *bool    `json:"certificateIncluded" form:"certificateIncluded"`
	LifetimeAccess      *bool    `json:"lifetimeAccess" form:"lifetimeAccess"`
	MobileAccess        *bool    `json:"mobileAccess" form:"mobileAccess"`
}

type CourseSearchQuery struct {
	Q        string   `form:"q"`
	Category string   `form:"category"`
	Level    string   `form:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	MinPrice *float64 `form:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice *float64 `form:"maxPrice" validate:"omitempty,gte=0"`
}

type RateCourseRequest struct {
	Rating int `json:"rating" form:"rating" validate:"required,gte=1,lte=5"`
}
