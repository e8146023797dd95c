package dto

import "mime/multipart"

type CreateServiceRequest struct {
	Name            string   `json:"name" form:"name" validate:"required,max=255"`
	Slug            string   `json:"slug" form:"slug" validate:"required,slug,max=255"`
	Description     string   `json:"description" form:"description" validate:"required"`
	IsActive        *bool    `json:"isActive" form:"isActive"`
	SubServicesData JSONText `json:"subServicesData" form:"subServicesData" swaggertype:"string"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name" form:"name" validate:"omitempty,max=255"`
	Slug            *string  `json:"slug" form:"slug" validate:"omitempty,slug,max=255"`
	Description     *string  `json:"description" form:"description"`
	IsActive        *bool    `json:"isActive" form:"isActive"`
	SubServicesData JSONText `json:"subServicesData" form:"subServicesData" swaggertype:"string"`
}

// SubServicePayload - элемент subServicesData. Для существующих услуг передается id
// (старые клиенты шлют _id), imageUrl без значения означает удаление картинки.
type SubServicePayload struct {
	ID          string `json:"id"`
	LegacyID    string `json:"_id"`
	Name        string `json:"name" validate:"required,max=255"`
	Slug        string `json:"slug" validate:"omitempty,slug,max=255"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

func (p SubServicePayload) Key() string {
	if p.ID != "" {
		return p.ID
	}
	return p.LegacyID
}

// ServiceFiles - mainImage и subServiceImage_<i>, где i - индекс в subServicesData
type ServiceFiles struct {
	MainImage *multipart.FileHeader
	SubImages map[int]*multipart.FileHeader
}
