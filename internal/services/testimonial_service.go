package services

import (
	"context"
	"strings"

	"jits_backend/internal/models"
	"jits_backend/internal/repositories"
	"jits_backend/internal/services/dto"
	"jits_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const defaultTestimonialRating = 5

// testimonialOrder - ручной порядок, затем новые
var testimonialOrder = repositories.OrderBy("display_order ASC, created_at DESC")

type TestimonialService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateTestimonialRequest, media *FileInput) (*models.Testimonial, error)
	List(ctx context.Context, db *gorm.DB, query *dto.TestimonialListQuery) ([]models.Testimonial, error)
	GetByID(ctx context.Context, db *gorm.DB, id string) (*models.Testimonial, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateTestimonialRequest, media *FileInput) (*models.Testimonial, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type TestimonialServiceImpl struct {
	lc     *lifecycle[models.Testimonial, *models.Testimonial]
	policy UploadPolicy
}

func NewTestimonialService(media MediaService, policy UploadPolicy) TestimonialService {
	return &TestimonialServiceImpl{
		lc: newLifecycle[models.Testimonial](EntitySchema{
			Domain:          "testimonial",
			NotFoundMessage: "Testimonial not found",
		}, media),
		policy: policy,
	}
}

func (s *TestimonialServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.CreateTestimonialRequest, media *FileInput) (*models.Testimonial, error) {
	testimonial := &models.Testimonial{TestimonialBody: newTestimonialBody(req)}
	attachment := testimonialMedia(&testimonial.TestimonialBody, "testimonials", s.policy, media)
	if err := s.lc.create(ctx, db, testimonial, []Attachment{attachment}); err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (s *TestimonialServiceImpl) List(ctx context.Context, db *gorm.DB, query *dto.TestimonialListQuery) ([]models.Testimonial, error) {
	return s.lc.list(db, activeFilter(query), testimonialOrder)
}

func (s *TestimonialServiceImpl) GetByID(ctx context.Context, db *gorm.DB, id string) (*models.Testimonial, error) {
	return s.lc.get(db, id)
}

func (s *TestimonialServiceImpl) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateTestimonialRequest, media *FileInput) (*models.Testimonial, error) {
	return s.lc.update(ctx, db, id, func(t *models.Testimonial) (Changes, error) {
		obsolete, err := applyTestimonialUpdate(&t.TestimonialBody, req, media)
		if err != nil {
			return Changes{}, err
		}
		return Changes{
			Attachments: []Attachment{testimonialMedia(&t.TestimonialBody, "testimonials", s.policy, media)},
			Obsolete:    obsolete,
		}, nil
	})
}

func (s *TestimonialServiceImpl) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return s.lc.delete(ctx, db, id)
}

// ============================================
// ОБЩЕЕ ДЛЯ ОТЗЫВОВ И ИСТОРИЙ УСПЕХА
// ============================================

func newTestimonialBody(req *dto.CreateTestimonialRequest) models.TestimonialBody {
	body := models.TestimonialBody{
		Name:        strings.TrimSpace(req.Name),
		Designation: strings.TrimSpace(req.Designation),
		Content:     strings.TrimSpace(req.Content),
		Rating:      defaultTestimonialRating,
		MediaType:   models.MediaTypeNone,
		IsActive:    boolOr(req.IsActive, true),
	}
	setIf(&body.Rating, req.Rating)
	setIf(&body.Order, req.Order)
	return body
}

// applyTestimonialUpdate возвращает ключ медиа, удаленного без замены
func applyTestimonialUpdate(body *models.TestimonialBody, req *dto.UpdateTestimonialRequest, media *FileInput) ([]string, error) {
	for field, value := range map[string]*string{"name": req.Name, "designation": req.Designation, "content": req.Content} {
		if value != nil && strings.TrimSpace(*value) == "" {
			return nil, apperrors.ValidationError(map[string]string{field: "This field is required"})
		}
	}
	setIf(&body.Name, trimmed(req.Name))
	setIf(&body.Designation, trimmed(req.Designation))
	setIf(&body.Content, trimmed(req.Content))
	setIf(&body.Rating, req.Rating)
	setIf(&body.IsActive, req.IsActive)
	setIf(&body.Order, req.Order)

	if media == nil && boolOr(req.RemoveMedia, false) && body.MediaKey != "" {
		old := body.MediaKey
		body.MediaURL, body.MediaKey, body.MediaType = "", "", models.MediaTypeNone
		return []string{old}, nil
	}
	return nil, nil
}

func testimonialMedia(body *models.TestimonialBody, folder string, policy UploadPolicy, file *FileInput) Attachment {
	return Attachment{
		Field:  "media",
		File:   file,
		Folder: folder,
		Policy: policy,
		Assign: func(ref *models.MediaRef) string {
			old := body.MediaKey
			body.MediaURL, body.MediaKey = ref.URL, ref.Key
			body.MediaType = mediaTypeOf(ref.ContentType)
			return old
		},
	}
}

func activeFilter(query *dto.TestimonialListQuery) repositories.Scope {
	return func(db *gorm.DB) *gorm.DB {
		if query == nil || query.IsActive == nil {
			return db
		}
		return db.Where("is_active = ?", *query.IsActive)
	}
}
