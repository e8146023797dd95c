package services

import (
	"context"
	"strings"

	"jits_backend/internal/models"
	"jits_backend/internal/repositories"
	"jits_backend/internal/services/dto"
	"jits_backend/internal/util"
	"jits_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const courseNotActiveMessage = "Course not found or is not currently active."

type CourseService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateCourseRequest, image *FileInput) (*models.Course, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]models.Course, error)
	FindPublic(ctx context.Context, db *gorm.DB) ([]models.Course, error)
	FindFeatured(ctx context.Context, db *gorm.DB) ([]models.Course, error)
	Search(ctx context.Context, db *gorm.DB, query *dto.CourseSearchQuery) ([]models.Course, error)
	FindByCategory(ctx context.Context, db *gorm.DB, category string) ([]models.Course, error)
	GetPublic(ctx context.Context, db *gorm.DB, slugOrID string) (*models.Course, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateCourseRequest, image *FileInput) (*models.Course, error)
	Rate(ctx context.Context, db *gorm.DB, id string, rating int) (*models.Course, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type CourseServiceImpl struct {
	lc     *lifecycle[models.Course, *models.Course]
	policy UploadPolicy
}

func NewCourseService(media MediaService, policy UploadPolicy) CourseService {
	return &CourseServiceImpl{
		lc: newLifecycle[models.Course](EntitySchema{
			Domain:           "course",
			DuplicateMessage: "A course with this title or slug already exists.",
			NotFoundMessage:  "Course not found",
		}, media),
		policy: policy,
	}
}

// Create - новый курс, картинка обязательна
func (s *CourseServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.CreateCourseRequest, image *FileInput) (*models.Course, error) {
	course := &models.Course{
		Title:               strings.TrimSpace(req.Title),
		Slug:                util.NormalizeSlug(req.Slug),
		Description:         strings.TrimSpace(req.Description),
		ShortDescription:    strings.TrimSpace(req.ShortDescription),
		Price:               *req.Price,
		OriginalPrice:       req.OriginalPrice,
		Category:            strings.TrimSpace(req.Category),
		Instructor:          orDefault(req.Instructor, "Admin"),
		Duration:            strings.TrimSpace(req.Duration),
		Level:               models.CourseLevel(orDefault(req.Level, string(models.CourseLevelBeginner))),
		Language:            orDefault(req.Language, "English"),
		Features:            decodeStringList(ctx, "features", req.Features),
		Requirements:        decodeStringList(ctx, "requirements", req.Requirements),
		WhatYouWillLearn:    decodeStringList(ctx, "whatYouWillLearn", req.WhatYouWillLearn),
		IsActive:            boolOr(req.IsActive, true),
		IsFeatured:          boolOr(req.IsFeatured, false),
		CertificateIncluded: boolOr(req.CertificateIncluded, false),
		LifetimeAccess:      boolOr(req.LifetimeAccess, false),
		MobileAccess:        boolOr(req.MobileAccess, true),
	}
	if req.EnrollmentCount != nil {
		course.EnrollmentCount = *req.EnrollmentCount
	}

	attachment := s.imageAttachment(course, image)
	attachment.Required = true
	attachment.RequiredMessage = "Course image is required."

	if err := s.lc.create(ctx, db, course, []Attachment{attachment}); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseServiceImpl) FindAll(ctx context.Context, db *gorm.DB) ([]models.Course, error) {
	return s.lc.list(db, repositories.OrderBy("created_at DESC"))
}

func (s *CourseServiceImpl) FindPublic(ctx context.Context, db *gorm.DB) ([]models.Course, error) {
	return s.lc.list(db, activeOnly, repositories.OrderBy("created_at DESC"))
}

func (s *CourseServiceImpl) FindFeatured(ctx context.Context, db *gorm.DB) ([]models.Course, error) {
	return s.lc.list(db,
		activeOnly,
		repositories.Where("is_featured = ?", true),
		repositories.OrderBy("created_at DESC"),
	)
}

// Search - только активные курсы; q ищется в названии, описании и категории
func (s *CourseServiceImpl) Search(ctx context.Context, db *gorm.DB, query *dto.CourseSearchQuery) ([]models.Course, error) {
	scopes := []repositories.Scope{activeOnly}
	if query != nil {
		scopes = append(scopes, repositories.Search(query.Q, "title", "description", "category"))
		if c := strings.TrimSpace(query.Category); c != "" {
			scopes = append(scopes, repositories.Where("LOWER(category) = ?", strings.ToLower(c)))
		}
		if query.Level != "" {
			scopes = append(scopes, repositories.Where("level = ?", query.Level))
		}
		if query.MinPrice != nil {
			scopes = append(scopes, repositories.Where("price >= ?", *query.MinPrice))
		}
		if query.MaxPrice != nil {
			scopes = append(scopes, repositories.Where("price <= ?", *query.MaxPrice))
		}
	}
	scopes = append(scopes, repositories.OrderBy("created_at DESC"))
	return s.lc.list(db, scopes...)
}

func (s *CourseServiceImpl) FindByCategory(ctx context.Context, db *gorm.DB, category string) ([]models.Course, error) {
	return s.lc.list(db,
		activeOnly,
		repositories.Where("LOWER(category) = ?", strings.ToLower(strings.TrimSpace(category))),
		repositories.OrderBy("created_at DESC"),
	)
}

// GetPublic ищет активный курс сначала по slug, затем по id
func (s *CourseServiceImpl) GetPublic(ctx context.Context, db *gorm.DB, slugOrID string) (*models.Course, error) {
	return findActiveBySlugOrID(s.lc, db, slugOrID, courseNotActiveMessage)
}

func (s *CourseServiceImpl) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateCourseRequest, image *FileInput) (*models.Course, error) {
	return s.lc.update(ctx, db, id, func(course *models.Course) (Changes, error) {
		if req.Title != nil {
			if strings.TrimSpace(*req.Title) == "" {
				return Changes{}, apperrors.Validation("course", "Title cannot be empty.")
			}
			course.Title = strings.TrimSpace(*req.Title)
		}
		if req.Slug != nil {
			slug := util.NormalizeSlug(*req.Slug)
			if slug == "" {
				return Changes{}, apperrors.Validation("course", "Slug cannot be empty.")
			}
			course.Slug = slug
		}
		setIf(&course.Description, trimmed(req.Description))
		setIf(&course.ShortDescription, trimmed(req.ShortDescription))
		setIf(&course.Price, req.Price)
		if req.OriginalPrice != nil {
			course.OriginalPrice = req.OriginalPrice
		}
		setIf(&course.Category, trimmed(req.Category))
		setIf(&course.Instructor, trimmed(req.Instructor))
		setIf(&course.Duration, trimmed(req.Duration))
		if req.Level != nil && *req.Level != "" {
			course.Level = models.CourseLevel(*req.Level)
		}
		setIf(&course.Language, trimmed(req.Language))
		if req.Features != nil {
			course.Features = decodeStringList(ctx, "features", req.Features)
		}
		if req.Requirements != nil {
			course.Requirements = decodeStringList(ctx, "requirements", req.Requirements)
		}
		if req.WhatYouWillLearn != nil {
			course.WhatYouWillLearn = decodeStringList(ctx, "whatYouWillLearn", req.WhatYouWillLearn)
		}
		setIf(&course.IsActive, req.IsActive)
		setIf(&course.IsFeatured, req.IsFeatured)
		setIf(&course.EnrollmentCount, req.EnrollmentCount)
		setIf(&course.CertificateIncluded, req.CertificateIncluded)
		setIf(&course.LifetimeAccess, req.LifetimeAccess)
		setIf(&course.MobileAccess, req.MobileAccess)

		return Changes{Attachments: []Attachment{s.imageAttachment(course, image)}}, nil
	})
}

// Rate добавляет оценку 1-5 к средней
func (s *CourseServiceImpl) Rate(ctx context.Context, db *gorm.DB, id string, rating int) (*models.Course, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.Validation("course", "Rating must be between 1 and 5.")
	}
	return s.lc.update(ctx, db, id, func(course *models.Course) (Changes, error) {
		course.AddRating(rating)
		return Changes{}, nil
	})
}

func (s *CourseServiceImpl) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return s.lc.delete(ctx, db, id)
}

func (s *CourseServiceImpl) imageAttachment(course *models.Course, image *FileInput) Attachment {
	return Attachment{
		Field:  "image",
		File:   image,
		Folder: "courses",
		Policy: s.policy,
		Assign: func(ref *models.MediaRef) string {
			old := course.ImageKey
			course.ImageURL, course.ImageKey = ref.URL, ref.Key
			return old
		},
	}
}

// ============================================
// ОБЩИЕ ВЫБОРКИ
// ============================================

func activeOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// findActiveBySlugOrID - публичная карточка: сначала slug, затем id, только активные
func findActiveBySlugOrID[T any, P entityPtr[T]](lc *lifecycle[T, P], db *gorm.DB, slugOrID, notFound string) (P, error) {
	value := strings.TrimSpace(slugOrID)
	entity, err := lc.findOne(db, activeOnly, repositories.Where("slug = ?", strings.ToLower(value)))
	if err == nil {
		return entity, nil
	}
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		return nil, err
	}

	entity, err = lc.findOne(db, activeOnly, repositories.Where("id = ?", value))
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeNotFound) {
			return nil, apperrors.NotFound(lc.schema.Domain, notFound)
		}
		return nil, err
	}
	return entity, nil
}
