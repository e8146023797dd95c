package services

import (
	"context"
	"sort"
	"strings"

	"jits_backend/internal/logger"
	"jits_backend/internal/models"
	"jits_backend/internal/repositories"
	"jits_backend/internal/services/dto"
	"jits_backend/internal/util"
	"jits_backend/internal/validator"
	"jits_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	serviceMainFolder = "services/main"
	serviceSubFolder  = "services/sub"
)

type ServiceCategoryService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateServiceRequest, files dto.ServiceFiles) (*models.ServiceCategory, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]models.ServiceCategory, error)
	FindPublic(ctx context.Context, db *gorm.DB) ([]models.ServiceCategory, error)
	GetPublic(ctx context.Context, db *gorm.DB, slugOrID string) (*models.ServiceCategory, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateServiceRequest, files dto.ServiceFiles) (*models.ServiceCategory, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type ServiceCategoryServiceImpl struct {
	lc        *lifecycle[models.ServiceCategory, *models.ServiceCategory]
	policy    UploadPolicy
	validator *validator.Validator
}

func NewServiceCategoryService(media MediaService, policy UploadPolicy, v *validator.Validator) ServiceCategoryService {
	return &ServiceCategoryServiceImpl{
		lc: newLifecycle[models.ServiceCategory](EntitySchema{
			Domain:            "service",
			DuplicateMessage:  "A service with this name or slug already exists.",
			NotFoundMessage:   "Service not found",
			ConcurrentUploads: true,
		}, media),
		policy:    policy,
		validator: v,
	}
}

// Create - категория с подуслугами. Картинки подуслуг грузятся параллельно,
// неудачная загрузка не мешает созданию категории.
func (s *ServiceCategoryServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.CreateServiceRequest, files dto.ServiceFiles) (*models.ServiceCategory, error) {
	payload, err := decodeObjectList[dto.SubServicePayload](s.validator, "subServicesData", req.SubServicesData)
	if err != nil {
		return nil, err
	}

	category := &models.ServiceCategory{
		Name:        strings.TrimSpace(req.Name),
		Slug:        util.NormalizeSlug(req.Slug),
		Description: strings.TrimSpace(req.Description),
		IsActive:    boolOr(req.IsActive, true),
		SubServices: make([]models.SubService, len(payload)),
	}
	for i, p := range payload {
		category.SubServices[i] = models.SubService{ID: uuid.NewString()}
		applySubPayload(&category.SubServices[i], p)
	}

	main := s.mainImageAttachment(category, files.MainImage)
	main.Required = true
	main.RequiredMessage = "Main image is required."

	attachments := append([]Attachment{main}, s.subImageAttachments(ctx, category, files.SubImages)...)
	if err := s.lc.create(ctx, db, category, attachments); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *ServiceCategoryServiceImpl) FindAll(ctx context.Context, db *gorm.DB) ([]models.ServiceCategory, error) {
	return s.lc.list(db, repositories.OrderBy("created_at DESC"))
}

func (s *ServiceCategoryServiceImpl) FindPublic(ctx context.Context, db *gorm.DB) ([]models.ServiceCategory, error) {
	return s.lc.list(db, activeOnly, repositories.OrderBy("name ASC"))
}

func (s *ServiceCategoryServiceImpl) GetPublic(ctx context.Context, db *gorm.DB, slugOrID string) (*models.ServiceCategory, error) {
	return findActiveBySlugOrID(s.lc, db, slugOrID, "Service not found or is not currently active.")
}

// Update сверяет подуслуги по id: пропавшие удаляются вместе с картинками,
// новый файл заменяет картинку, пустой imageUrl убирает ее.
// Без subServicesData подуслуги остаются как есть.
func (s *ServiceCategoryServiceImpl) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateServiceRequest, files dto.ServiceFiles) (*models.ServiceCategory, error) {
	var payload []dto.SubServicePayload
	if req.SubServicesData.Present() {
		var err error
		payload, err = decodeObjectList[dto.SubServicePayload](s.validator, "subServicesData", req.SubServicesData)
		if err != nil {
			return nil, err
		}
	}

	return s.lc.update(ctx, db, id, func(category *models.ServiceCategory) (Changes, error) {
		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				return Changes{}, apperrors.Validation("service", "Name cannot be empty.")
			}
			category.Name = strings.TrimSpace(*req.Name)
		}
		if req.Slug != nil {
			slug := util.NormalizeSlug(*req.Slug)
			if slug == "" {
				return Changes{}, apperrors.Validation("service", "Slug cannot be empty.")
			}
			category.Slug = slug
		}
		setIf(&category.Description, trimmed(req.Description))
		setIf(&category.IsActive, req.IsActive)

		var changes Changes
		if req.SubServicesData.Present() {
			changes.Obsolete = reconcileSubServices(category, payload, files.SubImages)
		}

		changes.Attachments = append(
			[]Attachment{s.mainImageAttachment(category, files.MainImage)},
			s.subImageAttachments(ctx, category, files.SubImages)...,
		)
		return changes, nil
	})
}

func (s *ServiceCategoryServiceImpl) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return s.lc.delete(ctx, db, id)
}

func (s *ServiceCategoryServiceImpl) mainImageAttachment(category *models.ServiceCategory, file *FileInput) Attachment {
	return Attachment{
		Field:  "mainImage",
		File:   file,
		Folder: serviceMainFolder,
		Policy: s.policy,
		Assign: func(ref *models.MediaRef) string {
			old := category.MainImageKey
			category.MainImage, category.MainImageKey = ref.URL, ref.Key
			return old
		},
	}
}

// subImageAttachments - subServiceImage_<i> относится к i-й подуслуге
func (s *ServiceCategoryServiceImpl) subImageAttachments(ctx context.Context, category *models.ServiceCategory, images map[int]*FileInput) []Attachment {
	indexes := make([]int, 0, len(images))
	for i := range images {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	attachments := make([]Attachment, 0, len(indexes))
	for _, i := range indexes {
		if i < 0 || i >= len(category.SubServices) {
			logger.CtxWarn(ctx, "Sub-service image has no matching sub-service, skipping", "index", i)
			continue
		}
		attachments = append(attachments, Attachment{
			Field:      "subServiceImage",
			File:       images[i],
			Folder:     serviceSubFolder,
			Policy:     s.policy,
			BestEffort: true,
			Assign: func(ref *models.MediaRef) string {
				sub := &category.SubServices[i]
				old := sub.ImageKey
				sub.ImageURL, sub.ImageKey = ref.URL, ref.Key
				return old
			},
		})
	}
	return attachments
}

// reconcileSubServices заменяет список подуслуг категории на payload и
// возвращает ключи картинок, которые больше не используются
func reconcileSubServices(category *models.ServiceCategory, payload []dto.SubServicePayload, images map[int]*FileInput) []string {
	existing := make(map[string]models.SubService, len(category.SubServices))
	for _, sub := range category.SubServices {
		existing[sub.ID] = sub
	}

	var obsolete []string
	kept := make(map[string]bool, len(payload))
	next := make([]models.SubService, len(payload))

	for i, p := range payload {
		current, ok := existing[p.Key()]
		if !ok || kept[current.ID] {
			// новая подуслуга: картинка только из загруженного файла
			next[i] = models.SubService{ID: uuid.NewString()}
			applySubPayload(&next[i], p)
			continue
		}

		kept[current.ID] = true
		applySubPayload(&current, p)
		// картинку убрали в форме и новую не прислали
		if strings.TrimSpace(p.ImageURL) == "" && images[i] == nil && current.ImageKey != "" {
			obsolete = append(obsolete, current.ImageKey)
			current.ImageURL, current.ImageKey = "", ""
		}
		next[i] = current
	}

	for _, sub := range category.SubServices {
		if !kept[sub.ID] && sub.ImageKey != "" {
			obsolete = append(obsolete, sub.ImageKey)
		}
	}

	category.SubServices = next
	return obsolete
}

func applySubPayload(sub *models.SubService, p dto.SubServicePayload) {
	sub.Name = strings.TrimSpace(p.Name)
	sub.Description = strings.TrimSpace(p.Description)
	sub.Slug = util.NormalizeSlug(p.Slug)
	if sub.Slug == "" {
		sub.Slug = util.Slugify(sub.Name)
	}
}
