package services

import (
	"context"
	"strings"

	"jits_backend/internal/models"
	"jits_backend/internal/services/dto"

	"gorm.io/gorm"
)

const storyFolder = "student-success-stories"

type SuccessStoryService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateTestimonialRequest, files dto.TestimonialFiles) (*models.SuccessStory, error)
	List(ctx context.Context, db *gorm.DB, query *dto.TestimonialListQuery) ([]models.SuccessStory, error)
	GetByID(ctx context.Context, db *gorm.DB, id string) (*models.SuccessStory, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateTestimonialRequest, files dto.TestimonialFiles) (*models.SuccessStory, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type SuccessStoryServiceImpl struct {
	lc     *lifecycle[models.SuccessStory, *models.SuccessStory]
	policy UploadPolicy
}

func NewSuccessStoryService(media MediaService, policy UploadPolicy) SuccessStoryService {
	return &SuccessStoryServiceImpl{
		lc: newLifecycle[models.SuccessStory](EntitySchema{
			Domain:          "success_story",
			NotFoundMessage: "Success story not found",
		}, media),
		policy: policy,
	}
}

func (s *SuccessStoryServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.CreateTestimonialRequest, files dto.TestimonialFiles) (*models.SuccessStory, error) {
	story := &models.SuccessStory{
		TestimonialBody: newTestimonialBody(req),
		Location:        strings.TrimSpace(req.Location),
	}
	if err := s.lc.create(ctx, db, story, s.attachments(story, files)); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *SuccessStoryServiceImpl) List(ctx context.Context, db *gorm.DB, query *dto.TestimonialListQuery) ([]models.SuccessStory, error) {
	return s.lc.list(db, activeFilter(query), testimonialOrder)
}

func (s *SuccessStoryServiceImpl) GetByID(ctx context.Context, db *gorm.DB, id string) (*models.SuccessStory, error) {
	return s.lc.get(db, id)
}

func (s *SuccessStoryServiceImpl) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateTestimonialRequest, files dto.TestimonialFiles) (*models.SuccessStory, error) {
	return s.lc.update(ctx, db, id, func(story *models.SuccessStory) (Changes, error) {
		obsolete, err := applyTestimonialUpdate(&story.TestimonialBody, req, files.Media)
		if err != nil {
			return Changes{}, err
		}
		setIf(&story.Location, trimmed(req.Location))
		return Changes{Attachments: s.attachments(story, files), Obsolete: obsolete}, nil
	})
}

func (s *SuccessStoryServiceImpl) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return s.lc.delete(ctx, db, id)
}

func (s *SuccessStoryServiceImpl) attachments(story *models.SuccessStory, files dto.TestimonialFiles) []Attachment {
	return []Attachment{
		testimonialMedia(&story.TestimonialBody, storyFolder, s.policy, files.Media),
		{
			Field:  "profileImage",
			File:   files.ProfileImage,
			Folder: storyFolder,
			Policy: s.policy,
			Assign: func(ref *models.MediaRef) string {
				old := story.ProfileImageKey
				story.ProfileImage, story.ProfileImageKey = ref.URL, ref.Key
				return old
			},
		},
	}
}
