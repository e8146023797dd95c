package services

import (
	"context"
	"strings"

	"jits_backend/internal/models"
	"jits_backend/internal/repositories"
	"jits_backend/internal/services/dto"
	"jits_backend/internal/util"
	"jits_backend/pkg/apperrors"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

type BlogService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateBlogRequest, image *FileInput) (*models.Blog, error)
	List(ctx context.Context, db *gorm.DB, query *dto.BlogListQuery) ([]models.Blog, error)
	GetByID(ctx context.Context, db *gorm.DB, id string) (*models.Blog, error)
	GetBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.Blog, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateBlogRequest, image *FileInput) (*models.Blog, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type BlogServiceImpl struct {
	lc     *lifecycle[models.Blog, *models.Blog]
	policy UploadPolicy
	html   *bluemonday.Policy
}

func NewBlogService(media MediaService, policy UploadPolicy) BlogService {
	return &BlogServiceImpl{
		lc: newLifecycle[models.Blog](EntitySchema{
			Domain:           "blog",
			DuplicateMessage: "A blog post with this title already exists.",
			NotFoundMessage:  "Blog post not found",
		}, media),
		policy: policy,
		html:   bluemonday.UGCPolicy(),
	}
}

func (s *BlogServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.CreateBlogRequest, image *FileInput) (*models.Blog, error) {
	title := strings.TrimSpace(req.Title)
	slug := util.Slugify(title)
	if slug == "" {
		return nil, apperrors.Validation("blog", "Title must contain letters or digits.")
	}

	publishDate, err := parsePublishDate(req.PublishDate)
	if err != nil {
		return nil, err
	}

	blog := &models.Blog{
		Title:           title,
		Slug:            slug,
		Excerpt:         strings.TrimSpace(req.Excerpt),
		Content:         s.html.Sanitize(req.Content),
		Category:        strings.TrimSpace(req.Category),
		Tags:            splitTags(req.Tags),
		Author:          strings.TrimSpace(req.Author),
		PublishDate:     publishDate,
		MetaTitle:       strings.TrimSpace(req.MetaTitle),
		MetaDescription: strings.TrimSpace(req.MetaDescription),
		Status:          models.BlogStatus(orDefault(req.Status, string(models.BlogStatusPublished))),
	}

	if err := s.lc.create(ctx, db, blog, []Attachment{s.imageAttachment(blog, image)}); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *BlogServiceImpl) List(ctx context.Context, db *gorm.DB, query *dto.BlogListQuery) ([]models.Blog, error) {
	scopes := []repositories.Scope{repositories.OrderBy("created_at DESC")}
	if query != nil {
		if query.Status != "" {
			scopes = append(scopes, repositories.Where("status = ?", query.Status))
		}
		if query.Category != "" {
			scopes = append(scopes, repositories.Where("category = ?", query.Category))
		}
	}
	return s.lc.list(db, scopes...)
}

func (s *BlogServiceImpl) GetByID(ctx context.Context, db *gorm.DB, id string) (*models.Blog, error) {
	return s.lc.get(db, id)
}

func (s *BlogServiceImpl) GetBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.Blog, error) {
	return s.lc.findOne(db, repositories.Where("slug = ?", util.NormalizeSlug(slug)))
}

func (s *BlogServiceImpl) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateBlogRequest, image *FileInput) (*models.Blog, error) {
	return s.lc.update(ctx, db, id, func(blog *models.Blog) (Changes, error) {
		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if title == "" {
				return Changes{}, apperrors.Validation("blog", "Title cannot be empty.")
			}
			// новый заголовок - новый slug
			if title != blog.Title {
				blog.Title = title
				blog.Slug = util.Slugify(title)
				if blog.Slug == "" {
					return Changes{}, apperrors.Validation("blog", "Title must contain letters or digits.")
				}
			}
		}
		if req.PublishDate != nil {
			publishDate, err := parsePublishDate(*req.PublishDate)
			if err != nil {
				return Changes{}, err
			}
			blog.PublishDate = publishDate
		}
		if req.Content != nil {
			blog.Content = s.html.Sanitize(*req.Content)
		}
		if req.Tags != nil {
			blog.Tags = splitTags(req.Tags)
		}
		setIf(&blog.Excerpt, trimmed(req.Excerpt))
		setIf(&blog.Category, trimmed(req.Category))
		setIf(&blog.Author, trimmed(req.Author))
		setIf(&blog.MetaTitle, trimmed(req.MetaTitle))
		setIf(&blog.MetaDescription, trimmed(req.MetaDescription))
		if req.Status != nil && *req.Status != "" {
			blog.Status = models.BlogStatus(*req.Status)
		}

		return Changes{Attachments: []Attachment{s.imageAttachment(blog, image)}}, nil
	})
}

func (s *BlogServiceImpl) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return s.lc.delete(ctx, db, id)
}

func (s *BlogServiceImpl) imageAttachment(blog *models.Blog, image *FileInput) Attachment {
	return Attachment{
		Field:  "image",
		File:   image,
		Folder: "blogs",
		Policy: s.policy,
		Assign: func(ref *models.MediaRef) string {
			old := blog.ImageKey
			blog.ImageURL, blog.ImageKey = ref.URL, ref.Key
			return old
		},
	}
}
