package services

import (
	"context"
	"strings"

	"jits_backend/internal/models"
	"jits_backend/internal/repositories"
	"jits_backend/internal/services/dto"
	"jits_backend/internal/util"
	"jits_backend/internal/validator"
	"jits_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	defaultStudentPageSize    = 10
	defaultFeaturedStudentCap = 6
	studentFolder             = "students"
)

// StudentPage - страница списка студентов
type StudentPage struct {
	Items       []models.Student
	Total       int64
	TotalPages  int
	CurrentPage int
}

type StudentService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateStudentRequest, files dto.StudentFiles) (*models.Student, error)
	List(ctx context.Context, db *gorm.DB, query *dto.StudentListQuery) (*StudentPage, error)
	Featured(ctx context.Context, db *gorm.DB, limit int) ([]models.Student, error)
	GetByID(ctx context.Context, db *gorm.DB, id string) (*models.Student, error)
	GetBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.Student, error)
	FindBySpecialization(ctx context.Context, db *gorm.DB, specialization string) ([]models.Student, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateStudentRequest, files dto.StudentFiles) (*models.Student, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
	AddTestimonial(ctx context.Context, db *gorm.DB, id string, req *dto.StudentTestimonialPayload) (*models.Student, error)
	AddEducation(ctx context.Context, db *gorm.DB, id string, req *dto.AddEducationRequest) (*models.Student, error)
}

type StudentServiceImpl struct {
	lc        *lifecycle[models.Student, *models.Student]
	policy    UploadPolicy
	validator *validator.Validator
}

func NewStudentService(media MediaService, policy UploadPolicy, v *validator.Validator) StudentService {
	return &StudentServiceImpl{
		lc: newLifecycle[models.Student](EntitySchema{
			Domain:           "student",
			DuplicateMessage: "Student with this slug already exists",
			NotFoundMessage:  "Student not found",
		}, media),
		policy:    policy,
		validator: v,
	}
}

func (s *StudentServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.CreateStudentRequest, files dto.StudentFiles) (*models.Student, error) {
	education, err := s.decodeEducation(req.Education)
	if err != nil {
		return nil, err
	}
	testimonials, err := s.decodeTestimonials(req.Testimonials)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		Slug:            util.NormalizeSlug(req.Slug),
		Name:            strings.TrimSpace(req.Name),
		Title:           strings.TrimSpace(req.Title),
		Badges:          decodeStringList(ctx, "badges", req.Badges),
		Location:        strings.TrimSpace(req.Location),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           strings.TrimSpace(req.Phone),
		Experience:      strings.TrimSpace(req.Experience),
		Bio:             strings.TrimSpace(req.Bio),
		Education:       education,
		Specializations: decodeStringList(ctx, "specializations", req.Specializations),
		Testimonials:    testimonials,
	}

	if err := s.lc.create(ctx, db, student, s.attachments(student, files)); err != nil {
		return nil, err
	}
	return student, nil
}

// List - страница студентов с поиском по имени, должности и био
func (s *StudentServiceImpl) List(ctx context.Context, db *gorm.DB, query *dto.StudentListQuery) (*StudentPage, error) {
	page, limit := 1, defaultStudentPageSize
	var filters []repositories.Scope
	if query != nil {
		if query.Page > 0 {
			page = query.Page
		}
		if query.Limit > 0 {
			limit = query.Limit
		}
		filters = append(filters, repositories.Search(query.Search, "name", "title", "bio"))
		if spec := strings.TrimSpace(query.Specialization); spec != "" {
			filters = append(filters, bySpecialization(spec))
		}
	}

	total, err := s.lc.count(db, filters...)
	if err != nil {
		return nil, err
	}

	items, err := s.lc.list(db, append(filters,
		repositories.OrderBy("created_at DESC"),
		repositories.Paginate(page, limit),
	)...)
	if err != nil {
		return nil, err
	}

	return &StudentPage{
		Items:       items,
		Total:       total,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		CurrentPage: page,
	}, nil
}

// Featured - студенты с наградами
func (s *StudentServiceImpl) Featured(ctx context.Context, db *gorm.DB, limit int) ([]models.Student, error) {
	if limit <= 0 {
		limit = defaultFeaturedStudentCap
	}
	return s.lc.list(db,
		repositories.Where("badge_count > ?", 0),
		repositories.OrderBy("created_at DESC"),
		repositories.Limit(limit),
	)
}

func (s *StudentServiceImpl) GetByID(ctx context.Context, db *gorm.DB, id string) (*models.Student, error) {
	return s.lc.get(db, id)
}

func (s *StudentServiceImpl) GetBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.Student, error) {
	return s.lc.findOne(db, repositories.Where("slug = ?", util.NormalizeSlug(slug)))
}

func (s *StudentServiceImpl) FindBySpecialization(ctx context.Context, db *gorm.DB, specialization string) ([]models.Student, error) {
	return s.lc.list(db, bySpecialization(specialization), repositories.OrderBy("created_at DESC"))
}

func (s *StudentServiceImpl) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateStudentRequest, files dto.StudentFiles) (*models.Student, error) {
	var (
		education    []models.Education
		testimonials []models.StudentTestimonial
		err          error
	)
	if req.Education.Present() {
		if education, err = s.decodeEducation(req.Education); err != nil {
			return nil, err
		}
	}
	if req.Testimonials.Present() {
		if testimonials, err = s.decodeTestimonials(req.Testimonials); err != nil {
			return nil, err
		}
	}

	return s.lc.update(ctx, db, id, func(student *models.Student) (Changes, error) {
		if req.Slug != nil {
			slug := util.NormalizeSlug(*req.Slug)
			if slug == "" {
				return Changes{}, apperrors.Validation("student", "Slug cannot be empty.")
			}
			student.Slug = slug
		}
		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				return Changes{}, apperrors.Validation("student", "Name cannot be empty.")
			}
			student.Name = strings.TrimSpace(*req.Name)
		}
		setIf(&student.Title, trimmed(req.Title))
		setIf(&student.Location, trimmed(req.Location))
		if req.Email != nil {
			student.Email = strings.ToLower(strings.TrimSpace(*req.Email))
		}
		setIf(&student.Phone, trimmed(req.Phone))
		setIf(&student.Experience, trimmed(req.Experience))
		setIf(&student.Bio, trimmed(req.Bio))
		if req.Badges != nil {
			student.Badges = decodeStringList(ctx, "badges", req.Badges)
		}
		if req.Specializations != nil {
			student.Specializations = decodeStringList(ctx, "specializations", req.Specializations)
		}
		if req.Education.Present() {
			student.Education = education
		}
		if req.Testimonials.Present() {
			student.Testimonials = testimonials
		}

		return Changes{Attachments: s.attachments(student, files)}, nil
	})
}

func (s *StudentServiceImpl) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return s.lc.delete(ctx, db, id)
}

func (s *StudentServiceImpl) AddTestimonial(ctx context.Context, db *gorm.DB, id string, req *dto.StudentTestimonialPayload) (*models.Student, error) {
	return s.lc.update(ctx, db, id, func(student *models.Student) (Changes, error) {
		student.Testimonials = append(student.Testimonials, models.StudentTestimonial{
			Name: strings.TrimSpace(req.Name),
			Role: strings.TrimSpace(req.Role),
			Text: strings.TrimSpace(req.Text),
		})
		return Changes{}, nil
	})
}

func (s *StudentServiceImpl) AddEducation(ctx context.Context, db *gorm.DB, id string, req *dto.AddEducationRequest) (*models.Student, error) {
	return s.lc.update(ctx, db, id, func(student *models.Student) (Changes, error) {
		student.Education = append(student.Education, models.Education{
			Degree:      strings.TrimSpace(req.Degree),
			Institution: strings.TrimSpace(req.Institution),
			Year:        strings.TrimSpace(req.Year),
			Achievement: strings.TrimSpace(req.Achievement),
		})
		return Changes{}, nil
	})
}

func (s *StudentServiceImpl) attachments(student *models.Student, files dto.StudentFiles) []Attachment {
	return []Attachment{
		{
			Field:  "image",
			File:   files.Image,
			Folder: studentFolder,
			Policy: s.policy,
			Assign: func(ref *models.MediaRef) string {
				old := student.ImageKey
				student.Image, student.ImageKey = ref.URL, ref.Key
				return old
			},
		},
		{
			Field:  "coverImage",
			File:   files.CoverImage,
			Folder: studentFolder,
			Policy: s.policy,
			Assign: func(ref *models.MediaRef) string {
				old := student.CoverImageKey
				student.CoverImage, student.CoverImageKey = ref.URL, ref.Key
				return old
			},
		},
	}
}

func (s *StudentServiceImpl) decodeEducation(text dto.JSONText) ([]models.Education, error) {
	items, err := decodeObjectList[dto.EducationPayload](s.validator, "education", text)
	if err != nil {
		return nil, err
	}
	out := make([]models.Education, len(items))
	for i, e := range items {
		out[i] = models.Education{
			Degree:      strings.TrimSpace(e.Degree),
			Institution: strings.TrimSpace(e.Institution),
			Year:        strings.TrimSpace(e.Year),
			Achievement: strings.TrimSpace(e.Achievement),
		}
	}
	return out, nil
}

func (s *StudentServiceImpl) decodeTestimonials(text dto.JSONText) ([]models.StudentTestimonial, error) {
	items, err := decodeObjectList[dto.StudentTestimonialPayload](s.validator, "testimonials", text)
	if err != nil {
		return nil, err
	}
	out := make([]models.StudentTestimonial, len(items))
	for i, t := range items {
		out[i] = models.StudentTestimonial{
			Name: strings.TrimSpace(t.Name),
			Role: strings.TrimSpace(t.Role),
			Text: strings.TrimSpace(t.Text),
		}
	}
	return out, nil
}

// bySpecialization ищет точное совпадение элемента списка специализаций
func bySpecialization(specialization string) repositories.Scope {
	return repositories.ContainsToken("specialization_index", models.SpecializationToken(specialization))
}
