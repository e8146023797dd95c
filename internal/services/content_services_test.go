package services

import (
	"context"
	"mime/multipart"
	"testing"

	"jits_backend/internal/models"
	"jits_backend/internal/services/dto"
	"jits_backend/internal/util"
	"jits_backend/internal/validator"
	"jits_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Course ---

func TestCourseService_DefaultsAndRating(t *testing.T) {
	db := setupDB(t)
	_, media := newTestMedia()
	svc := NewCourseService(media, testImagePolicy)
	ctx := context.Background()

	course, err := svc.Create(ctx, db, newCourseRequest("Go", "go"), pngFile(t, "go.png"))
	require.NoError(t, err)
	assert.Equal(t, "Admin", course.Instructor)
	assert.Equal(t, "English", course.Language)
	assert.Equal(t, models.CourseLevelBeginner, course.Level)
	assert.True(t, course.IsActive)
	assert.True(t, course.MobileAccess)
	assert.False(t, course.IsFeatured)

	for _, r := range []int{5, 4, 4} {
		course, err = svc.Rate(ctx, db, course.ID, r)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, course.TotalRatings)
	assert.Equal(t, 4.3, course.Rating)

	_, err = svc.Rate(ctx, db, course.ID, 6)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidationFailed))
}

func TestCourseService_PublicQueries(t *testing.T) {
	db := setupDB(t)
	_, media := newTestMedia()
	svc := NewCourseService(media, testImagePolicy)
	ctx := context.Background()

	web := newCourseRequest("Web Development", "web-dev")
	web.IsFeatured = ptr(true)
	_, err := svc.Create(ctx, db, web, pngFile(t, "a.png"))
	require.NoError(t, err)

	ai := newCourseRequest("Machine Learning", "ml")
	ai.Category = "AI"
	ai.Price = ptr(9999.0)
	ai.Level = "Advanced"
	_, err = svc.Create(ctx, db, ai, pngFile(t, "b.png"))
	require.NoError(t, err)

	hidden := newCourseRequest("Legacy PHP", "legacy-php")
	hidden.IsActive = ptr(false)
	hiddenCourse, err := svc.Create(ctx, db, hidden, pngFile(t, "c.png"))
	require.NoError(t, err)

	all, err := svc.FindAll(ctx, db)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	public, err := svc.FindPublic(ctx, db)
	require.NoError(t, err)
	assert.Len(t, public, 2)

	featured, err := svc.FindFeatured(ctx, db)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "web-dev", featured[0].Slug)

	found, err := svc.Search(ctx, db, &dto.CourseSearchQuery{Q: "LEARN"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "ml", found[0].Slug)

	found, err = svc.Search(ctx, db, &dto.CourseSearchQuery{MinPrice: ptr(1000.0), MaxPrice: ptr(5000.0)})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "web-dev", found[0].Slug)

	byCategory, err := svc.FindByCategory(ctx, db, "ai")
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	bySlug, err := svc.GetPublic(ctx, db, "ml")
	require.NoError(t, err)
	byID, err := svc.GetPublic(ctx, db, bySlug.ID)
	require.NoError(t, err)
	assert.Equal(t, bySlug.ID, byID.ID)

	_, err = svc.GetPublic(ctx, db, hiddenCourse.Slug)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Course not found or is not currently active.", appErr.Message)
}

// --- Blog ---

func TestBlogService_SlugAndSanitize(t *testing.T) {
	db := setupDB(t)
	store, media := newTestMedia()
	svc := NewBlogService(media, testMediaPolicy)
	ctx := context.Background()

	blog, err := svc.Create(ctx, db, &dto.CreateBlogRequest{
		Title:   "Héllo World: Go 1.23!",
		Content: `<p>Hi</p><script>alert(1)</script>`,
		Tags:    []string{"go, backend"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello-world-go-123", blog.Slug)
	assert.Equal(t, "<p>Hi</p>", blog.Content)
	assert.Equal(t, models.BlogStatusPublished, blog.Status)
	assert.Equal(t, []string{"go", "backend"}, []string(blog.Tags))
	assert.Empty(t, store.Keys())

	_, err = svc.Create(ctx, db, &dto.CreateBlogRequest{Title: "Hello world go 123"}, nil)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeDuplicateEntity))

	updated, err := svc.Update(ctx, db, blog.ID, &dto.UpdateBlogRequest{Title: ptr("New Title")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "new-title", updated.Slug)

	got, err := svc.GetBySlug(ctx, db, "new-title")
	require.NoError(t, err)
	assert.Equal(t, blog.ID, got.ID)

	_, err = svc.GetByID(ctx, db, "missing")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Blog post not found", appErr.Message)

	drafts, err := svc.List(ctx, db, &dto.BlogListQuery{Status: "draft"})
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

// --- Service category ---

func TestServiceCategory_Create_PartialSubUploads(t *testing.T) {
	db := setupDB(t)
	store, media := newTestMedia()
	svc := NewServiceCategoryService(media, testImagePolicy, validator.New("IN"))
	ctx := context.Background()

	req := &dto.CreateServiceRequest{
		Name:            "Web Services",
		Slug:            "web-services",
		Description:     "Sites and apps",
		SubServicesData: dto.NewJSONText(`[{"name":"Landing pages"},{"name":"E-commerce","slug":"shop"}]`),
	}
	files := dto.ServiceFiles{
		MainImage: pngFile(t, "main.png"),
		SubImages: map[int]*multipart.FileHeader{
			0: pngFile(t, "landing.png"),
			1: fileHeader(t, "notes.txt", "text/plain", []byte("not an image")),
			7: pngFile(t, "orphan.png"),
		},
	}

	category, err := svc.Create(ctx, db, req, files)
	require.NoError(t, err, "ошибка загрузки подуслуги не мешает созданию")

	require.Len(t, category.SubServices, 2)
	assert.NotEmpty(t, category.MainImageKey)
	assert.NotEmpty(t, category.SubServices[0].ImageKey)
	assert.Equal(t, "landing-pages", category.SubServices[0].Slug)
	assert.Empty(t, category.SubServices[1].ImageURL)
	assert.Equal(t, "shop", category.SubServices[1].Slug)
	assert.True(t, category.IsActive)
	assert.Len(t, store.Keys(), 2)
}

func TestServiceCategory_Create_RequiresMainImage(t *testing.T) {
	db := setupDB(t)
	store, media := newTestMedia()
	svc := NewServiceCategoryService(media, testImagePolicy, validator.New("IN"))

	_, err := svc.Create(context.Background(), db, &dto.CreateServiceRequest{
		Name: "Cloud", Slug: "cloud", Description: "d",
	}, dto.ServiceFiles{SubImages: map[int]*multipart.FileHeader{0: pngFile(t, "x.png")}})

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Main image is required.", appErr.Message)
	assert.Empty(t, store.Keys())
}

func TestServiceCategory_Update_ReconcilesSubServices(t *testing.T) {
	db := setupDB(t)
	store, media := newTestMedia()
	svc := NewServiceCategoryService(media, testImagePolicy, validator.New("IN"))
	ctx := context.Background()

	category, err := svc.Create(ctx, db, &dto.CreateServiceRequest{
		Name:            "Design",
		Slug:            "design",
		Description:     "d",
		SubServicesData: dto.NewJSONText(`[{"name":"Logo"},{"name":"Branding"},{"name":"UI"}]`),
	}, dto.ServiceFiles{
		MainImage: pngFile(t, "main.png"),
		SubImages: map[int]*multipart.FileHeader{
			0: pngFile(t, "logo.png"),
			1: pngFile(t, "branding.png"),
			2: pngFile(t, "ui.png"),
		},
	})
	require.NoError(t, err)
	require.Len(t, store.Keys(), 4)

	logo, branding, ui := category.SubServices[0], category.SubServices[1], category.SubServices[2]
	t.Logf("Подуслуги: %s, %s, %s", logo.ID, branding.ID, ui.ID)

	// logo - новая картинка, branding - картинку убрали (старые клиенты шлют _id),
	// ui - удалена, motion - новая
	payload := `[` +
		`{"id":"` + logo.ID + `","name":"Logo design","imageUrl":"` + logo.ImageURL + `"},` +
		`{"_id":"` + branding.ID + `","name":"Branding","imageUrl":""},` +
		`{"name":"Motion"}` +
		`]`
	updated, err := svc.Update(ctx, db, category.ID, &dto.UpdateServiceRequest{
		SubServicesData: dto.NewJSONText(payload),
	}, dto.ServiceFiles{SubImages: map[int]*multipart.FileHeader{0: pngFile(t, "logo-v2.png")}})
	require.NoError(t, err)

	require.Len(t, updated.SubServices, 3)
	assert.Equal(t, logo.ID, updated.SubServices[0].ID)
	assert.Equal(t, "Logo design", updated.SubServices[0].Name)
	assert.Contains(t, updated.SubServices[0].ImageKey, "logo-v2.png")

	assert.Equal(t, branding.ID, updated.SubServices[1].ID)
	assert.Empty(t, updated.SubServices[1].ImageURL)
	assert.Empty(t, updated.SubServices[1].ImageKey)

	assert.NotEqual(t, ui.ID, updated.SubServices[2].ID)
	assert.Equal(t, "Motion", updated.SubServices[2].Name)

	assert.ElementsMatch(t, []string{category.MainImageKey, updated.SubServices[0].ImageKey}, store.Keys())

	// Без subServicesData подуслуги не трогаем
	again, err := svc.Update(ctx, db, category.ID, &dto.UpdateServiceRequest{Description: ptr("new")}, dto.ServiceFiles{})
	require.NoError(t, err)
	assert.Len(t, again.SubServices, 3)

	require.NoError(t, svc.Delete(ctx, db, category.ID))
	assert.Empty(t, store.Keys(), "удаление чистит и вложенные картинки")
}

func TestServiceCategory_PublicOrder(t *testing.T) {
	db := setupDB(t)
	_, media := newTestMedia()
	svc := NewServiceCategoryService(media, testImagePolicy, validator.New("IN"))
	ctx := context.Background()

	for _, name := range []string{"Zeta", "Alpha"} {
		_, err := svc.Create(ctx, db, &dto.CreateServiceRequest{
			Name: name, Slug: util.Slugify(name), Description: "d",
		}, dto.ServiceFiles{MainImage: pngFile(t, name+".png")})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, db, &dto.CreateServiceRequest{
		Name: "Hidden", Slug: "hidden", Description: "d", IsActive: ptr(false),
	}, dto.ServiceFiles{MainImage: pngFile(t, "h.png")})
	require.NoError(t, err)

	public, err := svc.FindPublic(ctx, db)
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, "Alpha", public[0].Name)

	_, err = svc.GetPublic(ctx, db, "hidden")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))

	_, err = svc.Create(ctx, db, &dto.CreateServiceRequest{
		Name: "Alpha", Slug: "alpha-2", Description: "d",
	}, dto.ServiceFiles{MainImage: pngFile(t, "dup.png")})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeDuplicateEntity))
}

// --- Student ---

func TestStudentService_ListFeaturedAndNested(t *testing.T) {
	db := setupDB(t)
	_, media := newTestMedia()
	svc := NewStudentService(media, testImagePolicy, validator.New("IN"))
	ctx := context.Background()

	for i, name := range []string{"Asha", "Ravi", "Meera"} {
		req := &dto.CreateStudentRequest{
			Slug:            util.Slugify(name),
			Name:            name,
			Bio:             "Loves Go",
			Specializations: []string{`["Web Development","Cloud"]`},
		}
		if i == 0 {
			req.Badges = []string{`["Top Performer"]`}
			req.Specializations = []string{`["Data Science"]`}
			req.Education = dto.NewJSONText(`[{"degree":"BCA","institution":"RU","year":"2022"}]`)
		}
		_, err := svc.Create(ctx, db, req, dto.StudentFiles{})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, db, &dto.StudentListQuery{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 2)

	page, err = svc.List(ctx, db, &dto.StudentListQuery{Specialization: "web development"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	page, err = svc.List(ctx, db, &dto.StudentListQuery{Search: "meer"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Meera", page.Items[0].Name)

	featured, err := svc.Featured(ctx, db, 0)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "asha", featured[0].Slug)

	bySpec, err := svc.FindBySpecialization(ctx, db, "Cloud")
	require.NoError(t, err)
	assert.Len(t, bySpec, 2)

	asha, err := svc.GetBySlug(ctx, db, "asha")
	require.NoError(t, err)
	require.Len(t, asha.Education, 1)

	asha, err = svc.AddEducation(ctx, db, asha.ID, &dto.AddEducationRequest{Degree: "MCA", Institution: "BIT", Year: "2024"})
	require.NoError(t, err)
	assert.Len(t, asha.Education, 2)

	asha, err = svc.AddTestimonial(ctx, db, asha.ID, &dto.StudentTestimonialPayload{Name: "Mentor", Role: "Lead", Text: "Great engineer"})
	require.NoError(t, err)
	assert.Len(t, asha.Testimonials, 1)

	_, err = svc.Create(ctx, db, &dto.CreateStudentRequest{Slug: "asha", Name: "Other"}, dto.StudentFiles{})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Student with this slug already exists", appErr.Message)
}

func TestStudentService_Update_ReplacesImages(t *testing.T) {
	db := setupDB(t)
	store, media := newTestMedia()
	svc := NewStudentService(media, testImagePolicy, validator.New("IN"))
	ctx := context.Background()

	student, err := svc.Create(ctx, db, &dto.CreateStudentRequest{Slug: "asha", Name: "Asha"},
		dto.StudentFiles{Image: pngFile(t, "face.png"), CoverImage: pngFile(t, "cover.png")})
	require.NoError(t, err)
	require.Len(t, store.Keys(), 2)

	updated, err := svc.Update(ctx, db, student.ID, &dto.UpdateStudentRequest{Title: ptr("Engineer")},
		dto.StudentFiles{Image: pngFile(t, "face2.png")})
	require.NoError(t, err)

	assert.Equal(t, "Engineer", updated.Title)
	assert.Equal(t, student.CoverImageKey, updated.CoverImageKey)
	assert.ElementsMatch(t, []string{updated.ImageKey, updated.CoverImageKey}, store.Keys())

	_, err = svc.Update(ctx, db, student.ID, &dto.UpdateStudentRequest{
		Education: dto.NewJSONText(`[{"degree":"BCA"}]`),
	}, dto.StudentFiles{})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidationFailed))
}

// --- Testimonials and success stories ---

func TestTestimonialService_DefaultsMediaTypeAndOrder(t *testing.T) {
	db := setupDB(t)
	store, media := newTestMedia()
	svc := NewTestimonialService(media, testMediaPolicy)
	ctx := context.Background()

	video := fileHeader(t, "review.mp4", "video/mp4", []byte("fake video"))
	second, err := svc.Create(ctx, db, &dto.CreateTestimonialRequest{
		Name: "Priya", Designation: "CTO", Content: "Great team", Order: ptr(2),
	}, video)
	require.NoError(t, err)
	assert.Equal(t, 5, second.Rating)
	assert.True(t, second.IsActive)
	assert.Equal(t, models.MediaTypeVideo, second.MediaType)

	first, err := svc.Create(ctx, db, &dto.CreateTestimonialRequest{
		Name: "Arun", Designation: "CEO", Content: "On time", Rating: ptr(4), Order: ptr(1),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.MediaTypeNone, first.MediaType)

	_, err = svc.Create(ctx, db, &dto.CreateTestimonialRequest{
		Name: "Old", Designation: "PM", Content: "x", IsActive: ptr(false),
	}, nil)
	require.NoError(t, err)

	list, err := svc.List(ctx, db, &dto.TestimonialListQuery{IsActive: ptr(true)})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	updated, err := svc.Update(ctx, db, second.ID, &dto.UpdateTestimonialRequest{RemoveMedia: ptr(true)}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.MediaTypeNone, updated.MediaType)
	assert.Empty(t, store.Keys())

	_, err = svc.Update(ctx, db, second.ID, &dto.UpdateTestimonialRequest{Name: ptr("  ")}, nil)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidationFailed))
}

func TestSuccessStoryService_TwoMediaFields(t *testing.T) {
	db := setupDB(t)
	store, media := newTestMedia()
	svc := NewSuccessStoryService(media, testMediaPolicy)
	ctx := context.Background()

	story, err := svc.Create(ctx, db, &dto.CreateTestimonialRequest{
		Name: "Kiran", Designation: "Developer", Content: "Got placed", Location: "Ranchi",
	}, dto.TestimonialFiles{Media: pngFile(t, "story.png"), ProfileImage: pngFile(t, "kiran.png")})
	require.NoError(t, err)

	assert.Equal(t, "Ranchi", story.Location)
	assert.Equal(t, models.MediaTypeImage, story.MediaType)
	assert.Contains(t, story.ProfileImageKey, "student-success-stories/")
	assert.Len(t, store.Keys(), 2)

	require.NoError(t, svc.Delete(ctx, db, story.ID))
	assert.Empty(t, store.Keys())

	_, err = svc.GetByID(ctx, db, story.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}
