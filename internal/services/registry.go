package services

import (
	"jits_backend/internal/auth"
	"jits_backend/internal/config"
	"jits_backend/internal/email"
	"jits_backend/internal/repositories"
	"jits_backend/internal/storage"
	"jits_backend/internal/validator"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService            AuthService
	BlogService            BlogService
	CourseService          CourseService
	ServiceCategoryService ServiceCategoryService
	StudentService         StudentService
	TestimonialService     TestimonialService
	SuccessStoryService    SuccessStoryService
	MediaService           MediaService
	Tokens                 *auth.TokenService
	UserRepository         repositories.UserRepository
}

// NewServiceContainer собирает сервисы поверх хранилища и почтового провайдера
func NewServiceContainer(
	cfg *config.Config,
	store storage.Storage,
	emailProvider email.Provider,
	v *validator.Validator,
) *ServiceContainer {
	policies := NewUploadPolicies(cfg.Upload.ImageMaxSize, cfg.Upload.StudentImageMaxSize, cfg.Upload.MediaMaxSize)
	media := NewMediaService(store)
	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL)
	userRepo := repositories.NewUserRepository()

	return &ServiceContainer{
		AuthService:            NewAuthService(userRepo, tokens, emailProvider, cfg.Server.FrontendURL, cfg.Auth.ResetTokenTTL),
		BlogService:            NewBlogService(media, policies.Media),
		CourseService:          NewCourseService(media, policies.Image),
		ServiceCategoryService: NewServiceCategoryService(media, policies.Image, v),
		StudentService:         NewStudentService(media, policies.StudentImage, v),
		TestimonialService:     NewTestimonialService(media, policies.Media),
		SuccessStoryService:    NewSuccessStoryService(media, policies.Media),
		MediaService:           media,
		Tokens:                 tokens,
		UserRepository:         userRepo,
	}
}
