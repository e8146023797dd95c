package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler            *AuthHandler
	BlogHandler            *BlogHandler
	CourseHandler          *CourseHandler
	ServiceCategoryHandler *ServiceCategoryHandler
	StudentHandler         *StudentHandler
	TestimonialHandler     *TestimonialHandler
	SuccessStoryHandler    *SuccessStoryHandler
	FileHandler            *FileHandler
}
