package models

type UserRole string
type BlogStatus string
type CourseLevel string
type MediaType string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"

	CourseLevelBeginner     CourseLevel = "Beginner"
	CourseLevelIntermediate CourseLevel = "Intermediate"
	CourseLevelAdvanced     CourseLevel = "Advanced"

	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
	MediaTypeNone  MediaType = "none"
)
