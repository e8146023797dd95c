package dto

type CreateBlogRequest struct {
	Title           string   `json:"title" form:"title" validate:"required,max=255"`
	Excerpt         string   `json:"excerpt" form:"excerpt"`
	Content         string   `json:"content" form:"content"`
	Category        string   `json:"category" form:"category" validate:"max=100"`
	Tags            []string `json:"tags" form:"tags"` // "a, b, c"
	Author          string   `json:"author" form:"author" validate:"max=255"`
	PublishDate     string   `json:"publishDate" form:"publishDate"` // RFC3339 или YYYY-MM-DD
	MetaTitle       string   `json:"metaTitle" form:"metaTitle" validate:"max=255"`
	MetaDescription string   `json:"metaDescription" form:"metaDescription"`
	Status          string   `json:"status" form:"status" validate:"omitempty,oneof=draft published"`
}

type UpdateBlogRequest struct {
	Title           *string  `json:"title" form:"title" validate:"omitempty,max=255"`
	Excerpt         *string  `json:"excerpt" form:"excerpt"`
	Content         *string  `json:"content" form:"content"`
	Category        *string  `json:"category" form:"category" validate:"omitempty,max=100"`
	Tags            []string `json:"tags" form:"tags"`
	Author          *string  `json:"author" form:"author" validate:"omitempty,max=255"`
	PublishDate     *string  `json:"publishDate" form:"publishDate"`
	MetaTitle       *string  `json:"metaTitle" form:"metaTitle" validate:"omitempty,max=255"`
	MetaDescription *string  `json:"metaDescription" form:"metaDescription"`
	Status          *string  `json:"status" form:"status" validate:"omitempty,oneof=draft published"`
}

type BlogListQuery struct {
	Status   string `form:"status" validate:"omitempty,oneof=draft published"`
	Category string `form:"category"`
}
