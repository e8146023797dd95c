package models

// TestimonialBody - общие поля отзыва и истории успеха
type TestimonialBody struct {
	Name        string    `gorm:"size:255;not null" json:"name"`
	Designation string    `gorm:"size:255;not null" json:"designation"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Rating      int       `json:"rating"`
	MediaURL    string    `json:"mediaUrl"`
	MediaKey    string    `json:"mediaKey"`
	MediaType   MediaType `gorm:"type:varchar(10)" json:"mediaType"`
	IsActive    bool      `gorm:"index" json:"isActive"`
	Order       int       `gorm:"column:display_order;index" json:"order"`
}

type Testimonial struct {
	BaseModel
	TestimonialBody
}

func (t *Testimonial) UniqueKeys() map[string]string {
	return nil
}

func (t *Testimonial) MediaKeys() []string {
	return collectKeys(t.MediaKey)
}

type SuccessStory struct {
	BaseModel
	TestimonialBody
	ProfileImage    string `json:"profileImage"`
	ProfileImageKey string `json:"profileImageKey"`
	Location        string `gorm:"size:255" json:"location"`
}

func (SuccessStory) TableName() string {
	return "student_success_stories"
}

func (s *SuccessStory) UniqueKeys() map[string]string {
	return nil
}

func (s *SuccessStory) MediaKeys() []string {
	return collectKeys(s.MediaKey, s.ProfileImageKey)
}
