package dto

import (
	"time"

	"github.com/whvsdan/theboardroom/internal/models"
)

type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read archived"`
}

type SpeakerRequest struct {
	Name     string `json:"name" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Company  string `json:"company"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

type ProgramSessionRequest struct {
	Title       string    `json:"title" validate:"required"`
	SessionType string    `json:"session_type" validate:"required,oneof=keynote workshop panel networking break"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	SpeakerName string    `json:"speaker_name"`
}

// ProgramDay groups sessions by calendar date for display.
type ProgramDay struct {
	Date     string                  `json:"date"`
	Sessions []models.ProgramSession `json:"sessions"`
}

type BlogPostRequest struct {
	Title            string `json:"title" validate:"required"`
	Excerpt          string `json:"excerpt"`
	Content          string `json:"content" validate:"required"`
	Published        bool   `json:"published"`
	FeaturedImageURL string `json:"featured_image_url" validate:"omitempty,url"`
}

type BlogListResponse struct {
	Posts []models.BlogPost `json:"posts"`
	Total int64             `json:"total"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
