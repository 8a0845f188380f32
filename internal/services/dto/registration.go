package dto

import "github.com/whvsdan/theboardroom/internal/models"

// SubmitRegistrationRequest is the public registration form payload.
// Workshops arrive as a list and are stored comma-joined.
type SubmitRegistrationRequest struct {
	FullName        string   `json:"full_name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"required"`
	Company         string   `json:"company"`
	JobTitle        string   `json:"job_title" validate:"required"`
	Age             *int     `json:"age" validate:"omitempty,gte=1,lte=120"`
	Gender          string   `json:"gender"`
	ParticipantType string   `json:"participant_type" validate:"required"`
	Workshops       []string `json:"workshops"`
}

// UpdateRegistrationRequest is the admin edit payload; nil fields are left
// untouched.
type UpdateRegistrationRequest struct {
	FullName        *string `json:"full_name"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone"`
	Company         *string `json:"company"`
	JobTitle        *string `json:"job_title"`
	Age             *int    `json:"age" validate:"omitempty,gte=1,lte=120"`
	Gender          *string `json:"gender"`
	ParticipantType *string `json:"participant_type"`
	Workshops       *string `json:"workshops"`
	Status          *string `json:"status"`
}

// SubmissionResponse is the envelope every public form reply uses; Data
// carries the stored record.
type SubmissionResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type RegistrationListResponse struct {
	Registrations []models.Registration `json:"registrations"`
	Total         int64                 `json:"total"`
}
