package dto

// Mentorship application and award nomination payloads share the
// pending/approved/rejected review workflow.

type SubmitMentorshipRequest struct {
	FullName        string `json:"full_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Company         string `json:"company" validate:"required"`
	ExperienceLevel string `json:"experience_level" validate:"required"`
	MentorshipFocus string `json:"mentorship_focus" validate:"required"`
	Bio             string `json:"bio" validate:"required"`
}

type SubmitNominationRequest struct {
	NomineeName    string `json:"nominee_name" validate:"required"`
	NomineeEmail   string `json:"nominee_email" validate:"required,email"`
	NominatorName  string `json:"nominator_name" validate:"required"`
	NominatorEmail string `json:"nominator_email" validate:"required,email"`
	Category       string `json:"category" validate:"required"`
	Reason         string `json:"reason" validate:"required"`
}

// UpdateApplicationStatusRequest drives the admin approve/reject action.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}
