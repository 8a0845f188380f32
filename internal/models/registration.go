package models

// Registration is a visitor's ticket registration for the summit.
// Workshops are stored as a comma-joined list, the way the public form
// submits them.
type Registration struct {
	BaseModel
	FullName        string `gorm:"not null" json:"full_name"`
	Email           string `gorm:"not null;index" json:"email"`
	Phone           string `gorm:"not null" json:"phone"`
	Company         string `json:"company,omitempty"`
	JobTitle        string `gorm:"not null" json:"job_title"`
	Age             *int   `json:"age,omitempty"`
	Gender          string `json:"gender,omitempty"`
	ParticipantType string `gorm:"not null" json:"participant_type"`
	Workshops       string `json:"workshops,omitempty"`
	TicketType      string `gorm:"not null;default:free" json:"ticket_type"`
	Status          string `gorm:"not null;index" json:"status"`
}

func (Registration) TableName() string {
	return "registrations"
}
