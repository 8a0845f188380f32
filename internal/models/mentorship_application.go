package models

type MentorshipApplication struct {
	BaseModel
	FullName        string            `gorm:"not null" json:"full_name"`
	Email           string            `gorm:"not null;index" json:"email"`
	Company         string            `gorm:"not null" json:"company"`
	ExperienceLevel string            `gorm:"not null" json:"experience_level"`
	MentorshipFocus string            `gorm:"not null" json:"mentorship_focus"`
	Bio             string            `gorm:"type:text;not null" json:"bio"`
	Status          ApplicationStatus `gorm:"not null;default:pending;index" json:"status"`
}

func (MentorshipApplication) TableName() string {
	return "mentorship_applications"
}
