package models

type AwardNomination struct {
	BaseModel
	NomineeName    string            `gorm:"not null" json:"nominee_name"`
	NomineeEmail   string            `gorm:"not null" json:"nominee_email"`
	NominatorName  string            `gorm:"not null" json:"nominator_name"`
	NominatorEmail string            `gorm:"not null" json:"nominator_email"`
	Category       string            `gorm:"not null" json:"category"`
	Reason         string            `gorm:"type:text;not null" json:"reason"`
	Status         ApplicationStatus `gorm:"not null;default:pending;index" json:"status"`
}

func (AwardNomination) TableName() string {
	return "award_nominations"
}
