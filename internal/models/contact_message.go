package models

type ContactMessage struct {
	BaseModel
	Name    string        `gorm:"not null" json:"name"`
	Email   string        `gorm:"not null" json:"email"`
	Subject string        `gorm:"not null" json:"subject"`
	Message string        `gorm:"type:text;not null" json:"message"`
	Status  ContactStatus `gorm:"not null;default:new;index" json:"status"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
