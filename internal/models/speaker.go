package models

type Speaker struct {
	BaseModel
	Name     string `gorm:"not null" json:"name"`
	Title    string `gorm:"not null" json:"title"`
	Company  string `json:"company,omitempty"`
	Bio      string `gorm:"type:text" json:"bio,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

func (Speaker) TableName() string {
	return "speakers"
}
