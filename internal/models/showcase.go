package models

// Testimonials and gallery images are display-only content: this repo reads
// them for the public pages, writes happen out of band.

type Testimonial struct {
	BaseModel
	AuthorName  string `gorm:"not null" json:"author_name"`
	AuthorTitle string `json:"author_title,omitempty"`
	Company     string `json:"company,omitempty"`
	Quote       string `gorm:"type:text;not null" json:"quote"`
	Rating      int    `json:"rating,omitempty"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

type GalleryImage struct {
	BaseModel
	Title    string `json:"title,omitempty"`
	ImageURL string `gorm:"not null" json:"image_url"`
	Caption  string `json:"caption,omitempty"`
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}
