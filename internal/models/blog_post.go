package models

// BlogPost slugs are derived from the title at insert time and are not
// uniqueness-checked in the service layer; the unique index reports the
// collision if one happens.
type BlogPost struct {
	BaseModel
	Title            string `gorm:"not null" json:"title"`
	Slug             string `gorm:"not null;uniqueIndex" json:"slug"`
	Excerpt          string `json:"excerpt,omitempty"`
	Content          string `gorm:"type:text;not null" json:"content"`
	Published        bool   `gorm:"not null;default:false;index" json:"published"`
	FeaturedImageURL string `json:"featured_image_url,omitempty"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
