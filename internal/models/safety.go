package models

// SafetyEffect is a curated "what fraud does to your safety" card.
type SafetyEffect struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"id"`
	Title       string `gorm:"column:title;size:200;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Type        string `gorm:"column:type;size:50;not null" json:"type"`
	ImageURL    string `gorm:"column:image_url;size:500" json:"imageUrl,omitempty"`
}

func (SafetyEffect) TableName() string {
	return "safety_effects"
}

// MentalEffect is a curated mental-health impact card.
type MentalEffect struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"id"`
	Title       string `gorm:"column:title;size:200;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Type        string `gorm:"column:type;size:50;not null" json:"type"`
	ImageURL    string `gorm:"column:image_url;size:500" json:"imageUrl,omitempty"`
}

func (MentalEffect) TableName() string {
	return "mental_effects"
}

// RealStory is a first-person fraud experience shown on the safety page.
type RealStory struct {
	ID       uint   `gorm:"primaryKey;column:id" json:"id"`
	Story    string `gorm:"type:text;not null" json:"story"`
	Author   string `gorm:"column:author;size:200;not null" json:"author"`
	ImageURL string `gorm:"column:image_url;size:500" json:"imageUrl,omitempty"`
}

func (RealStory) TableName() string {
	return "real_stories"
}
