package models

import (
	"time"
)

// DetectionRecord is one deepfake analysis kept in a user's history.
type DetectionRecord struct {
	ID              uint      `gorm:"primaryKey;column:id" json:"id"`
	UserID          uint      `gorm:"column:user_id;not null;index" json:"userId"`
	MediaType       string    `gorm:"column:media_type;size:50;not null" json:"mediaType"`
	FileName        string    `gorm:"column:file_name;size:255;not null" json:"fileName"`
	IsDeepfake      bool      `gorm:"column:is_deepfake;not null" json:"isDeepfake"`
	ConfidenceScore int       `gorm:"column:confidence_score;not null" json:"confidenceScore"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (DetectionRecord) TableName() string {
	return "detection_records"
}
