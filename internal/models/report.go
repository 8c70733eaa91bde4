package models

import (
	"time"
)

// ScamReport is a community submission shown on the radar dashboard.
type ScamReport struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	UserID       *uint     `gorm:"column:user_id;index" json:"userId,omitempty"`
	ScamType     string    `gorm:"column:scam_type;size:100;not null;index" json:"scamType"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Location     string    `gorm:"column:location;size:200" json:"location,omitempty"`
	DateReported time.Time `gorm:"column:date_reported;index" json:"dateReported"`
	Status       string    `gorm:"column:status;size:20;default:verified" json:"status"`
}

func (ScamReport) TableName() string {
	return "scam_reports"
}
