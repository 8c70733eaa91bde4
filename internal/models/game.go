package models

import (
	"time"
)

// GameQuestion is one scenario of the fraud-awareness game.
type GameQuestion struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"id"`
	Theme       string `gorm:"column:theme;size:50;not null;index" json:"theme"`
	Type        string `gorm:"column:type;size:50;not null" json:"type"`
	Content     string `gorm:"type:text;not null" json:"content"`
	Sender      string `gorm:"column:sender;size:200" json:"sender,omitempty"`
	IsScam      bool   `gorm:"column:is_scam;not null" json:"isScam"`
	Explanation string `gorm:"type:text;not null" json:"explanation"`
	MediaURL    string `gorm:"column:media_url;size:500" json:"mediaUrl,omitempty"`
	MediaType   string `gorm:"column:media_type;size:50" json:"mediaType,omitempty"`
}

func (GameQuestion) TableName() string {
	return "game_questions"
}

// GameScore is a finished run on the leaderboard.
type GameScore struct {
	ID                 uint      `gorm:"primaryKey;column:id" json:"id"`
	UserID             *uint     `gorm:"column:user_id;index" json:"userId,omitempty"`
	PlayerName         string    `gorm:"column:player_name;size:100;not null" json:"playerName"`
	Role               string    `gorm:"column:role;size:50;not null" json:"role"`
	Score              int       `gorm:"column:score;not null" json:"score"`
	ScenariosCompleted int       `gorm:"column:scenarios_completed;not null" json:"scenariosCompleted"`
	CreatedAt          time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (GameScore) TableName() string {
	return "game_scores"
}
