// models/gorm_models.go
package models

import (
	"gorm.io/gorm"
)

// GormMatchRecord 对局记录模型
type GormMatchRecord struct {
	gorm.Model
	RoomID          string `gorm:"index;not null"`
	Player1         string `gorm:"not null"`
	Player1Score    int    `gorm:"default:0"`
	Player2         string `gorm:"not null"`
	Player2Score    int    `gorm:"default:0"`
	Winner          string `gorm:"index"`
	Rounds          int    `gorm:"default:0"`
	DurationSeconds int    `gorm:"default:0"`
}

func (GormMatchRecord) TableName() string {
	return "matches"
}
