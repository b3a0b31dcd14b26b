package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team 表示一支球隊
type Team struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Sport     string     `gorm:"not null" json:"sport"`
	Season    string     `gorm:"not null" json:"season"`
	CoachID   *uuid.UUID `gorm:"type:uuid" json:"coach_id"` // 主教練的用戶 ID
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
