package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PracticePlan 表示一份練習計畫
// Sections 以 JSON 儲存各訓練段落（熱身、技術、對抗賽等）
type PracticePlan struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TeamID    uuid.UUID `gorm:"type:uuid;not null;index" json:"team_id"`
	Name      string    `gorm:"not null" json:"name"`
	Sections  string    `gorm:"type:jsonb;default:'[]'" json:"sections"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Team *Team `gorm:"foreignKey:TeamID" json:"-"`
}

func (p *PracticePlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
