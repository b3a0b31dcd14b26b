package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Player 表示球隊名單上的一名球員
// 同一支球隊內的背號必須唯一
type Player struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TeamID    uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_players_team_number" json:"team_id"`
	Name      string     `gorm:"not null" json:"name"`
	Number    int        `gorm:"not null;uniqueIndex:idx_players_team_number" json:"number"` // 球衣背號
	Position  string     `json:"position"`
	Age       int        `json:"age"`
	ParentID  *uuid.UUID `gorm:"type:uuid" json:"parent_id"`
	Stats     string     `gorm:"type:jsonb;default:'{}'" json:"stats"` // 自由格式的統計數據
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Team *Team `gorm:"foreignKey:TeamID" json:"-"`
}

func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
