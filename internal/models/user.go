package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User 表示系統中的一個帳號：教練、家長、球員或助理教練
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"` // 電子郵件，必須唯一
	PasswordHash string     `gorm:"not null" json:"-"`                 // 密碼雜湊，json 序列化時會被忽略
	Name         string     `gorm:"not null" json:"name"`
	Role         UserRole   `gorm:"type:varchar(50);not null" json:"role"`
	TeamID       *uuid.UUID `gorm:"type:uuid;index" json:"team_id"` // 所屬球隊，可為空
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// UserRole 定義用戶角色的類型
type UserRole string

const (
	RoleCoach          UserRole = "coach"
	RoleParent         UserRole = "parent"
	RolePlayer         UserRole = "player"
	RoleAssistantCoach UserRole = "assistant_coach"
)

// ValidRole 檢查角色是否為已知角色
func ValidRole(r UserRole) bool {
	switch r {
	case RoleCoach, RoleParent, RolePlayer, RoleAssistantCoach:
		return true
	}
	return false
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
