package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message 表示一則球隊聊天訊息
// 訊息只會新增，不會更新或刪除
type Message struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	TeamID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"team_id"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null" json:"user_id"`
	Content   string      `gorm:"type:text;not null" json:"content"`
	Type      MessageType `gorm:"type:varchar(50);default:'text'" json:"type"`
	CreatedAt time.Time   `gorm:"index" json:"created_at"`

	Team *Team `gorm:"foreignKey:TeamID" json:"-"`
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// MessageType 定義訊息類型
type MessageType string

const (
	MessageTypeText MessageType = "text"
	MessageTypeAI   MessageType = "ai_response"
)

// MessageWithAuthor 是讀取時的回應結構
// 作者的名稱與角色在查詢時 join 進來，不會存進 messages 表
type MessageWithAuthor struct {
	ID        uuid.UUID   `json:"id"`
	TeamID    uuid.UUID   `json:"team_id"`
	UserID    uuid.UUID   `json:"user_id"`
	Content   string      `json:"content"`
	Type      MessageType `json:"type"`
	CreatedAt time.Time   `json:"created_at"`
	UserName  string      `json:"user_name"`
	UserRole  UserRole    `json:"user_role"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
