package service

import (
	"time"

	"github.com/google/uuid"

	"tiko_web/internal/models"
)

// 即時頻道的事件類型
// 客戶端送上來的：join_team、send_message、typing、stop_typing、get_active_users
// 伺服器送下去的：message、message_sent、typing、active_users、system
const (
	eventJoinTeam       = "join_team"
	eventSendMessage    = "send_message"
	eventTyping         = "typing"
	eventStopTyping     = "stop_typing"
	eventGetActiveUsers = "get_active_users"

	eventMessage     = "message"
	eventMessageSent = "message_sent"
	eventActiveUsers = "active_users"
	eventSystem      = "system"
)

// clientEvent 是客戶端送上來的統一事件框架
type clientEvent struct {
	Type        string `json:"type"`
	TeamID      string `json:"team_id,omitempty"`
	Content     string `json:"content,omitempty"`
	MessageType string `json:"message_type,omitempty"`
}

// messageEvent 廣播給整個房間的聊天訊息，包含發送者本人
type messageEvent struct {
	Type        string             `json:"type"`
	ID          uuid.UUID          `json:"id"`
	TeamID      uuid.UUID          `json:"team_id"`
	SenderID    uuid.UUID          `json:"sender_id"`
	SenderName  string             `json:"sender_name"`
	SenderRole  models.UserRole    `json:"sender_role"`
	Content     string             `json:"content"`
	MessageType models.MessageType `json:"message_type"`
	Timestamp   time.Time          `json:"timestamp"`
}

// messageSentEvent 只回給發送者的送達確認
type messageSentEvent struct {
	Type string    `json:"type"`
	ID   uuid.UUID `json:"id"`
}

// typingEvent 廣播給房間內發送者以外的所有連線
type typingEvent struct {
	Type     string    `json:"type"`
	TeamID   string    `json:"team_id"`
	User     eventUser `json:"user"`
	IsTyping bool      `json:"is_typing"`
}

// activeUsersEvent 回應 get_active_users 的房間名單
type activeUsersEvent struct {
	Type  string      `json:"type"`
	Users []eventUser `json:"users"`
}

// systemEvent 房間內的系統通知
type systemEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type eventUser struct {
	ID   uuid.UUID       `json:"id"`
	Name string          `json:"name"`
	Role models.UserRole `json:"role,omitempty"`
}
