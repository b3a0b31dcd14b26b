package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event 表示球隊行事曆上的一個活動：比賽、練習或會議
type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TeamID      uuid.UUID `gorm:"type:uuid;not null;index" json:"team_id"`
	Title       string    `gorm:"not null" json:"title"`
	Type        EventType `gorm:"type:varchar(50);not null" json:"type"`
	Date        time.Time `gorm:"not null" json:"date"`
	Location    string    `gorm:"not null" json:"location"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Team *Team `gorm:"foreignKey:TeamID" json:"-"`
}

// EventType 定義活動類型
type EventType string

const (
	EventGame     EventType = "game"
	EventPractice EventType = "practice"
	EventMeeting  EventType = "meeting"
)

// ValidEventType 檢查活動類型是否有效
func ValidEventType(t EventType) bool {
	switch t {
	case EventGame, EventPractice, EventMeeting:
		return true
	}
	return false
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
