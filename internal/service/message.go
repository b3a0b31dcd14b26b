package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tiko_web/internal/models"
	"tiko_web/internal/pubsub"
	"tiko_web/internal/repository"
)

// DefaultMessageLimit 是查詢聊天記錄時的預設筆數
const DefaultMessageLimit = 50

// TeamTopic 回傳球隊在匯流排上的頻道名稱
func TeamTopic(teamID string) string {
	return "team." + teamID
}

// MessageService 負責聊天訊息的儲存與即時發佈
// Publish 把「寫入資料庫」和「廣播到房間」當成同一個邏輯步驟：
// 先落地再上匯流排，確保即時收到的訊息一定查得到歷史記錄
type MessageService struct {
	messageRepo repository.MessageRepository
	publisher   pubsub.Publisher
	logger      zerolog.Logger
}

func NewMessageService(messageRepo repository.MessageRepository, publisher pubsub.Publisher, logger zerolog.Logger) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// List 回傳該球隊的聊天記錄，頁內由舊到新
func (s *MessageService) List(teamID uuid.UUID, limit, offset int) ([]models.MessageWithAuthor, error) {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.messageRepo.ListByTeam(teamID, limit, offset)
}

// Publish 寫入一則訊息並廣播給球隊房間
// 寫入成功但廣播失敗時只記 log，不讓請求失敗：訊息已經落地，
// 客戶端重連後照樣能從歷史記錄拿到
func (s *MessageService) Publish(ctx context.Context, teamID, userID uuid.UUID, content string, msgType models.MessageType) (*models.MessageWithAuthor, error) {
	if msgType == "" {
		msgType = models.MessageTypeText
	}

	message := &models.Message{
		TeamID:  teamID,
		UserID:  userID,
		Content: content,
		Type:    msgType,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	// 作者資訊另外查一次，跟原本的兩段式讀取一樣
	name, role, err := s.messageRepo.AuthorInfo(userID)
	if err != nil {
		return nil, err
	}

	full := &models.MessageWithAuthor{
		ID:        message.ID,
		TeamID:    message.TeamID,
		UserID:    message.UserID,
		Content:   message.Content,
		Type:      message.Type,
		CreatedAt: message.CreatedAt,
		UserName:  name,
		UserRole:  role,
	}

	payload, err := json.Marshal(messageEvent{
		Type:        eventMessage,
		ID:          full.ID,
		TeamID:      full.TeamID,
		SenderID:    full.UserID,
		SenderName:  full.UserName,
		SenderRole:  full.UserRole,
		Content:     full.Content,
		MessageType: full.Type,
		Timestamp:   full.CreatedAt,
	})
	if err != nil {
		return nil, err
	}

	err = s.publisher.Publish(ctx, pubsub.Message{
		Topic:   TeamTopic(teamID.String()),
		Payload: payload,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("team_id", teamID.String()).
			Msg("message stored but broadcast failed")
	}

	return full, nil
}
