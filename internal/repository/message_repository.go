package repository

import (
	"github.com/google/uuid"

	"tiko_web/internal/models"
	"tiko_web/internal/storage"
)

type MessageRepository interface {
	Create(message *models.Message) error
	// ListByTeam 回傳該球隊最近的訊息，頁內由舊到新排序
	ListByTeam(teamID uuid.UUID, limit, offset int) ([]models.MessageWithAuthor, error)
	// AuthorInfo 查詢作者的名稱與角色，給建立訊息後的回應用
	AuthorInfo(userID uuid.UUID) (name string, role models.UserRole, err error)
}

type messageRepository struct {
	db *storage.PostgresDB
}

func NewMessageRepository(db *storage.PostgresDB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) ListByTeam(teamID uuid.UUID, limit, offset int) ([]models.MessageWithAuthor, error) {
	var messages []models.MessageWithAuthor
	// 先取最新的一頁，再反轉成由舊到新
	err := r.db.Table("messages").
		Select("messages.id, messages.team_id, messages.user_id, messages.content, messages.type, messages.created_at, users.name AS user_name, users.role AS user_role").
		Joins("JOIN users ON users.id = messages.user_id").
		Where("messages.team_id = ?", teamID).
		Order("messages.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&messages).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *messageRepository) AuthorInfo(userID uuid.UUID) (string, models.UserRole, error) {
	var user models.User
	err := r.db.Select("name", "role").First(&user, "id = ?", userID).Error
	if err != nil {
		return "", "", err
	}
	return user.Name, user.Role, nil
}
