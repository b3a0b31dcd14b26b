package repository

import (
	"github.com/google/uuid"

	"tiko_web/internal/models"
	"tiko_web/internal/storage"
)

type TeamRepository interface {
	Create(team *models.Team) error
	FindByID(id uuid.UUID) (*models.Team, error)
	Update(team *models.Team) error
	FindForUser(userID uuid.UUID, memberOf *uuid.UUID) ([]models.Team, error)
}

type teamRepository struct {
	db *storage.PostgresDB
}

func NewTeamRepository(db *storage.PostgresDB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

func (r *teamRepository) FindByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// FindForUser 查詢用戶看得到的球隊：自己執教的，加上自己所屬的
func (r *teamRepository) FindForUser(userID uuid.UUID, memberOf *uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	query := r.db.Where("coach_id = ?", userID)
	if memberOf != nil {
		query = query.Or("id = ?", *memberOf)
	}
	err := query.Order("created_at DESC").Find(&teams).Error
	return teams, err
}
