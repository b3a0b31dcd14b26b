package repository

import (
	"github.com/google/uuid"

	"tiko_web/internal/models"
	"tiko_web/internal/storage"
)

type PlayerRepository interface {
	Create(player *models.Player) error
	FindByTeam(teamID uuid.UUID) ([]models.Player, error)
	FindByID(teamID, playerID uuid.UUID) (*models.Player, error)
	Update(player *models.Player) error
	Delete(teamID, playerID uuid.UUID) (int64, error)
}

type playerRepository struct {
	db *storage.PostgresDB
}

func NewPlayerRepository(db *storage.PostgresDB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

// FindByTeam 依背號排序回傳球隊名單
func (r *playerRepository) FindByTeam(teamID uuid.UUID) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("team_id = ?", teamID).Order("number").Find(&players).Error
	return players, err
}

func (r *playerRepository) FindByID(teamID, playerID uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.Where("id = ? AND team_id = ?", playerID, teamID).First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) Update(player *models.Player) error {
	return r.db.Save(player).Error
}

// Delete 回傳刪除的筆數，讓呼叫端能區分 404
func (r *playerRepository) Delete(teamID, playerID uuid.UUID) (int64, error) {
	result := r.db.Where("id = ? AND team_id = ?", playerID, teamID).Delete(&models.Player{})
	return result.RowsAffected, result.Error
}
