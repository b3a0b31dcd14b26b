package repository

import (
	"github.com/google/uuid"

	"tiko_web/internal/models"
	"tiko_web/internal/storage"
)

type PracticePlanRepository interface {
	Create(plan *models.PracticePlan) error
	FindByTeam(teamID uuid.UUID) ([]models.PracticePlan, error)
	FindByID(teamID, planID uuid.UUID) (*models.PracticePlan, error)
	Update(plan *models.PracticePlan) error
	Delete(teamID, planID uuid.UUID) (int64, error)
}

type practicePlanRepository struct {
	db *storage.PostgresDB
}

func NewPracticePlanRepository(db *storage.PostgresDB) PracticePlanRepository {
	return &practicePlanRepository{db: db}
}

func (r *practicePlanRepository) Create(plan *models.PracticePlan) error {
	return r.db.Create(plan).Error
}

func (r *practicePlanRepository) FindByTeam(teamID uuid.UUID) ([]models.PracticePlan, error) {
	var plans []models.PracticePlan
	err := r.db.Where("team_id = ?", teamID).Order("created_at DESC").Find(&plans).Error
	return plans, err
}

func (r *practicePlanRepository) FindByID(teamID, planID uuid.UUID) (*models.PracticePlan, error) {
	var plan models.PracticePlan
	err := r.db.Where("id = ? AND team_id = ?", planID, teamID).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *practicePlanRepository) Update(plan *models.PracticePlan) error {
	return r.db.Save(plan).Error
}

func (r *practicePlanRepository) Delete(teamID, planID uuid.UUID) (int64, error) {
	result := r.db.Where("id = ? AND team_id = ?", planID, teamID).Delete(&models.PracticePlan{})
	return result.RowsAffected, result.Error
}
