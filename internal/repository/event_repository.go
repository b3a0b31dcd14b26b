package repository

import (
	"github.com/google/uuid"

	"tiko_web/internal/models"
	"tiko_web/internal/storage"
)

type EventRepository interface {
	Create(event *models.Event) error
	FindByTeam(teamID uuid.UUID) ([]models.Event, error)
	FindByID(teamID, eventID uuid.UUID) (*models.Event, error)
	Update(event *models.Event) error
	Delete(teamID, eventID uuid.UUID) (int64, error)
}

type eventRepository struct {
	db *storage.PostgresDB
}

func NewEventRepository(db *storage.PostgresDB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// FindByTeam 依日期排序回傳球隊的所有活動
func (r *eventRepository) FindByTeam(teamID uuid.UUID) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("team_id = ?", teamID).Order("date").Find(&events).Error
	return events, err
}

func (r *eventRepository) FindByID(teamID, eventID uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.Where("id = ? AND team_id = ?", eventID, teamID).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *eventRepository) Delete(teamID, eventID uuid.UUID) (int64, error) {
	result := r.db.Where("id = ? AND team_id = ?", eventID, teamID).Delete(&models.Event{})
	return result.RowsAffected, result.Error
}
