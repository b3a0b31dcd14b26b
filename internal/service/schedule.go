package service

import (
	"github.com/google/uuid"

	"tiko_web/internal/models"
	"tiko_web/internal/repository"
)

type ScheduleService struct {
	eventRepo repository.EventRepository
}

func NewScheduleService(eventRepo repository.EventRepository) *ScheduleService {
	return &ScheduleService{eventRepo: eventRepo}
}

func (s *ScheduleService) Events(teamID uuid.UUID) ([]models.Event, error) {
	return s.eventRepo.FindByTeam(teamID)
}

func (s *ScheduleService) AddEvent(event *models.Event) error {
	return s.eventRepo.Create(event)
}

func (s *ScheduleService) GetEvent(teamID, eventID uuid.UUID) (*models.Event, error) {
	return s.eventRepo.FindByID(teamID, eventID)
}

func (s *ScheduleService) UpdateEvent(event *models.Event) error {
	return s.eventRepo.Update(event)
}

func (s *ScheduleService) RemoveEvent(teamID, eventID uuid.UUID) (int64, error) {
	return s.eventRepo.Delete(teamID, eventID)
}
