package service

import (
	"github.com/google/uuid"

	"tiko_web/internal/models"
	"tiko_web/internal/repository"
)

type PracticePlanService struct {
	planRepo repository.PracticePlanRepository
}

func NewPracticePlanService(planRepo repository.PracticePlanRepository) *PracticePlanService {
	return &PracticePlanService{planRepo: planRepo}
}

func (s *PracticePlanService) Plans(teamID uuid.UUID) ([]models.PracticePlan, error) {
	return s.planRepo.FindByTeam(teamID)
}

func (s *PracticePlanService) AddPlan(plan *models.PracticePlan) error {
	return s.planRepo.Create(plan)
}

func (s *PracticePlanService) GetPlan(teamID, planID uuid.UUID) (*models.PracticePlan, error) {
	return s.planRepo.FindByID(teamID, planID)
}

func (s *PracticePlanService) UpdatePlan(plan *models.PracticePlan) error {
	return s.planRepo.Update(plan)
}

func (s *PracticePlanService) RemovePlan(teamID, planID uuid.UUID) (int64, error) {
	return s.planRepo.Delete(teamID, planID)
}
