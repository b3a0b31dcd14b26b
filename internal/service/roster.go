package service

import (
	"github.com/google/uuid"

	"tiko_web/internal/models"
	"tiko_web/internal/repository"
)

type RosterService struct {
	playerRepo repository.PlayerRepository
}

func NewRosterService(playerRepo repository.PlayerRepository) *RosterService {
	return &RosterService{playerRepo: playerRepo}
}

func (s *RosterService) Players(teamID uuid.UUID) ([]models.Player, error) {
	return s.playerRepo.FindByTeam(teamID)
}

func (s *RosterService) AddPlayer(player *models.Player) error {
	return s.playerRepo.Create(player)
}

func (s *RosterService) GetPlayer(teamID, playerID uuid.UUID) (*models.Player, error) {
	return s.playerRepo.FindByID(teamID, playerID)
}

func (s *RosterService) UpdatePlayer(player *models.Player) error {
	return s.playerRepo.Update(player)
}

func (s *RosterService) RemovePlayer(teamID, playerID uuid.UUID) (int64, error) {
	return s.playerRepo.Delete(teamID, playerID)
}
