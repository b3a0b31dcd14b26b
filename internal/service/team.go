package service

import (
	"github.com/google/uuid"

	"tiko_web/internal/models"
	"tiko_web/internal/repository"
)

type TeamService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
}

func NewTeamService(teamRepo repository.TeamRepository, userRepo repository.UserRepository) *TeamService {
	return &TeamService{teamRepo: teamRepo, userRepo: userRepo}
}

// CreateTeam 建立球隊，建立者成為主教練
// 建立者若還沒有所屬球隊，順便掛進新球隊
func (s *TeamService) CreateTeam(name, sport, season string, creator *models.User) (*models.Team, error) {
	team := &models.Team{
		Name:    name,
		Sport:   sport,
		Season:  season,
		CoachID: &creator.ID,
	}
	if err := s.teamRepo.Create(team); err != nil {
		return nil, err
	}

	if creator.TeamID == nil {
		creator.TeamID = &team.ID
		if err := s.userRepo.Update(creator); err != nil {
			return nil, err
		}
	}

	return team, nil
}

func (s *TeamService) GetTeam(id uuid.UUID) (*models.Team, error) {
	return s.teamRepo.FindByID(id)
}

func (s *TeamService) ListTeams(user *models.User) ([]models.Team, error) {
	return s.teamRepo.FindForUser(user.ID, user.TeamID)
}

// CanJoin 檢查用戶是否屬於該球隊：一般成員看 users.team_id，教練看 teams.coach_id
// Relay 用這個方法做加入房間的授權，不信任客戶端自稱的身分
func (s *TeamService) CanJoin(userID, teamID uuid.UUID) (bool, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return false, err
	}
	if user.TeamID != nil && *user.TeamID == teamID {
		return true, nil
	}

	team, err := s.teamRepo.FindByID(teamID)
	if err != nil {
		return false, err
	}
	return team.CoachID != nil && *team.CoachID == userID, nil
}
