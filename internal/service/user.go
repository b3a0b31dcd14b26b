package service

import (
	"github.com/google/uuid"

	"tiko_web/internal/models"
	"tiko_web/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) CreateUser(user *models.User) error {
	return s.userRepo.Create(user)
}

func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	return s.userRepo.FindByEmail(email)
}

func (s *UserService) GetUserByID(id uuid.UUID) (*models.User, error) {
	return s.userRepo.FindByID(id)
}

// DemoUser 取出該角色的示範帳號，給 demo 登入用
func (s *UserService) DemoUser(role models.UserRole) (*models.User, error) {
	return s.userRepo.FindFirstByRole(role)
}
