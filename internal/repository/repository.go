package repository

import "tiko_web/internal/storage"

type Repositories struct {
	User         UserRepository
	Team         TeamRepository
	Player       PlayerRepository
	Event        EventRepository
	PracticePlan PracticePlanRepository
	Message      MessageRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Team:         NewTeamRepository(db),
		Player:       NewPlayerRepository(db),
		Event:        NewEventRepository(db),
		PracticePlan: NewPracticePlanRepository(db),
		Message:      NewMessageRepository(db),
	}
}
