package service

import (
	"github.com/rs/zerolog"

	"tiko_web/internal/pubsub"
	"tiko_web/internal/repository"
)

type Services struct {
	User         *UserService
	Team         *TeamService
	Roster       *RosterService
	Schedule     *ScheduleService
	PracticePlan *PracticePlanService
	Message      *MessageService
	Relay        *Relay
}

func NewServices(repos *repository.Repositories, bus pubsub.Bus, logger zerolog.Logger) *Services {
	userService := NewUserService(repos.User)
	teamService := NewTeamService(repos.Team, repos.User)
	messageService := NewMessageService(repos.Message, bus, logger)
	relay := NewRelay(bus, messageService, teamService, logger)

	return &Services{
		User:         userService,
		Team:         teamService,
		Roster:       NewRosterService(repos.Player),
		Schedule:     NewScheduleService(repos.Event),
		PracticePlan: NewPracticePlanService(repos.PracticePlan),
		Message:      messageService,
		Relay:        relay,
	}
}
