package repository

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tiko_web/internal/models"
)

func TestCreatePlayerDuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlayerRepository(db)
	team, _ := seedTeamAndUser(t, db)

	require.NoError(t, repo.Create(&models.Player{TeamID: team.ID, Name: "Alex Smith", Number: 10}))

	err := repo.Create(&models.Player{TeamID: team.ID, Name: "Jamie Lee", Number: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	// 不同球隊可以用同一個背號
	other, _ := seedTeamAndUser(t, db)
	assert.NoError(t, repo.Create(&models.Player{TeamID: other.ID, Name: "Taylor Brown", Number: 10}))
}

func TestPlayersOrderedByNumber(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlayerRepository(db)
	team, _ := seedTeamAndUser(t, db)

	require.NoError(t, repo.Create(&models.Player{TeamID: team.ID, Name: "Morgan Davis", Number: 15}))
	require.NoError(t, repo.Create(&models.Player{TeamID: team.ID, Name: "Taylor Brown", Number: 1}))
	require.NoError(t, repo.Create(&models.Player{TeamID: team.ID, Name: "Jamie Lee", Number: 7}))

	players, err := repo.FindByTeam(team.ID)
	require.NoError(t, err)
	require.Len(t, players, 3)
	assert.Equal(t, []int{1, 7, 15}, []int{players[0].Number, players[1].Number, players[2].Number})
}

func TestDeletePlayerReportsMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlayerRepository(db)
	team, _ := seedTeamAndUser(t, db)

	player := &models.Player{TeamID: team.ID, Name: "Alex Smith", Number: 10}
	require.NoError(t, repo.Create(player))

	deleted, err := repo.Delete(team.ID, player.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	deleted, err = repo.Delete(team.ID, uuid.New())
	require.NoError(t, err)
	assert.EqualValues(t, 0, deleted)
}
