package storage

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tiko_web/internal/models"
)

// Seed 建立示範球隊與示範帳號，讓 demo-login 有資料可用
// 已存在的資料不會重複建立
func Seed(db *PostgresDB) error {
	var team models.Team
	err := db.Where("name = ?", "Thunder Hawks").First(&team).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		team = models.Team{Name: "Thunder Hawks", Sport: "Soccer", Season: "Fall 2024"}
		if err := db.Create(&team).Error; err != nil {
			return err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	demoUsers := []models.User{
		{Email: "coach@demo.com", Name: "Sarah Johnson", Role: models.RoleCoach},
		{Email: "parent@demo.com", Name: "Mike Wilson", Role: models.RoleParent},
		{Email: "player@demo.com", Name: "Alex Smith", Role: models.RolePlayer},
		{Email: "assistant@demo.com", Name: "Jennifer Davis", Role: models.RoleAssistantCoach},
	}
	for i := range demoUsers {
		demoUsers[i].PasswordHash = string(hash)
		demoUsers[i].TeamID = &team.ID
		err := db.Where("email = ?", demoUsers[i].Email).
			FirstOrCreate(&demoUsers[i], models.User{Email: demoUsers[i].Email}).Error
		if err != nil {
			return err
		}
	}

	// 示範教練設為球隊的主教練
	if team.CoachID == nil {
		team.CoachID = &demoUsers[0].ID
		if err := db.Save(&team).Error; err != nil {
			return err
		}
	}

	demoPlayers := []models.Player{
		{Name: "Alex Smith", Number: 10, Position: "Forward", Age: 12, Stats: `{"goals": 5, "assists": 3}`},
		{Name: "Jamie Lee", Number: 7, Position: "Midfielder", Age: 11, Stats: `{"goals": 2, "assists": 7}`},
		{Name: "Taylor Brown", Number: 1, Position: "Goalkeeper", Age: 13, Stats: `{"saves": 25, "clean_sheets": 4}`},
		{Name: "Morgan Davis", Number: 15, Position: "Defender", Age: 12, Stats: `{"tackles": 18, "blocks": 12}`},
	}
	for i := range demoPlayers {
		demoPlayers[i].TeamID = team.ID
		err := db.Where("team_id = ? AND number = ?", team.ID, demoPlayers[i].Number).
			FirstOrCreate(&demoPlayers[i]).Error
		if err != nil {
			return err
		}
	}

	return nil
}
