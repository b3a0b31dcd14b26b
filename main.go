package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tiko_web/internal/api"
	"tiko_web/internal/middleware"
	"tiko_web/internal/models"
	"tiko_web/internal/pubsub"
	"tiko_web/internal/repository"
	"tiko_web/internal/service"
	"tiko_web/internal/storage"
	"tiko_web/internal/utils"
	"tiko_web/pkg/config"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	utils.InitJWT(cfg.JWT.Secret, cfg.JWT.ExpireHours)

	// 初始化資料庫連接
	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	// 自動遷移資料庫結構
	err = db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Player{},
		&models.Event{},
		&models.PracticePlan{},
		&models.Message{},
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to auto migrate database")
	}

	// 建立示範資料，讓 demo 登入有帳號可用
	if err := storage.Seed(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to seed demo data")
	}

	// 初始化 repositories 與廣播匯流排
	repos := repository.NewRepositories(db)
	bus := pubsub.NewGoChannelBus(logger)
	defer bus.Close()

	// 初始化 services
	services := service.NewServices(repos, bus, logger)

	// 設置 Gin 路由
	r := gin.New()
	r.Use(middleware.Logger(logger))
	r.Use(gin.Recovery())
	// 大約 100 次請求 / 15 分鐘，用令牌桶近似
	r.Use(middleware.NewRateLimiter(100.0/900.0, 100).Middleware())
	api.SetupRoutes(r, services)

	// 啟動伺服器
	logger.Info().Str("address", cfg.Server.Address).Msg("Starting Tiko server")
	if err := r.Run(cfg.Server.Address); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run server")
	}
}
