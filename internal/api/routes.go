package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tiko_web/internal/api/handlers"
	"tiko_web/internal/middleware"
	"tiko_web/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.User)
	teamHandler := handlers.NewTeamHandler(services.Team)
	rosterHandler := handlers.NewRosterHandler(services.Roster)
	scheduleHandler := handlers.NewScheduleHandler(services.Schedule)
	practiceHandler := handlers.NewPracticePlanHandler(services.PracticePlan)
	messageHandler := handlers.NewMessageHandler(services.Message)
	wsHandler := handlers.NewWebSocketHandler(services.Relay, services.User)

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	// 基本的健康檢查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// API 路由群組
	api := r.Group("/api")

	// 公開路由
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/demo-login", authHandler.DemoLogin)

		// WebSocket 在 handler 內自行驗證 token（瀏覽器不能帶自訂 header）
		api.GET("/ws", wsHandler.HandleWebSocket)
	}

	// 需要驗證的路由
	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware(services.User))
	{
		authorized.GET("/auth/me", authHandler.Me)

		// 球隊
		teams := authorized.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:teamId", teamHandler.GetTeam)
		}

		// 球隊名單
		roster := authorized.Group("/roster/:teamId")
		{
			roster.GET("/players", rosterHandler.GetPlayers)
			roster.POST("/players", rosterHandler.CreatePlayer)
			roster.PUT("/players/:playerId", rosterHandler.UpdatePlayer)
			roster.DELETE("/players/:playerId", rosterHandler.DeletePlayer)
		}

		// 行事曆
		events := authorized.Group("/events/:teamId")
		{
			events.GET("", scheduleHandler.GetEvents)
			events.POST("", scheduleHandler.CreateEvent)
			events.PUT("/:eventId", scheduleHandler.UpdateEvent)
			events.DELETE("/:eventId", scheduleHandler.DeleteEvent)
		}

		// 練習計畫
		plans := authorized.Group("/practice-plans/:teamId")
		{
			plans.GET("", practiceHandler.GetPlans)
			plans.POST("", practiceHandler.CreatePlan)
			plans.PUT("/:planId", practiceHandler.UpdatePlan)
			plans.DELETE("/:planId", practiceHandler.DeletePlan)
		}

		// 聊天記錄
		messages := authorized.Group("/messages")
		{
			messages.GET("/:teamId", messageHandler.GetMessages)
			messages.POST("/:teamId", messageHandler.CreateMessage)
		}
	}
}
