package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tiko_web/internal/models"
	"tiko_web/internal/service"
)

// RosterHandler 處理球隊名單相關的請求
type RosterHandler struct {
	rosterService *service.RosterService
}

func NewRosterHandler(rosterService *service.RosterService) *RosterHandler {
	return &RosterHandler{rosterService: rosterService}
}

// PlayerInput 定義新增與更新球員的請求結構
type PlayerInput struct {
	Name     string     `json:"name" binding:"required"`
	Number   *int       `json:"number" binding:"required"`
	Position string     `json:"position"`
	Age      int        `json:"age"`
	ParentID *uuid.UUID `json:"parent_id"`
	Stats    string     `json:"stats"`
}

// GetPlayers 回傳球隊名單，依背號排序
func (h *RosterHandler) GetPlayers(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}

	players, err := h.rosterService.Players(teamID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, players)
}

// CreatePlayer 新增球員
// 背號在球隊內重複時回 400，帶明確的錯誤訊息
func (h *RosterHandler) CreatePlayer(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}

	var input PlayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player := models.Player{
		TeamID:   teamID,
		Name:     input.Name,
		Number:   *input.Number,
		Position: input.Position,
		Age:      input.Age,
		ParentID: input.ParentID,
	}
	if input.Stats != "" {
		player.Stats = input.Stats
	}

	if err := h.rosterService.AddPlayer(&player); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Player number already exists for this team"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, player)
}

// UpdatePlayer 更新球員資料
func (h *RosterHandler) UpdatePlayer(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}
	playerID, err := uuid.Parse(c.Param("playerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player id"})
		return
	}

	var input PlayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.rosterService.GetPlayer(teamID, playerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}

	player.Name = input.Name
	player.Number = *input.Number
	player.Position = input.Position
	player.Age = input.Age
	player.ParentID = input.ParentID
	if input.Stats != "" {
		player.Stats = input.Stats
	}

	if err := h.rosterService.UpdatePlayer(player); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Player number already exists for this team"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, player)
}

// DeletePlayer 移除球員
func (h *RosterHandler) DeletePlayer(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}
	playerID, err := uuid.Parse(c.Param("playerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player id"})
		return
	}

	deleted, err := h.rosterService.RemovePlayer(teamID, playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Player deleted successfully"})
}
