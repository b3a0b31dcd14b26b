package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tiko_web/internal/models"
	"tiko_web/internal/service"
)

// PracticePlanHandler 處理練習計畫相關的請求
type PracticePlanHandler struct {
	planService *service.PracticePlanService
}

func NewPracticePlanHandler(planService *service.PracticePlanService) *PracticePlanHandler {
	return &PracticePlanHandler{planService: planService}
}

// PracticePlanInput 定義新增與更新練習計畫的請求結構
type PracticePlanInput struct {
	Name     string `json:"name" binding:"required"`
	Sections string `json:"sections"`
	Notes    string `json:"notes"`
}

// GetPlans 回傳球隊的練習計畫
func (h *PracticePlanHandler) GetPlans(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}

	plans, err := h.planService.Plans(teamID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// CreatePlan 新增練習計畫
func (h *PracticePlanHandler) CreatePlan(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}

	var input PracticePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := models.PracticePlan{
		TeamID: teamID,
		Name:   input.Name,
		Notes:  input.Notes,
	}
	if input.Sections != "" {
		plan.Sections = input.Sections
	}

	if err := h.planService.AddPlan(&plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// UpdatePlan 更新練習計畫
func (h *PracticePlanHandler) UpdatePlan(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}
	planID, err := uuid.Parse(c.Param("planId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan id"})
		return
	}

	var input PracticePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planService.GetPlan(teamID, planID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Practice plan not found"})
		return
	}

	plan.Name = input.Name
	plan.Notes = input.Notes
	if input.Sections != "" {
		plan.Sections = input.Sections
	}

	if err := h.planService.UpdatePlan(plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan 刪除練習計畫
func (h *PracticePlanHandler) DeletePlan(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}
	planID, err := uuid.Parse(c.Param("planId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan id"})
		return
	}

	deleted, err := h.planService.RemovePlan(teamID, planID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Practice plan not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Practice plan deleted successfully"})
}
