package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tiko_web/internal/models"
	"tiko_web/internal/service"
)

// ScheduleHandler 處理球隊行事曆相關的請求
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// EventInput 定義新增與更新活動的請求結構
type EventInput struct {
	Title       string           `json:"title" binding:"required"`
	Type        models.EventType `json:"type" binding:"required"`
	Date        time.Time        `json:"date" binding:"required"`
	Location    string           `json:"location" binding:"required"`
	Description string           `json:"description"`
}

// GetEvents 回傳球隊的所有活動，依日期排序
func (h *ScheduleHandler) GetEvents(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}

	events, err := h.scheduleService.Events(teamID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// CreateEvent 新增活動
func (h *ScheduleHandler) CreateEvent(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}

	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidEventType(input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event type"})
		return
	}

	event := models.Event{
		TeamID:      teamID,
		Title:       input.Title,
		Type:        input.Type,
		Date:        input.Date,
		Location:    input.Location,
		Description: input.Description,
	}
	if err := h.scheduleService.AddEvent(&event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// UpdateEvent 更新活動
func (h *ScheduleHandler) UpdateEvent(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidEventType(input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event type"})
		return
	}

	event, err := h.scheduleService.GetEvent(teamID, eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	event.Title = input.Title
	event.Type = input.Type
	event.Date = input.Date
	event.Location = input.Location
	event.Description = input.Description

	if err := h.scheduleService.UpdateEvent(event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent 刪除活動
func (h *ScheduleHandler) DeleteEvent(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	deleted, err := h.scheduleService.RemoveEvent(teamID, eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
