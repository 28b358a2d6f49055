package handlers

import (
	"net/http"

	"schedulematch/models"
	"schedulematch/services/schedule"
	"schedulematch/utils"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	ScheduleService schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{ScheduleService: svc}
}

// UpsertScheduleHandler handles POST /schedule/.
func (h *ScheduleHandler) UpsertScheduleHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	var req models.ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	day, err := h.ScheduleService.Upsert(c.Request.Context(), usr.Username, req)
	if err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, day)
}

// GetScheduleHandler handles GET /schedule/:date.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	day, err := h.ScheduleService.Get(c.Request.Context(), usr.Username, c.Param("date"))
	if err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, day)
}

// ScheduleRangeHandler handles GET /schedule/?start_date=&end_date=.
func (h *ScheduleHandler) ScheduleRangeHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	start, end := c.Query("start_date"), c.Query("end_date")
	if start == "" || end == "" {
		utils.JSONError(c, http.StatusBadRequest, "start_date and end_date are required")
		return
	}
	days, err := h.ScheduleService.Range(c.Request.Context(), usr.Username, start, end)
	if err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, days)
}

// DeleteScheduleHandler handles DELETE /schedule/:date.
func (h *ScheduleHandler) DeleteScheduleHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.ScheduleService.Delete(c.Request.Context(), usr.Username, c.Param("date")); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}
