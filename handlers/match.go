package handlers

import (
	"net/http"
	"strconv"

	"schedulematch/services/match"
	"schedulematch/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MatchHandler struct {
	MatchService match.MatchService
}

func NewMatchHandler(svc match.MatchService) *MatchHandler {
	return &MatchHandler{MatchService: svc}
}

// ListMatchesHandler handles GET /matches.
func (h *MatchHandler) ListMatchesHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	matches, err := h.MatchService.ListActive(c.Request.Context(), usr)
	if err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// ListMatchRequestsHandler handles GET /matches/requests.
func (h *MatchHandler) ListMatchRequestsHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	reqs, err := h.MatchService.ListRequests(c.Request.Context(), usr)
	if err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// RequestMatchHandler handles POST /matches/request/:username.
func (h *MatchHandler) RequestMatchHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	m, err := h.MatchService.Request(c.Request.Context(), usr, c.Param("username"))
	if err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// RespondMatchHandler handles POST /matches/respond/:username?accept=true|false.
func (h *MatchHandler) RespondMatchHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	accept, err := strconv.ParseBool(c.Query("accept"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "accept must be true or false")
		return
	}
	if err := h.MatchService.Respond(c.Request.Context(), usr, c.Param("username"), accept); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	msg := "Schedule match declined"
	if accept {
		msg = "Schedule match accepted"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// OverlapHandler handles GET /matches/overlap/:username/:date.
func (h *MatchHandler) OverlapHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	friend, date := c.Param("username"), c.Param("date")
	result, err := h.MatchService.Overlap(c.Request.Context(), usr, friend, date)
	if err != nil {
		getLogger(c).Debug("Overlap query refused",
			zap.String("username", usr.Username), zap.String("friend", friend), zap.String("date", date), zap.Error(err))
		respondError(c, err, http.StatusUnprocessableEntity)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteMatchHandler handles DELETE /matches/:username.
func (h *MatchHandler) DeleteMatchHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.MatchService.Delete(c.Request.Context(), usr, c.Param("username")); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule match removed"})
}
