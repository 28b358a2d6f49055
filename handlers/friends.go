package handlers

import (
	"net/http"

	"schedulematch/models"
	"schedulematch/services/friends"
	"schedulematch/utils"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	FriendService friends.FriendService
}

func NewFriendHandler(svc friends.FriendService) *FriendHandler {
	return &FriendHandler{FriendService: svc}
}

// SendFriendRequestHandler handles POST /friends/request.
func (h *FriendHandler) SendFriendRequestHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	var req models.FriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if err := h.FriendService.SendRequest(c.Request.Context(), usr, req.ToUsername); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Friend request sent"})
}

// RespondFriendRequestHandler handles POST /friends/respond.
func (h *FriendHandler) RespondFriendRequestHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	var req models.FriendRequestResponse
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if err := h.FriendService.Respond(c.Request.Context(), usr, req.FromUsername, req.Accept); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	msg := "Friend request declined"
	if req.Accept {
		msg = "Friend request accepted"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// RemoveFriendHandler handles DELETE /friends/:username.
func (h *FriendHandler) RemoveFriendHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.FriendService.Remove(c.Request.Context(), usr, c.Param("username")); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Friend removed"})
}

// ListFriendsHandler handles GET /friends/.
func (h *FriendHandler) ListFriendsHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	list, err := h.FriendService.List(c.Request.Context(), usr)
	if err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListFriendRequestsHandler handles GET /friends/requests.
func (h *FriendHandler) ListFriendRequestsHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	list, err := h.FriendService.ListRequests(c.Request.Context(), usr)
	if err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, list)
}
