package handlers

import (
	"net/http"

	userRepoPkg "schedulematch/database/repository/user"
	"schedulematch/middleware"
	"schedulematch/models"
	"schedulematch/services/user"
	"schedulematch/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserService user.UserService
	UserRepo    userRepoPkg.UserRepository
	Tokens      utils.TokenCache
}

func NewUserHandler(svc user.UserService, repo userRepoPkg.UserRepository, tokens utils.TokenCache) *UserHandler {
	return &UserHandler{UserService: svc, UserRepo: repo, Tokens: tokens}
}

// currentUser returns the authenticated user or writes a 401.
func currentUser(c *gin.Context) (*models.User, bool) {
	usr := middleware.CurrentUser(c)
	if usr == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated")
		return nil, false
	}
	return usr, true
}

// RegisterUserHandler handles POST /register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var req models.UserRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Debug("Invalid registration payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	usr, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, usr)
}

// AuthenticateUserHandler handles POST /token with a form-encoded username and password.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var form struct {
		Username string `form:"username" binding:"required"`
		Password string `form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: username and password are required")
		return
	}
	token, err := h.UserService.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, token)
}

// LogoutHandler handles POST /logout.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.UserService.Logout(c.Request.Context(), usr.Username); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfileHandler handles GET /users/me/.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateProfileHandler handles PUT /users/me/.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	var update models.UserProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	updated, err := h.UserService.UpdateProfile(c.Request.Context(), usr.Username, update)
	if err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SearchUsersHandler handles GET /users/search?query=.
func (h *UserHandler) SearchUsersHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	results, err := h.UserService.Search(c.Request.Context(), usr, c.Query("query"))
	if err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, results)
}
