package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	userRepo "schedulematch/database/repository/user"
	"schedulematch/models"
	"schedulematch/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by JWTAuthUserMiddleware.
const (
	ContextUsername = "username"
	ContextUser     = "user"
)

const credentialsError = "Could not validate credentials"

// JWTAuthUserMiddleware accepts a bearer token only while its hash is the user's
// active token hash. The hash is looked up in tokens first and then in the user
// record; tokens may be nil.
func JWTAuthUserMiddleware(users userRepo.UserRepository, tokens utils.TokenCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Header("WWW-Authenticate", "Bearer")
			utils.JSONError(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		username, err := utils.ExtractSubjectFromToken(tokenString)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			utils.JSONError(c, http.StatusUnauthorized, credentialsError)
			return
		}
		computedHash := utils.HashToken(tokenString)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cacheHit := false
		if tokens != nil {
			cachedHash, err := tokens.Get(ctx, username)
			switch {
			case err == nil && cachedHash == computedHash:
				cacheHit = true
			case err == nil:
				c.Header("WWW-Authenticate", "Bearer")
				utils.JSONError(c, http.StatusUnauthorized, credentialsError)
				return
			case !errors.Is(err, utils.ErrCacheMiss):
				utils.GetLogger().Warn("Auth cache lookup failed, falling back to database", zap.Error(err))
			}
		}

		usr, err := users.GetByUsername(ctx, username)
		if err != nil {
			utils.GetLogger().Error("Auth user lookup failed", zap.String("username", username), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Authentication error")
			return
		}
		if usr == nil || (!cacheHit && usr.TokenHash != computedHash) {
			c.Header("WWW-Authenticate", "Bearer")
			utils.JSONError(c, http.StatusUnauthorized, credentialsError)
			return
		}

		if tokens != nil && !cacheHit {
			if err := tokens.Set(ctx, username, computedHash); err != nil {
				utils.GetLogger().Warn("Auth cache write failed", zap.Error(err))
			}
		}

		c.Set(ContextUsername, usr.Username)
		c.Set(ContextUser, usr)
		c.Next()
	}
}

// CurrentUser returns the user loaded by JWTAuthUserMiddleware, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	usr, _ := v.(*models.User)
	return usr
}
