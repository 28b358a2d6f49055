package routes

import (
	"net/http"
	"slices"
	"time"

	"schedulematch/handlers"
	"schedulematch/middleware"
	"schedulematch/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers registration, login and profile endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	r.POST("/register", hb.RegisterUserHandler)
	r.POST("/token", hb.AuthenticateUserHandler)
	r.POST("/logout", auth, hb.LogoutHandler)

	api := r.Group("/users")
	{
		api.Use(auth)
		api.GET("/me/", hb.GetProfileHandler)
		api.PUT("/me/", hb.UpdateProfileHandler)
		api.GET("/search", hb.SearchUsersHandler)
	}
}

// RegisterScheduleRoutes registers the per-day availability endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/schedule")
	{
		api.Use(auth)
		api.POST("/", hb.UpsertScheduleHandler)
		api.GET("/", hb.ScheduleRangeHandler)
		api.GET("/:date", hb.GetScheduleHandler)
		api.DELETE("/:date", hb.DeleteScheduleHandler)
	}
}

// RegisterFriendRoutes registers friendship endpoints.
func RegisterFriendRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/friends")
	{
		api.Use(auth)
		api.POST("/request", hb.SendFriendRequestHandler)
		api.POST("/respond", hb.RespondFriendRequestHandler)
		api.GET("/", hb.ListFriendsHandler)
		api.GET("/requests", hb.ListFriendRequestsHandler)
		api.DELETE("/:username", hb.RemoveFriendHandler)
	}
}

// RegisterMatchRoutes registers schedule match and overlap endpoints.
func RegisterMatchRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/matches")
	{
		api.Use(auth)
		api.GET("", hb.ListMatchesHandler)
		api.GET("/requests", hb.ListMatchRequestsHandler)
		api.POST("/request/:username", hb.RequestMatchHandler)
		api.POST("/respond/:username", hb.RespondMatchHandler)
		api.GET("/overlap/:username/:date", hb.OverlapHandler)
		api.DELETE("/:username", hb.DeleteMatchHandler)
	}
}

// RegisterHealthRoute registers the root and health-check endpoints. The snapshot
// comes from the background monitor; backends it never checked report false.
func RegisterHealthRoute(r *gin.Engine) {
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Schedule Match API",
			"backends": utils.GetHealthStatus(),
		})
	}
	r.GET("/", health)
	r.GET("/health", health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string, maxRequestsPerMin int) {
	wildcard := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*")
	if wildcard {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !wildcard,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(maxRequestsPerMin))

	auth := middleware.JWTAuthUserMiddleware(hb.UserRepo, hb.Tokens)

	RegisterHealthRoute(r)
	RegisterAccountRoutes(r, hb, auth)
	RegisterScheduleRoutes(r, hb, auth)
	RegisterFriendRoutes(r, hb, auth)
	RegisterMatchRoutes(r, hb, auth)
}
