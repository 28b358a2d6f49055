package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schedulematch/config"
	"schedulematch/database"
	matchRepo "schedulematch/database/repository/match"
	"schedulematch/database/repository/memory"
	scheduleRepo "schedulematch/database/repository/schedule"
	userRepoPkg "schedulematch/database/repository/user"
	"schedulematch/handlers"
	"schedulematch/routes"
	"schedulematch/services/friends"
	"schedulematch/services/match"
	"schedulematch/services/overlap"
	"schedulematch/services/schedule"
	"schedulematch/services/user"
	"schedulematch/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	secret := config.AppConfig.JWTSecret
	if secret == "" {
		if config.IsProduction() {
			logger.Fatal("JWT_SECRET must be set in production")
		}
		secret = randomSecret()
		logger.Warn("JWT_SECRET not set, using a random secret; tokens will not survive a restart")
	}
	if err := utils.ConfigureJWT(secret, config.AppConfig.JWTAlgorithm); err != nil {
		logger.Fatal("Invalid JWT configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// repositories.
	var (
		userRepo  userRepoPkg.UserRepository
		schedRepo scheduleRepo.ScheduleRepository
		mRepo     matchRepo.MatchRepository
		mongoCli  *mongo.Client
	)
	if config.AppConfig.UseMemoryStorage() {
		logger.Warn("Using in-memory storage; data is lost on exit")
		store := memory.NewStore()
		userRepo = memory.NewUserRepo(store)
		schedRepo = memory.NewScheduleRepo(store)
		mRepo = memory.NewMatchRepo(store)
	} else {
		database.InitDB()
		mongoCli = database.MongoClient
		db := database.Database()
		userRepo = userRepoPkg.NewMongoUserRepo(db)
		schedRepo = scheduleRepo.NewMongoScheduleRepo(db)
		mRepo = matchRepo.NewMongoMatchRepo(db)
	}

	if err := utils.InitAuthCache(); err != nil {
		logger.Warn("Auth cache unavailable, tokens are checked against the database", zap.Error(err))
	}
	tokens := utils.NewRedisTokenCache(utils.GetAuthCacheClient())
	utils.StartHealthMonitor(ctx, utils.GetAuthCacheClient(), mongoCli)

	// services.
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Tokens:   tokens,
		TokenTTL: time.Duration(config.AppConfig.AccessTokenExpireMinutes) * time.Minute,
	}
	scheduleService := schedule.NewScheduleService(schedRepo)
	friendService := friends.NewFriendService(userRepo, mRepo)
	matchService := &match.DefaultMatchService{
		Users:     userRepo,
		Matches:   mRepo,
		Schedules: scheduleService,
		Timezones: userService,
		Engine:    overlap.DefaultOverlapEngine{},
	}

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewUserHandler(userService, userRepo, tokens),
		handlers.NewScheduleHandler(scheduleService),
		handlers.NewFriendHandler(friendService),
		handlers.NewMatchHandler(matchService),
	)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.AllowedOrigins(), config.AppConfig.MaxRequestsPerMin)

	srv := &http.Server{
		Addr:              ":" + config.AppConfig.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server running", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if client := utils.GetAuthCacheClient(); client != nil {
		_ = client.Close()
	}
	if err := database.Disconnect(); err != nil {
		logger.Error("MongoDB disconnect failed", zap.Error(err))
	}
	logger.Info("Server exiting")
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
