package main

import (
  "fmt"
  "os"
  "time"
  "github.com/yungbote/pubshare-backend/internal/logger"
  "github.com/yungbote/pubshare-backend/internal/utils"
  "github.com/yungbote/pubshare-backend/internal/db"
  "github.com/yungbote/pubshare-backend/internal/repos"
  "github.com/yungbote/pubshare-backend/internal/services"
  "github.com/yungbote/pubshare-backend/internal/handlers"
  "github.com/yungbote/pubshare-backend/internal/middleware"
  "github.com/yungbote/pubshare-backend/internal/server"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTL := utils.GetEnvAsDuration("ACCESS_TOKEN_TTL", time.Hour, log)
  refreshTokenTTL := utils.GetEnvAsDuration("REFRESH_TOKEN_TTL", 24*time.Hour, log)

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Database init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Auto migration failed", "error", err)
  }
  theDB := postgresService.DB()

  // Repos
  log.Info("Setting up repos from main...")
  userRepo := repos.NewUserRepo(theDB, log)
  userTokenRepo := repos.NewUserTokenRepo(theDB, log)
  tagRepo := repos.NewTagRepo(theDB, log)
  publicationRepo := repos.NewPublicationRepo(theDB, log)
  publicationTagRepo := repos.NewPublicationTagRepo(theDB, log)
  voteRepo := repos.NewVoteRepo(theDB, log)
  userTagRepo := repos.NewUserTagRepo(theDB, log)

  // Services
  log.Info("Setting up services from main...")
  authService := services.NewAuthService(theDB, log, userRepo, userTokenRepo, jwtSecretKey, accessTokenTTL, refreshTokenTTL)
  publicationTagService := services.NewPublicationTagService(log, publicationTagRepo)
  voteService := services.NewVoteService(log, voteRepo)
  publicationService := services.NewPublicationService(theDB, log, publicationRepo, voteRepo, publicationTagRepo, publicationTagService, voteService)
  userService := services.NewUserService(theDB, log, userRepo, voteRepo, publicationRepo, tagRepo, userTagRepo)
  tagService := services.NewTagService(log, tagRepo)

  // Handlers
  log.Info("Setting up handlers from main...")
  authHandler := handlers.NewAuthHandler(authService)
  userHandler := handlers.NewUserHandler(log, userService)
  publicationHandler := handlers.NewPublicationHandler(log, publicationService)
  tagHandler := handlers.NewTagHandler(log, tagService)

  // Middleware
  log.Info("Setting up middleware from main...")
  authMiddleware := middleware.NewAuthMiddleware(log, authService)
  sameUserMiddleware := middleware.NewSameUserMiddleware(log)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:        authHandler,
    AuthMiddleware:     authMiddleware,
    SameUserMiddleware: sameUserMiddleware,
    UserHandler:        userHandler,
    PublicationHandler: publicationHandler,
    TagHandler:         tagHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server failed", "error", err)
  }
}
