package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/yungbote/pubshare-backend/internal/handlers"
  "github.com/yungbote/pubshare-backend/internal/middleware"
)

type RouterConfig struct {
  AuthHandler        *handlers.AuthHandler
  AuthMiddleware     *middleware.AuthMiddleware
  SameUserMiddleware *middleware.SameUserMiddleware
  UserHandler        *handlers.UserHandler
  PublicationHandler *handlers.PublicationHandler
  TagHandler         *handlers.TagHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  api := router.Group("/api")
  {
    api.POST("/register", cfg.AuthHandler.Register)
    api.POST("/login", cfg.AuthHandler.Login)
  }

// ===============
// || Protected ||
// ===============
  protected := router.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // Auth
  protected.POST("/refresh", cfg.AuthHandler.Refresh)
  protected.POST("/logout", cfg.AuthHandler.Logout)
  // Publications
  protected.GET("/publications", cfg.PublicationHandler.List)
  protected.POST("/publications", cfg.PublicationHandler.Create)
  protected.GET("/publications/:id", cfg.PublicationHandler.GetByID)
  protected.DELETE("/publications/:id", cfg.PublicationHandler.Delete)
  // Tags
  protected.GET("/tags", cfg.TagHandler.List)
  // Users: VerifySameUser annotates, RequireSameUserOrAdmin enforces on the
  // mutating routes. The full listing is admin only.
  protected.GET("/users", cfg.UserHandler.ListAll)
  protected.GET("/users/:id", cfg.SameUserMiddleware.VerifySameUser(), cfg.UserHandler.GetByID)
  protected.PUT("/users/:id", cfg.SameUserMiddleware.VerifySameUser(), cfg.SameUserMiddleware.RequireSameUserOrAdmin(), cfg.UserHandler.UpdateByID)
  protected.GET("/users/:id/votes", cfg.UserHandler.ListVotes)
  protected.GET("/users/:id/publications", cfg.UserHandler.ListPublications)
  protected.GET("/users/:id/interests", cfg.UserHandler.ListInterests)
  protected.POST("/users/:id/interests", cfg.UserHandler.AddInterest)
  protected.DELETE("/users/:id/interests", cfg.SameUserMiddleware.VerifySameUser(), cfg.SameUserMiddleware.RequireSameUserOrAdmin(), cfg.UserHandler.RemoveInterest)

  return router
}
