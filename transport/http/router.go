package http

import (
	"github.com/gin-gonic/gin"
	"github.com/seimoney/seimoney-go/api"
	"github.com/seimoney/seimoney-go/core"
	"github.com/seimoney/seimoney-go/service"
)

// SetupRouter sets up the Gin router for the local session facade
func SetupRouter(authService *service.AuthService, sessions *core.SessionStore, client *api.Client) *gin.Engine {
	router := gin.Default()

	// Create handlers
	handlers := NewAuthHandlers(authService, sessions)

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/login", handlers.Login)
		auth.POST("/register", handlers.Register)
		auth.POST("/logout", handlers.Logout)
	}

	// Protected routes
	protected := router.Group("/api")
	protected.Use(SessionGuard(sessions, client))
	{
		protected.GET("/session", handlers.Session)
	}

	return router
}
