package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/whvsdan/theboardroom/internal/handlers"
	"github.com/whvsdan/theboardroom/internal/logger"
)

// RegisterRoutes mounts every handler group under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.RegistrationHandler.RegisterRoutes(api)
		appHandlers.MentorshipHandler.RegisterRoutes(api)
		appHandlers.AwardHandler.RegisterRoutes(api)
		appHandlers.SpeakerHandler.RegisterRoutes(api)
		appHandlers.ProgramHandler.RegisterRoutes(api)
		appHandlers.BlogHandler.RegisterRoutes(api)
		appHandlers.ContactHandler.RegisterRoutes(api)
		appHandlers.ShowcaseHandler.RegisterRoutes(api)
		appHandlers.DashboardHandler.RegisterRoutes(api)
		appHandlers.FileHandler.RegisterRoutes(api)
	}

	logger.Info("API routes registered", "prefix", "/api/v1")
}
