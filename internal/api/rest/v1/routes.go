package v1

import (
	"github.com/lmrc/boathouse/internal/domain/profile"
	"github.com/lmrc/boathouse/internal/domain/sessions"
	"github.com/lmrc/boathouse/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	profileService profile.ProfileService,
	sessionService sessions.SessionService,
	runtimeConfig config.Config) {

	v1 := r.Group(BasePath) // lookup in version file

	// Profile and runtime config routes
	profileHandler := NewProfileHandler(profileService, runtimeConfig)
	v1.GET("/profile", profileHandler.GetProfile)
	v1.GET("/config", profileHandler.GetConfig)

	// Session timetable routes
	sessionHandler := NewSessionHandler(sessionService)
	v1.GET("/sessions", sessionHandler.List)
	v1.POST("/sessions", sessionHandler.Create)
	v1.GET("/sessions/:id", sessionHandler.GetByID)
	v1.PUT("/sessions/:id", sessionHandler.UpdateByID)
	v1.DELETE("/sessions/:id", sessionHandler.DeleteByID)
}
