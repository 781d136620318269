package v1

import (
	"net/http"

	"github.com/lmrc/boathouse/internal/domain/profile"
	"github.com/lmrc/boathouse/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// ProfileHandler defines the interface for handling profile and runtime
// configuration reads.
type ProfileHandler interface {
	GetProfile(ctx *gin.Context)
	GetConfig(ctx *gin.Context)
}

type profileHandler struct {
	profileService profile.ProfileService
	runtimeConfig  config.Config
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService profile.ProfileService, runtimeConfig config.Config) ProfileHandler {
	return &profileHandler{
		profileService: profileService,
		runtimeConfig:  runtimeConfig,
	}
}

// GetProfile handles the GET request for the validated club profile.
func (handler *profileHandler) GetProfile(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, newProfileResponse(handler.profileService.Profile()))
}

// GetConfig handles the GET request for the runtime configuration.
// Credentials are structurally absent from the response.
func (handler *profileHandler) GetConfig(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, newConfigResponse(handler.runtimeConfig))
}
