// Package app wires the domain contracts to their implementations: the
// immutable profile snapshot and the session timetable service.
package app

import (
	"fmt"

	"github.com/lmrc/boathouse/internal/domain/profile"
	"github.com/lmrc/boathouse/internal/pkg/logger"
)

// profileService serves the validated profile snapshot. The profile is
// validated once at construction and never mutated afterwards; a
// configuration change requires a restart.
type profileService struct {
	profile *profile.ClubProfile
	logger  logger.Logger
}

// NewProfileService validates the profile and returns a service exposing it.
// An invalid profile is rejected whole: no caller may partially trust a
// profile that failed validation.
func NewProfileService(p *profile.ClubProfile, logger logger.Logger) (profile.ProfileService, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to serve invalid profile: %w", err)
	}

	logger.Info("Serving profile for club ", p.Club.ID, " with ", len(p.Sessions), " sessions")
	return &profileService{
		profile: p,
		logger:  logger,
	}, nil
}

func (s *profileService) Profile() *profile.ClubProfile {
	return s.profile
}

func (s *profileService) MorningSlots() (profile.Slot, profile.Slot, error) {
	return s.profile.MorningSlots()
}
