package config

import (
	"fmt"

	"github.com/lmrc/boathouse/internal/domain/profile"
	"github.com/lmrc/boathouse/internal/pkg/validation"
)

// Environment variables consumed by Load and ClubOverrides.
const (
	EnvRevSportBaseURL  = "REVSPORT_BASE_URL"
	EnvRevSportUsername = "REVSPORT_USERNAME"
	EnvRevSportPassword = "REVSPORT_PASSWORD"
	EnvRevSportDebug    = "REVSPORT_DEBUG"
	EnvSession1Start    = "SESSION_1_START"
	EnvSession1End      = "SESSION_1_END"
	EnvSession2Start    = "SESSION_2_START"
	EnvSession2End      = "SESSION_2_END"

	EnvClubName           = "CLUB_NAME"
	EnvClubShortName      = "CLUB_SHORT_NAME"
	EnvClubTimezone       = "CLUB_TIMEZONE"
	EnvClubPrimaryColor   = "CLUB_PRIMARY_COLOR"
	EnvClubSecondaryColor = "CLUB_SECONDARY_COLOR"
	EnvClubLogoURL        = "CLUB_LOGO_URL"
)

// Documented defaults. Credentials deliberately default to empty.
const (
	DefaultBaseURL       = "https://www.lakemacquarierowing.org.au"
	DefaultSession1Start = "06:30"
	DefaultSession1End   = "07:30"
	DefaultSession2Start = "07:30"
	DefaultSession2End   = "08:30"
)

// Window is a bare start/end pair in HH:MM form.
type Window struct {
	Start string `json:"start" yaml:"start" validate:"required,hhmm"`
	End   string `json:"end" yaml:"end" validate:"required,hhmm"`
}

// SessionTimes is the legacy fixed two-slot session shape consumed by the
// booking server.
type SessionTimes struct {
	Morning1 Window `json:"morning1" yaml:"morning1"`
	Morning2 Window `json:"morning2" yaml:"morning2"`
}

// Config is the runtime configuration consumed by the booking server:
// integration endpoint, credentials and the two fixed morning windows.
// It is assembled and validated once at startup and never mutated after.
type Config struct {
	BaseURL  string       `json:"baseUrl" yaml:"baseUrl" validate:"required,absurl"`
	Username string       `json:"-" yaml:"-"`
	Password string       `json:"-" yaml:"-"`
	Debug    bool         `json:"debug" yaml:"debug"`
	Sessions SessionTimes `json:"sessions" yaml:"sessions"`
}

// Validate checks the runtime shape with the same rigor as the profile
// schema, collecting every violation.
func (c *Config) Validate() error {
	violations := validation.Collect(validation.New().Struct(c))
	violations = append(violations, windowOrderViolations("sessions.morning1", c.Sessions.Morning1)...)
	violations = append(violations, windowOrderViolations("sessions.morning2", c.Sessions.Morning2)...)
	return violations.ErrOrNil()
}

func windowOrderViolations(field string, w Window) validation.Errors {
	if !validation.IsTimeOfDay(w.Start) || !validation.IsTimeOfDay(w.End) {
		return nil
	}
	if w.Start >= w.End {
		return validation.Errors{{
			Field:   field + ".end",
			Code:    validation.CodeRange,
			Message: fmt.Sprintf("time window %s-%s is empty or reversed", w.Start, w.End),
		}}
	}
	return nil
}

// Load gathers values from the source, applies the documented defaults,
// and validates the assembled Config. On failure it returns the complete
// violation set; callers at startup treat that as fatal, since a
// configuration error is a deployment defect rather than a runtime
// condition to degrade from.
func Load(src Source) (Config, error) {
	cfg := Config{
		BaseURL:  valueOr(src, EnvRevSportBaseURL, DefaultBaseURL),
		Username: valueOr(src, EnvRevSportUsername, ""),
		Password: valueOr(src, EnvRevSportPassword, ""),
		// Debug is enabled only by the exact lowercase literal.
		Debug: valueOr(src, EnvRevSportDebug, "") == "true",
		Sessions: SessionTimes{
			Morning1: Window{
				Start: valueOr(src, EnvSession1Start, DefaultSession1Start),
				End:   valueOr(src, EnvSession1End, DefaultSession1End),
			},
			Morning2: Window{
				Start: valueOr(src, EnvSession2Start, DefaultSession2Start),
				End:   valueOr(src, EnvSession2End, DefaultSession2End),
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ClubOverrides gathers the optional club-branding overrides from the
// source. The profile is overlaid and revalidated by the caller.
func ClubOverrides(src Source) profile.Overrides {
	return profile.Overrides{
		Name:            valueOr(src, EnvClubName, ""),
		ShortName:       valueOr(src, EnvClubShortName, ""),
		Timezone:        valueOr(src, EnvClubTimezone, ""),
		LogoURL:         valueOr(src, EnvClubLogoURL, ""),
		PrimaryColor:    valueOr(src, EnvClubPrimaryColor, ""),
		SecondaryColor:  valueOr(src, EnvClubSecondaryColor, ""),
		RevSportBaseURL: valueOr(src, EnvRevSportBaseURL, ""),
	}
}

// valueOr returns the source's value for key, or fallback when the key is
// unset or empty.
func valueOr(src Source, key, fallback string) string {
	if v, ok := src.Lookup(key); ok && v != "" {
		return v
	}
	return fallback
}
