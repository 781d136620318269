package v1

import (
	"github.com/lmrc/boathouse/internal/domain/profile"
	"github.com/lmrc/boathouse/internal/domain/sessions"
	"github.com/lmrc/boathouse/internal/pkg/config"
	"github.com/lmrc/boathouse/internal/pkg/validation"
)

// SessionRequest is the payload for creating or replacing a session.
type SessionRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	DaysOfWeek []int  `json:"daysOfWeek"`
	Color      string `json:"color"`
	Priority   int    `json:"priority"`
}

// ToDomain converts the request to the domain entity.
func (r *SessionRequest) ToDomain() *sessions.Session {
	return &sessions.Session{
		ID:         r.ID,
		Name:       r.Name,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		DaysOfWeek: r.DaysOfWeek,
		Color:      r.Color,
		Priority:   r.Priority,
	}
}

// Validate delegates to the session schema so API callers see exactly the
// violations the schema would report.
func (r *SessionRequest) Validate() error {
	return r.ToDomain().Validate()
}

// SessionResponse mirrors a session plus its rendered display string.
type SessionResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	DaysOfWeek []int  `json:"daysOfWeek"`
	Color      string `json:"color"`
	Priority   int    `json:"priority"`
	Display    string `json:"display"`
}

func newSessionResponse(s *sessions.Session) SessionResponse {
	return SessionResponse{
		ID:         s.ID,
		Name:       s.Name,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		DaysOfWeek: s.DaysOfWeek,
		Color:      s.Color,
		Priority:   s.Priority,
		Display:    s.Format(),
	}
}

// ProfileResponse is the full club profile.
type ProfileResponse struct {
	Version  string            `json:"version"`
	Club     profile.Club      `json:"club"`
	Branding profile.Branding  `json:"branding"`
	Sessions []SessionResponse `json:"sessions"`
	RevSport profile.RevSport  `json:"revSport"`
}

func newProfileResponse(p *profile.ClubProfile) ProfileResponse {
	sessionResponses := make([]SessionResponse, len(p.Sessions))
	for i := range p.Sessions {
		sessionResponses[i] = newSessionResponse(&p.Sessions[i])
	}
	return ProfileResponse{
		Version:  p.Version,
		Club:     p.Club,
		Branding: p.Branding,
		Sessions: sessionResponses,
		RevSport: p.RevSport,
	}
}

// ConfigResponse is the runtime configuration with credentials redacted.
// Username and password are intentionally absent from the type.
type ConfigResponse struct {
	BaseURL  string              `json:"baseUrl"`
	Debug    bool                `json:"debug"`
	Sessions config.SessionTimes `json:"sessions"`
}

func newConfigResponse(cfg config.Config) ConfigResponse {
	return ConfigResponse{
		BaseURL:  cfg.BaseURL,
		Debug:    cfg.Debug,
		Sessions: cfg.Sessions,
	}
}

// ViolationResponse is one failed rule on one field path.
type ViolationResponse struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message    string              `json:"message"`
	Violations []ViolationResponse `json:"violations,omitempty"`
}

func newErrorResponse(message string, err error) ErrorResponse {
	response := ErrorResponse{Message: message}
	if errs, ok := validation.AsErrors(err); ok {
		response.Violations = make([]ViolationResponse, len(errs))
		for i, v := range errs {
			response.Violations[i] = ViolationResponse{
				Field:   v.Field,
				Code:    string(v.Code),
				Message: v.Message,
			}
		}
	}
	return response
}
