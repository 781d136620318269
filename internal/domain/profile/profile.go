package profile

import (
	"fmt"
	"sort"

	"github.com/lmrc/boathouse/internal/domain/sessions"
	"github.com/lmrc/boathouse/internal/pkg/validation"
)

// SchemaVersion is the current version of the logical configuration schema,
// not of any persistence format. It exists to support future migrations.
const SchemaVersion = "1.0.0"

// Club identifies the deployment. ID is lowercase with no whitespace; the
// validator rejects anything else rather than normalizing — normalization is
// the default generator's job.
type Club struct {
	ID        string `json:"id" yaml:"id" validate:"required,clubid"`
	Name      string `json:"name" yaml:"name" validate:"required"`
	ShortName string `json:"shortName" yaml:"shortName" validate:"required"`
	Timezone  string `json:"timezone" yaml:"timezone" validate:"required,tzname"`
}

// Branding holds display-only settings. Colors have no scheduling effect.
type Branding struct {
	LogoURL        string `json:"logoUrl" yaml:"logoUrl" validate:"required,absurl"`
	PrimaryColor   string `json:"primaryColor" yaml:"primaryColor" validate:"required,hexcolor6"`
	SecondaryColor string `json:"secondaryColor" yaml:"secondaryColor" validate:"required,hexcolor6"`
}

// RevSport holds the external sports-management integration endpoint.
// There are intentionally no credential fields: credentials come from a
// separate runtime source and are never serialized alongside the profile.
type RevSport struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl" validate:"required,absurl"`
}

// ClubProfile is the full validated configuration bundle for one club.
// Instances are built once at startup, validated, then treated as immutable.
type ClubProfile struct {
	Version  string             `json:"version" yaml:"version" validate:"required"`
	Club     Club               `json:"club" yaml:"club"`
	Branding Branding           `json:"branding" yaml:"branding"`
	Sessions []sessions.Session `json:"sessions" yaml:"sessions" validate:"required,min=1"`
	RevSport RevSport           `json:"revSport" yaml:"revSport"`
}

// Validate checks the aggregate schema: every session independently, the
// cross-session uniqueness invariant, and every profile-level rule. All
// violations are collected and returned together; a profile that fails
// validation must not be trusted in part.
func (p *ClubProfile) Validate() error {
	v := validation.New()

	violations := validation.Collect(v.Struct(p))

	for i := range p.Sessions {
		if err := p.Sessions[i].Validate(); err != nil {
			if errs, ok := validation.AsErrors(err); ok {
				violations = append(violations, validation.Prefix(errs, fmt.Sprintf("sessions[%d].", i))...)
			} else {
				return fmt.Errorf("session validation error: %w", err)
			}
		}
	}

	violations = append(violations, p.duplicateIDViolations()...)
	return violations.ErrOrNil()
}

func (p *ClubProfile) duplicateIDViolations() validation.Errors {
	var violations validation.Errors
	seen := make(map[string]bool, len(p.Sessions))
	for i, s := range p.Sessions {
		if s.ID == "" {
			continue
		}
		if seen[s.ID] {
			violations = append(violations, validation.Violation{
				Field:   fmt.Sprintf("sessions[%d].id", i),
				Code:    validation.CodeUniqueness,
				Message: fmt.Sprintf("duplicate session id %q", s.ID),
			})
		}
		seen[s.ID] = true
	}
	return violations
}

// Slot is a bare start/end window, the shape consumed by the legacy
// two-session runtime config.
type Slot struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// MorningSlots derives the two fixed legacy slots as a view over the general
// session list: the two earliest-starting sessions, priority breaking ties.
// The profile itself remains the single source of truth.
func (p *ClubProfile) MorningSlots() (Slot, Slot, error) {
	if len(p.Sessions) < 2 {
		return Slot{}, Slot{}, fmt.Errorf("profile has %d sessions, two are required for the legacy slot view", len(p.Sessions))
	}

	ordered := make([]sessions.Session, len(p.Sessions))
	copy(ordered, p.Sessions)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].StartTime != ordered[j].StartTime {
			return ordered[i].StartTime < ordered[j].StartTime
		}
		return ordered[i].Priority < ordered[j].Priority
	})

	first := Slot{Start: ordered[0].StartTime, End: ordered[0].EndTime}
	second := Slot{Start: ordered[1].StartTime, End: ordered[1].EndTime}
	return first, second, nil
}
