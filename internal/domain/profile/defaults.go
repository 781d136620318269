package profile

import (
	"strings"

	"github.com/lmrc/boathouse/internal/domain/sessions"
)

// Defaults used by the generator.
const (
	DefaultTimezone       = "Australia/Sydney"
	DefaultSessionColor   = "#1E5AA8"
	DefaultPrimaryColor   = "#1E5AA8"
	DefaultSecondaryColor = "#FFC20E"
	placeholderLogoURL    = "https://example.com/logo.png"
)

// NewDefaultProfile produces a minimally populated profile template from a
// club id and display name. It is pure and deterministic: the id is
// normalized to lowercase with whitespace runs collapsed to hyphens, the
// short name is derived from the name's initials, and a single weekday
// morning session is generated.
//
// The result is a draft, not a deployment-ready profile: RevSport.BaseURL is
// left empty and the logo URL is a placeholder, so the template fails full
// validation until the caller completes it. That is intentional — it forces
// an explicit decision on the integration endpoint before the profile can be
// trusted.
func NewDefaultProfile(clubID, clubName string) *ClubProfile {
	return &ClubProfile{
		Version: SchemaVersion,
		Club: Club{
			ID:        NormalizeClubID(clubID),
			Name:      clubName,
			ShortName: ShortNameFromInitials(clubName),
			Timezone:  DefaultTimezone,
		},
		Branding: Branding{
			LogoURL:        placeholderLogoURL,
			PrimaryColor:   DefaultPrimaryColor,
			SecondaryColor: DefaultSecondaryColor,
		},
		Sessions: []sessions.Session{
			{
				ID:         "AM",
				Name:       "Morning",
				StartTime:  "06:30",
				EndTime:    "08:30",
				DaysOfWeek: sessions.WeekdaysMonToFri,
				Color:      DefaultSessionColor,
				Priority:   1,
			},
		},
		RevSport: RevSport{BaseURL: ""},
	}
}

// NormalizeClubID lowercases the id and collapses internal whitespace runs
// to single hyphens. Validators reject un-normalized ids; this is the one
// place that normalizes.
func NormalizeClubID(id string) string {
	return strings.Join(strings.Fields(strings.ToLower(id)), "-")
}

// ShortNameFromInitials derives the club's short name as the uppercase
// first letter of each whitespace-separated word ("Lake Macquarie Rowing
// Club" -> "LMRC").
func ShortNameFromInitials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		b.WriteString(strings.ToUpper(string(runes[0])))
	}
	return b.String()
}
