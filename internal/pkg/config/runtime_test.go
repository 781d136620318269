//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/lmrc/boathouse/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllDefaults(t *testing.T) {
	cfg, err := Load(MapSource{})
	require.NoError(t, err)

	expected := Config{
		BaseURL:  DefaultBaseURL,
		Username: "",
		Password: "",
		Debug:    false,
		Sessions: SessionTimes{
			Morning1: Window{Start: "06:30", End: "07:30"},
			Morning2: Window{Start: "07:30", End: "08:30"},
		},
	}
	assert.Equal(t, expected, cfg)
}

func TestLoad_DebugRequiresExactLowercaseTrue(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		enabled bool
	}{
		{"lowercase true", "true", true},
		{"uppercase TRUE", "TRUE", false},
		{"mixed case True", "True", false},
		{"one", "1", false},
		{"yes", "yes", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(MapSource{EnvRevSportDebug: tt.value})
			require.NoError(t, err)
			assert.Equal(t, tt.enabled, cfg.Debug)
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(MapSource{
		EnvRevSportBaseURL:  "https://www.revolutionise.com.au/lmrc",
		EnvRevSportUsername: "coach",
		EnvRevSportPassword: "squeak",
		EnvSession1Start:    "05:45",
		EnvSession1End:      "07:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://www.revolutionise.com.au/lmrc", cfg.BaseURL)
	assert.Equal(t, "coach", cfg.Username)
	assert.Equal(t, "squeak", cfg.Password)
	assert.Equal(t, Window{Start: "05:45", End: "07:00"}, cfg.Sessions.Morning1)
	// untouched slot keeps its documented default
	assert.Equal(t, Window{Start: "07:30", End: "08:30"}, cfg.Sessions.Morning2)
}

func TestLoad_CollectsEveryViolation(t *testing.T) {
	_, err := Load(MapSource{
		EnvRevSportBaseURL: "not-a-url",
		EnvSession1Start:   "6:30",
		EnvSession2Start:   "09:00",
		EnvSession2End:     "08:00",
	})
	require.Error(t, err)

	violations, ok := validation.AsErrors(err)
	require.True(t, ok)

	fields := map[string]validation.Code{}
	for _, v := range violations {
		fields[v.Field] = v.Code
	}

	assert.Equal(t, validation.CodeFormat, fields["baseUrl"])
	assert.Equal(t, validation.CodeFormat, fields["sessions.morning1.start"])
	assert.Equal(t, validation.CodeRange, fields["sessions.morning2.end"])
}

func TestLoad_ReversedWindowRejected(t *testing.T) {
	_, err := Load(MapSource{
		EnvSession1Start: "07:30",
		EnvSession1End:   "07:30",
	})
	require.Error(t, err)

	violations, ok := validation.AsErrors(err)
	require.True(t, ok)
	require.Len(t, violations, 1)
	assert.Equal(t, validation.CodeRange, violations[0].Code)
}

func TestLoad_EmptyValuesFallBackToDefaults(t *testing.T) {
	cfg, err := Load(MapSource{
		EnvRevSportBaseURL: "",
		EnvSession1Start:   "",
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultSession1Start, cfg.Sessions.Morning1.Start)
}

func TestClubOverrides(t *testing.T) {
	overrides := ClubOverrides(MapSource{
		EnvClubName:         "Port Hunter Rowing",
		EnvClubTimezone:     "Australia/Brisbane",
		EnvClubPrimaryColor: "#112233",
		EnvRevSportBaseURL:  "https://www.revolutionise.com.au/phr",
	})

	assert.Equal(t, "Port Hunter Rowing", overrides.Name)
	assert.Equal(t, "Australia/Brisbane", overrides.Timezone)
	assert.Equal(t, "#112233", overrides.PrimaryColor)
	assert.Equal(t, "https://www.revolutionise.com.au/phr", overrides.RevSportBaseURL)
	assert.Empty(t, overrides.ShortName)
	assert.Empty(t, overrides.LogoURL)
}
