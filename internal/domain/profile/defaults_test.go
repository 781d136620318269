//go:build unit
// +build unit

package profile

import (
	"testing"

	"github.com/lmrc/boathouse/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultProfile_Derivations(t *testing.T) {
	p := NewDefaultProfile("Lake Macquarie Rowing Club", "Lake Macquarie Rowing Club")

	assert.Equal(t, "lake-macquarie-rowing-club", p.Club.ID)
	assert.Equal(t, "LMRC", p.Club.ShortName)
	assert.Equal(t, "Lake Macquarie Rowing Club", p.Club.Name)
	assert.Equal(t, DefaultTimezone, p.Club.Timezone)
}

func TestNewDefaultProfile_IsDeterministic(t *testing.T) {
	a := NewDefaultProfile("Port Hunter", "Port Hunter Rowing")
	b := NewDefaultProfile("Port Hunter", "Port Hunter Rowing")
	assert.Equal(t, a, b)
}

func TestNewDefaultProfile_DefaultSession(t *testing.T) {
	p := NewDefaultProfile("lmrc", "Lake Macquarie Rowing Club")

	require.Len(t, p.Sessions, 1)
	s := p.Sessions[0]
	assert.Equal(t, "AM", s.ID)
	assert.Equal(t, "Morning", s.Name)
	assert.Equal(t, "06:30", s.StartTime)
	assert.Equal(t, "08:30", s.EndTime)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.DaysOfWeek)
	assert.Equal(t, 1, s.Priority)

	// the generated session itself is fully valid
	require.NoError(t, s.Validate())
}

func TestNewDefaultProfile_IsADraft(t *testing.T) {
	p := NewDefaultProfile("lmrc", "Lake Macquarie Rowing Club")

	// the draft fails full validation until the integration endpoint is set
	err := p.Validate()
	require.Error(t, err)

	violations, ok := validation.AsErrors(err)
	require.True(t, ok)
	require.Len(t, violations, 1)
	assert.Equal(t, "revSport.baseUrl", violations[0].Field)

	p.RevSport.BaseURL = "https://www.revolutionise.com.au/lmrc"
	require.NoError(t, p.Validate())
}

func TestNormalizeClubID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mixed case with spaces", "Lake Macquarie Rowing Club", "lake-macquarie-rowing-club"},
		{"already normalized", "lmrc", "lmrc"},
		{"whitespace runs collapse", "Lake   Macquarie", "lake-macquarie"},
		{"surrounding whitespace dropped", "  lmrc  ", "lmrc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeClubID(tt.input))
		})
	}
}

func TestShortNameFromInitials(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"four words", "Lake Macquarie Rowing Club", "LMRC"},
		{"single word", "Boathouse", "B"},
		{"lowercase words uppercased", "port hunter rowing", "PHR"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShortNameFromInitials(tt.input))
		})
	}
}
