package sessions

import (
	"fmt"
	"time"

	"github.com/lmrc/boathouse/internal/pkg/validation"
)

// Weekday codes follow time.Weekday: 0 = Sunday .. 6 = Saturday.
const (
	minWeekday = 0
	maxWeekday = 6
)

// WeekdaysMonToFri is the standard training recurrence.
var WeekdaysMonToFri = []int{1, 2, 3, 4, 5}

// Session is a named recurring time window during which bookings are
// permitted. Times are wall-clock HH:MM strings interpreted against the
// club profile's timezone. Color only affects UI display; Priority orders
// overlapping sessions for display and carries no uniqueness requirement.
type Session struct {
	ID         string `json:"id" yaml:"id" validate:"required"`
	Name       string `json:"name" yaml:"name" validate:"required"`
	StartTime  string `json:"startTime" yaml:"startTime" validate:"required,hhmm"`
	EndTime    string `json:"endTime" yaml:"endTime" validate:"required,hhmm"`
	DaysOfWeek []int  `json:"daysOfWeek" yaml:"daysOfWeek"`
	Color      string `json:"color" yaml:"color" validate:"required,hexcolor6"`
	Priority   int    `json:"priority" yaml:"priority"`
}

// Validate checks every schema rule independently and returns the full
// violation set, never just the first failure.
func (s *Session) Validate() error {
	violations := validation.Collect(validation.New().Struct(s))
	violations = append(violations, s.windowViolations()...)
	violations = append(violations, s.weekdayViolations()...)
	return violations.ErrOrNil()
}

// windowViolations enforces startTime < endTime. The fixed-width zero-padded
// format makes lexicographic comparison valid. Only checked once both times
// are well-formed, so a malformed time is not reported twice.
func (s *Session) windowViolations() validation.Errors {
	if !validation.IsTimeOfDay(s.StartTime) || !validation.IsTimeOfDay(s.EndTime) {
		return nil
	}
	if s.StartTime >= s.EndTime {
		return validation.Errors{{
			Field:   "endTime",
			Code:    validation.CodeRange,
			Message: fmt.Sprintf("time window %s-%s is empty or reversed", s.StartTime, s.EndTime),
		}}
	}
	return nil
}

func (s *Session) weekdayViolations() validation.Errors {
	if len(s.DaysOfWeek) == 0 {
		return validation.Errors{{
			Field:   "daysOfWeek",
			Code:    validation.CodeRequired,
			Message: "at least one weekday is required",
		}}
	}

	var violations validation.Errors
	seen := make(map[int]bool, len(s.DaysOfWeek))
	for _, day := range s.DaysOfWeek {
		if day < minWeekday || day > maxWeekday {
			violations = append(violations, validation.Violation{
				Field:   "daysOfWeek",
				Code:    validation.CodeRange,
				Message: fmt.Sprintf("weekday %d is outside %d-%d", day, minWeekday, maxWeekday),
			})
			continue
		}
		if seen[day] {
			violations = append(violations, validation.Violation{
				Field:   "daysOfWeek",
				Code:    validation.CodeUniqueness,
				Message: fmt.Sprintf("weekday %d appears more than once", day),
			})
		}
		seen[day] = true
	}
	return violations
}

// Format renders the session for display, e.g. "Morning 6:30 AM–8:30 AM".
// It performs no validation; malformed times are rendered verbatim.
func (s Session) Format() string {
	return fmt.Sprintf("%s %s–%s", s.Name, clockDisplay(s.StartTime), clockDisplay(s.EndTime))
}

func clockDisplay(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}
