package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/lmrc/boathouse/internal/domain/sessions"
)

// SessionModel is the GORM database model for booking sessions. The CHECK
// constraint mirrors the schema's time-ordering invariant so the store
// rejects a reversed window even when written outside the application.
type SessionModel struct {
	ID         string    `gorm:"primaryKey;type:varchar(32)"`
	Label      string    `gorm:"not null;type:varchar(255)"`
	StartTime  string    `gorm:"column:start_time;not null;type:varchar(5);check:chk_session_window,start_time < end_time"`
	EndTime    string    `gorm:"column:end_time;not null;type:varchar(5)"`
	Display    string    `gorm:"type:varchar(7)"`
	Enabled    bool      `gorm:"not null;default:true"`
	SortOrder  int       `gorm:"column:sort_order;not null;default:0"`
	DaysOfWeek string    `gorm:"column:days_of_week;not null;type:varchar(16)"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}

// ToDomain converts GORM model to domain entity
func (m *SessionModel) ToDomain() *sessions.Session {
	return &sessions.Session{
		ID:         m.ID,
		Name:       m.Label,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		DaysOfWeek: decodeWeekdays(m.DaysOfWeek),
		Color:      m.Display,
		Priority:   m.SortOrder,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SessionModel) FromDomain(s *sessions.Session) {
	m.ID = s.ID
	m.Label = s.Name
	m.StartTime = s.StartTime
	m.EndTime = s.EndTime
	m.DaysOfWeek = encodeWeekdays(s.DaysOfWeek)
	m.Display = s.Color
	m.Enabled = true
	m.SortOrder = s.Priority
}

// Weekday sets travel as comma-separated codes ("1,2,3,4,5").
func encodeWeekdays(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

func decodeWeekdays(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	return days
}
