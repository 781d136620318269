//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/lmrc/boathouse/internal/domain/sessions"
	"github.com/lmrc/boathouse/internal/infrastructure/persistence"
	"github.com/lmrc/boathouse/internal/infrastructure/persistence/models"
	"github.com/lmrc/boathouse/internal/pkg/config"
	"github.com/lmrc/boathouse/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSessionService wires a sessionService against an in-memory sqlite
// database, mirroring the production wiring in the server binary.
func setupSessionService(t *testing.T) sessions.SessionService {
	t.Helper()

	db, err := persistence.NewDBConnection(config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.SessionModel{}, &models.MetadataModel{}))

	log := testutil.SetupTestLogger(t)
	repo, err := persistence.NewGormSessionRepository(db, log)
	require.NoError(t, err)

	service, err := NewSessionService(repo, log)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := persistence.CloseDB(db); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	return service
}

func testSession(id, start, end string) *sessions.Session {
	return &sessions.Session{
		ID:         id,
		Name:       "Morning",
		StartTime:  start,
		EndTime:    end,
		DaysOfWeek: sessions.WeekdaysMonToFri,
		Color:      "#1E5AA8",
		Priority:   1,
	}
}

func TestSessionService_CreateListGet(t *testing.T) {
	service := setupSessionService(t)
	ctx := context.Background()

	require.NoError(t, service.Create(ctx, testSession("AM2", "07:30", "08:30"), "tester"))
	require.NoError(t, service.Create(ctx, testSession("AM1", "06:30", "07:30"), "tester"))

	listed, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	// Display order is sort order then start time, so the earlier window
	// comes first.
	assert.Equal(t, "AM1", listed[0].ID)

	fetched, err := service.GetByID(ctx, "AM2")
	require.NoError(t, err)
	assert.Equal(t, "07:30", fetched.StartTime)
}

func TestSessionService_RejectsInvalidSession(t *testing.T) {
	service := setupSessionService(t)
	ctx := context.Background()

	err := service.Create(ctx, testSession("AM", "08:30", "06:30"), "tester")
	require.Error(t, err, "a reversed window must not be stored")

	listed, err := service.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestSessionService_UpdateAndDelete(t *testing.T) {
	service := setupSessionService(t)
	ctx := context.Background()

	require.NoError(t, service.Create(ctx, testSession("AM", "06:30", "08:30"), "tester"))

	updated := testSession("AM", "06:00", "08:00")
	require.NoError(t, service.UpdateByID(ctx, updated, "tester"))

	fetched, err := service.GetByID(ctx, "AM")
	require.NoError(t, err)
	assert.Equal(t, "06:00", fetched.StartTime)

	require.NoError(t, service.DeleteByID(ctx, "AM", "tester"))

	_, err = service.GetByID(ctx, "AM")
	assert.True(t, errors.Is(err, sessions.ErrNotFound))
}
