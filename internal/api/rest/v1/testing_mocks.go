//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/lmrc/boathouse/internal/domain/profile"
	"github.com/lmrc/boathouse/internal/domain/sessions"

	"github.com/stretchr/testify/mock"
)

// MockSessionService is a mock implementation of SessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) List(ctx context.Context) ([]*sessions.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sessions.Session), args.Error(1)
}

func (m *MockSessionService) GetByID(ctx context.Context, sessionID string) (*sessions.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.Session), args.Error(1)
}

func (m *MockSessionService) Create(ctx context.Context, session *sessions.Session, modifiedBy string) error {
	args := m.Called(ctx, session, modifiedBy)
	return args.Error(0)
}

func (m *MockSessionService) UpdateByID(ctx context.Context, session *sessions.Session, modifiedBy string) error {
	args := m.Called(ctx, session, modifiedBy)
	return args.Error(0)
}

func (m *MockSessionService) DeleteByID(ctx context.Context, sessionID string, modifiedBy string) error {
	args := m.Called(ctx, sessionID, modifiedBy)
	return args.Error(0)
}

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Profile() *profile.ClubProfile {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*profile.ClubProfile)
}

func (m *MockProfileService) MorningSlots() (profile.Slot, profile.Slot, error) {
	args := m.Called()
	return args.Get(0).(profile.Slot), args.Get(1).(profile.Slot), args.Error(2)
}
