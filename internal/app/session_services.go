package app

import (
	"context"

	"github.com/lmrc/boathouse/internal/domain/sessions"
	"github.com/lmrc/boathouse/internal/pkg/logger"
)

// sessionService implements the SessionService interface over a repository.
// Schema violations surface to the caller unchanged so the full diagnostic
// reaches whoever proposed the session.
type sessionService struct {
	sessionRepo sessions.SessionRepository
	logger      logger.Logger
}

// NewSessionService creates a new sessionService instance
func NewSessionService(sessionRepo sessions.SessionRepository, logger logger.Logger) (sessions.SessionService, error) {
	return &sessionService{
		sessionRepo: sessionRepo,
		logger:      logger,
	}, nil
}

func (s *sessionService) List(ctx context.Context) ([]*sessions.Session, error) {
	return s.sessionRepo.List(ctx)
}

func (s *sessionService) GetByID(ctx context.Context, sessionID string) (*sessions.Session, error) {
	return s.sessionRepo.GetByID(ctx, sessionID)
}

func (s *sessionService) Create(ctx context.Context, session *sessions.Session, modifiedBy string) error {
	if err := s.sessionRepo.Create(ctx, session, modifiedBy); err != nil {
		s.logger.Warn("Rejected session create for id ", session.ID, ": ", err)
		return err
	}
	return nil
}

func (s *sessionService) UpdateByID(ctx context.Context, session *sessions.Session, modifiedBy string) error {
	if err := s.sessionRepo.UpdateByID(ctx, session, modifiedBy); err != nil {
		s.logger.Warn("Rejected session update for id ", session.ID, ": ", err)
		return err
	}
	return nil
}

func (s *sessionService) DeleteByID(ctx context.Context, sessionID string, modifiedBy string) error {
	return s.sessionRepo.DeleteByID(ctx, sessionID, modifiedBy)
}
