package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lmrc/boathouse/internal/domain/profile"
	"github.com/lmrc/boathouse/internal/domain/sessions"
	"github.com/lmrc/boathouse/internal/infrastructure/persistence/models"
	"github.com/lmrc/boathouse/internal/pkg/logger"
	"github.com/lmrc/boathouse/internal/pkg/validation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormSessionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSessionRepository creates a new GORM-based SessionRepository implementation
func NewGormSessionRepository(db *gorm.DB, logger logger.Logger) (sessions.SessionRepository, error) {
	return &gormSessionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSessionRepository) Create(ctx context.Context, session *sessions.Session, modifiedBy string) error {
	if err := session.Validate(); err != nil {
		return err
	}

	model := &models.SessionModel{}
	model.FromDomain(session)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SessionModel{}).Where("id = ?", session.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check session id: %w", err)
		}
		if count > 0 {
			return validation.Errors{{
				Field:   "id",
				Code:    validation.CodeUniqueness,
				Message: fmt.Sprintf("duplicate session id %q", session.ID),
			}}
		}
		if err := tx.Create(model).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return validation.Errors{{
					Field:   "id",
					Code:    validation.CodeUniqueness,
					Message: fmt.Sprintf("duplicate session id %q", session.ID),
				}}
			}
			return fmt.Errorf("failed to create session: %w", err)
		}
		return touchMetadata(tx, modifiedBy)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Created session with id ", session.ID)
	return nil
}

func (r *gormSessionRepository) List(ctx context.Context) ([]*sessions.Session, error) {
	var modelList []*models.SessionModel
	err := r.db.WithContext(ctx).
		Model(&models.SessionModel{}).
		Where("enabled = ?", true).
		Order("sort_order asc").
		Order("start_time asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	domainList := make([]*sessions.Session, len(modelList))
	for i, m := range modelList {
		domainList[i] = m.ToDomain()
	}
	return domainList, nil
}

func (r *gormSessionRepository) GetByID(ctx context.Context, sessionID string) (*sessions.Session, error) {
	var model models.SessionModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session %q: %w", sessionID, sessions.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSessionRepository) UpdateByID(ctx context.Context, session *sessions.Session, modifiedBy string) error {
	if err := session.Validate(); err != nil {
		return err
	}

	model := &models.SessionModel{}
	model.FromDomain(session)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.SessionModel{}).Where("id = ?", session.ID).Updates(map[string]interface{}{
			"label":        model.Label,
			"start_time":   model.StartTime,
			"end_time":     model.EndTime,
			"display":      model.Display,
			"sort_order":   model.SortOrder,
			"days_of_week": model.DaysOfWeek,
		})
		if result.Error != nil {
			return fmt.Errorf("failed to update session: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("session %q: %w", session.ID, sessions.ErrNotFound)
		}
		return touchMetadata(tx, modifiedBy)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Updated session with id ", session.ID)
	return nil
}

func (r *gormSessionRepository) DeleteByID(ctx context.Context, sessionID string, modifiedBy string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.SessionModel{}, "id = ?", sessionID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete session: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("session %q: %w", sessionID, sessions.ErrNotFound)
		}
		return touchMetadata(tx, modifiedBy)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted session with id ", sessionID)
	return nil
}

// touchMetadata records the mutation in the store's metadata table.
func touchMetadata(tx *gorm.DB, modifiedBy string) error {
	entries := []models.MetadataModel{
		{Key: models.MetaLastModified, Value: time.Now().UTC().Format(time.RFC3339)},
		{Key: models.MetaModifiedBy, Value: modifiedBy},
		{Key: models.MetaVersion, Value: profile.SchemaVersion},
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entries).Error
	if err != nil {
		return fmt.Errorf("failed to update store metadata: %w", err)
	}
	return nil
}
