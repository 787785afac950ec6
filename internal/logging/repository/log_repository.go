package repository

import (
	"context"

	"github.com/Rapter1990/footballteamapi/internal/logging/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogRepository is the persistence port for request logs.
type LogRepository interface {
	Save(ctx context.Context, entry *domain.LogEntry) error
}

type gormLogRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) LogRepository {
	return &gormLogRepository{db: db}
}

func (r *gormLogRepository) Save(ctx context.Context, entry *domain.LogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}
