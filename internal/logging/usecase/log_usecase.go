package usecase

import (
	"context"
	"time"

	"github.com/Rapter1990/footballteamapi/internal/logging/domain"
	"github.com/Rapter1990/footballteamapi/internal/logging/repository"
)

// LogUsecase persists request logs.
type LogUsecase interface {
	SaveLog(ctx context.Context, entry *domain.LogEntry) error
}

type logUsecase struct {
	logRepo repository.LogRepository
}

func NewLogUsecase(logRepo repository.LogRepository) LogUsecase {
	return &logUsecase{logRepo: logRepo}
}

func (u *logUsecase) SaveLog(ctx context.Context, entry *domain.LogEntry) error {
	entry.Time = time.Now()
	return u.logRepo.Save(ctx, entry)
}
