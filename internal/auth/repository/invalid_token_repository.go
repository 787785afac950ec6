package repository

import (
	"context"
	"errors"

	"github.com/Rapter1990/footballteamapi/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// invalidTokenRepository implements InvalidTokenRepository backed by GORM.
type invalidTokenRepository struct {
	db *gorm.DB
}

func NewInvalidTokenRepository(db *gorm.DB) InvalidTokenRepository {
	return &invalidTokenRepository{db: db}
}

// SaveAll appends the given token ids to the ledger. Re-inserting an already
// revoked id is not an error, so retried logouts stay safe.
func (r *invalidTokenRepository) SaveAll(ctx context.Context, tokenIDs []string) error {
	if len(tokenIDs) == 0 {
		return nil
	}

	records := make([]domain.InvalidToken, 0, len(tokenIDs))
	for _, tokenID := range tokenIDs {
		record := domain.InvalidToken{
			ID:      uuid.New().String(),
			TokenID: tokenID,
		}
		record.StampForCreate(ctx)
		records = append(records, record)
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_id"}},
			DoNothing: true,
		}).
		Create(&records).Error
}

func (r *invalidTokenRepository) ExistsByTokenID(ctx context.Context, tokenID string) (bool, error) {
	var record domain.InvalidToken
	err := r.db.WithContext(ctx).Where("token_id = ?", tokenID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
