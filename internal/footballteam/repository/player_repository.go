package repository

import (
	"context"
	"errors"

	"github.com/Rapter1990/footballteamapi/internal/footballteam/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormPlayerRepository implements PlayerRepository using GORM.
type gormPlayerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &gormPlayerRepository{db: db}
}

func (r *gormPlayerRepository) Save(ctx context.Context, player *domain.Player) error {
	if player.ID == "" {
		player.ID = uuid.New().String()
		player.StampForCreate(ctx)
	}
	player.StampForUpdate(ctx)
	return r.db.WithContext(ctx).Save(player).Error
}

func (r *gormPlayerRepository) FindByID(ctx context.Context, id string) (*domain.Player, error) {
	var player domain.Player
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

func (r *gormPlayerRepository) Delete(ctx context.Context, player *domain.Player) error {
	return r.db.WithContext(ctx).Delete(player).Error
}

func (r *gormPlayerRepository) FindByTeamID(ctx context.Context, teamID string, limit, offset int) ([]domain.Player, int64, error) {
	var players []domain.Player
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Player{}).Where("football_team_id = ?", teamID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&players).Error
	if err != nil {
		return nil, 0, err
	}

	return players, total, nil
}
