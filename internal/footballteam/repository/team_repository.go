package repository

import (
	"context"
	"errors"

	"github.com/Rapter1990/footballteamapi/internal/footballteam/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormFootballTeamRepository implements FootballTeamRepository using GORM.
type gormFootballTeamRepository struct {
	db *gorm.DB
}

func NewFootballTeamRepository(db *gorm.DB) FootballTeamRepository {
	return &gormFootballTeamRepository{db: db}
}

func (r *gormFootballTeamRepository) Save(ctx context.Context, team *domain.FootballTeam) error {
	if team.ID == "" {
		team.ID = uuid.New().String()
		team.StampForCreate(ctx)
	}
	team.StampForUpdate(ctx)
	return r.db.WithContext(ctx).Save(team).Error
}

func (r *gormFootballTeamRepository) FindByID(ctx context.Context, id string) (*domain.FootballTeam, error) {
	var team domain.FootballTeam
	err := r.db.WithContext(ctx).Preload("Players").Where("id = ?", id).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *gormFootballTeamRepository) ExistsByTeamName(ctx context.Context, teamName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.FootballTeam{}).Where("team_name = ?", teamName).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormFootballTeamRepository) Delete(ctx context.Context, team *domain.FootballTeam) error {
	return r.db.WithContext(ctx).Select("Players").Delete(team).Error
}

func (r *gormFootballTeamRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.FootballTeam, int64, error) {
	var teams []domain.FootballTeam
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.FootballTeam{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Players").
		Order("team_name ASC").
		Limit(limit).
		Offset(offset).
		Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}
