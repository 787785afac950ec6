package repository

import (
	"context"

	"github.com/Rapter1990/footballteamapi/internal/footballteam/domain"
)

// FootballTeamRepository is the persistence port for teams. FindByID loads
// the squad along with the team and returns (nil, nil) when no row matches.
type FootballTeamRepository interface {
	Save(ctx context.Context, team *domain.FootballTeam) error
	FindByID(ctx context.Context, id string) (*domain.FootballTeam, error)
	ExistsByTeamName(ctx context.Context, teamName string) (bool, error)
	Delete(ctx context.Context, team *domain.FootballTeam) error
	FindAll(ctx context.Context, limit, offset int) ([]domain.FootballTeam, int64, error)
}

// PlayerRepository is the persistence port for players.
type PlayerRepository interface {
	Save(ctx context.Context, player *domain.Player) error
	FindByID(ctx context.Context, id string) (*domain.Player, error)
	Delete(ctx context.Context, player *domain.Player) error
	FindByTeamID(ctx context.Context, teamID string, limit, offset int) ([]domain.Player, int64, error)
}
