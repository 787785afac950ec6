package usecase

import (
	"context"

	commondomain "github.com/Rapter1990/footballteamapi/internal/common/domain"
	commondto "github.com/Rapter1990/footballteamapi/internal/common/dto"
	"github.com/Rapter1990/footballteamapi/internal/footballteam/domain"
	"github.com/Rapter1990/footballteamapi/internal/footballteam/dto"
)

// FootballTeamUsecase bundles the team CRUD flows.
type FootballTeamUsecase interface {
	CreateTeam(ctx context.Context, req *dto.CreateFootballTeamRequest) (*domain.FootballTeam, error)
	UpdateTeam(ctx context.Context, teamID string, req *dto.UpdateFootballTeamRequest) (*domain.FootballTeam, error)
	GetTeamByID(ctx context.Context, teamID string) (*domain.FootballTeam, error)
	DeleteTeam(ctx context.Context, teamID string) error
	GetAllTeams(ctx context.Context, paging commondto.CustomPagingRequest) (commondomain.CustomPage[domain.FootballTeam], error)
}

// PlayerUsecase bundles squad management flows.
type PlayerUsecase interface {
	AddPlayerToTeam(ctx context.Context, teamID string, req *dto.AddPlayerRequest) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, teamID, playerID string, req *dto.UpdatePlayerRequest) (*domain.Player, error)
	DeletePlayer(ctx context.Context, teamID, playerID string) error
	GetPlayersByTeamID(ctx context.Context, teamID string, paging commondto.CustomPagingRequest) (commondomain.CustomPage[domain.Player], error)
}
