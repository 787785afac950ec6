package usecase

import (
	"context"

	"github.com/Rapter1990/footballteamapi/internal/common/apperror"
	commondomain "github.com/Rapter1990/footballteamapi/internal/common/domain"
	commondto "github.com/Rapter1990/footballteamapi/internal/common/dto"
	"github.com/Rapter1990/footballteamapi/internal/footballteam/domain"
	"github.com/Rapter1990/footballteamapi/internal/footballteam/dto"
	"github.com/Rapter1990/footballteamapi/internal/footballteam/repository"
)

const (
	maxPlayersPerTeam     = 18
	maxForeignPlayers     = 6
	maxGoalkeepersPerTeam = 2
)

// playerUsecase implements PlayerUsecase.
type playerUsecase struct {
	teamRepo   repository.FootballTeamRepository
	playerRepo repository.PlayerRepository
}

func NewPlayerUsecase(teamRepo repository.FootballTeamRepository, playerRepo repository.PlayerRepository) PlayerUsecase {
	return &playerUsecase{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (u *playerUsecase) AddPlayerToTeam(ctx context.Context, teamID string, req *dto.AddPlayerRequest) (*domain.Player, error) {
	team, err := u.findTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if len(team.Players) >= maxPlayersPerTeam {
		return nil, apperror.ErrMaxPlayersExceeded
	}
	if req.ForeignPlayer && team.ForeignPlayerCount() >= maxForeignPlayers {
		return nil, apperror.ErrMaxForeignPlayers
	}
	if req.Position == domain.PositionGoalkeeper && team.GoalkeeperCount() >= maxGoalkeepersPerTeam {
		return nil, apperror.ErrMaxGoalkeepersExceeded
	}

	player := &domain.Player{
		Name:           req.Name,
		ForeignPlayer:  req.ForeignPlayer,
		Position:       req.Position,
		FootballTeamID: team.ID,
	}
	if err := u.playerRepo.Save(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (u *playerUsecase) UpdatePlayer(ctx context.Context, teamID, playerID string, req *dto.UpdatePlayerRequest) (*domain.Player, error) {
	player, err := u.findTeamPlayer(ctx, teamID, playerID)
	if err != nil {
		return nil, err
	}

	player.Name = req.Name
	player.ForeignPlayer = req.ForeignPlayer
	player.Position = req.Position
	if err := u.playerRepo.Save(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (u *playerUsecase) DeletePlayer(ctx context.Context, teamID, playerID string) error {
	player, err := u.findTeamPlayer(ctx, teamID, playerID)
	if err != nil {
		return err
	}
	return u.playerRepo.Delete(ctx, player)
}

func (u *playerUsecase) GetPlayersByTeamID(ctx context.Context, teamID string, paging commondto.CustomPagingRequest) (commondomain.CustomPage[domain.Player], error) {
	if _, err := u.findTeam(ctx, teamID); err != nil {
		return commondomain.CustomPage[domain.Player]{}, err
	}

	players, total, err := u.playerRepo.FindByTeamID(ctx, teamID, paging.PageSize, paging.Offset())
	if err != nil {
		return commondomain.CustomPage[domain.Player]{}, err
	}
	if len(players) == 0 {
		return commondomain.CustomPage[domain.Player]{}, apperror.ErrPlayerNotFound
	}
	return commondomain.NewCustomPage(players, paging.PageNumber, paging.PageSize, total), nil
}

func (u *playerUsecase) findTeam(ctx context.Context, teamID string) (*domain.FootballTeam, error) {
	team, err := u.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, apperror.ErrTeamNotFound
	}
	return team, nil
}

func (u *playerUsecase) findTeamPlayer(ctx context.Context, teamID, playerID string) (*domain.Player, error) {
	team, err := u.findTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	player, err := u.playerRepo.FindByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, apperror.ErrPlayerNotFound
	}
	if player.FootballTeamID != team.ID {
		return nil, apperror.ErrPlayerTeamMismatch
	}
	return player, nil
}
