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

// footballTeamUsecase implements FootballTeamUsecase.
type footballTeamUsecase struct {
	teamRepo repository.FootballTeamRepository
}

func NewFootballTeamUsecase(teamRepo repository.FootballTeamRepository) FootballTeamUsecase {
	return &footballTeamUsecase{teamRepo: teamRepo}
}

func (u *footballTeamUsecase) CreateTeam(ctx context.Context, req *dto.CreateFootballTeamRequest) (*domain.FootballTeam, error) {
	exists, err := u.teamRepo.ExistsByTeamName(ctx, req.TeamName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.ErrTeamAlreadyExist
	}

	team := &domain.FootballTeam{TeamName: req.TeamName}
	if err := u.teamRepo.Save(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (u *footballTeamUsecase) UpdateTeam(ctx context.Context, teamID string, req *dto.UpdateFootballTeamRequest) (*domain.FootballTeam, error) {
	team, err := u.findTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	team.TeamName = req.TeamName
	if err := u.teamRepo.Save(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (u *footballTeamUsecase) GetTeamByID(ctx context.Context, teamID string) (*domain.FootballTeam, error) {
	return u.findTeam(ctx, teamID)
}

func (u *footballTeamUsecase) DeleteTeam(ctx context.Context, teamID string) error {
	team, err := u.findTeam(ctx, teamID)
	if err != nil {
		return err
	}
	return u.teamRepo.Delete(ctx, team)
}

func (u *footballTeamUsecase) GetAllTeams(ctx context.Context, paging commondto.CustomPagingRequest) (commondomain.CustomPage[domain.FootballTeam], error) {
	teams, total, err := u.teamRepo.FindAll(ctx, paging.PageSize, paging.Offset())
	if err != nil {
		return commondomain.CustomPage[domain.FootballTeam]{}, err
	}
	if len(teams) == 0 {
		return commondomain.CustomPage[domain.FootballTeam]{}, apperror.ErrTeamNotFound
	}
	return commondomain.NewCustomPage(teams, paging.PageNumber, paging.PageSize, total), nil
}

func (u *footballTeamUsecase) findTeam(ctx context.Context, teamID string) (*domain.FootballTeam, error) {
	team, err := u.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, apperror.ErrTeamNotFound
	}
	return team, nil
}
