package dto

import (
	"github.com/Rapter1990/footballteamapi/internal/footballteam/domain"
)

type CreateFootballTeamRequest struct {
	TeamName string `json:"teamName" binding:"required"`
}

type UpdateFootballTeamRequest struct {
	TeamName string `json:"teamName" binding:"required"`
}

type FootballTeamResponse struct {
	ID       string           `json:"id"`
	TeamName string           `json:"teamName"`
	Players  []PlayerResponse `json:"players"`
}

func ToFootballTeamResponse(team *domain.FootballTeam) FootballTeamResponse {
	players := make([]PlayerResponse, 0, len(team.Players))
	for i := range team.Players {
		players = append(players, ToPlayerResponse(&team.Players[i]))
	}
	return FootballTeamResponse{
		ID:       team.ID,
		TeamName: team.TeamName,
		Players:  players,
	}
}
