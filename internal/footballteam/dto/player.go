package dto

import (
	"github.com/Rapter1990/footballteamapi/internal/footballteam/domain"
)

type AddPlayerRequest struct {
	Name          string          `json:"name" binding:"required"`
	ForeignPlayer bool            `json:"foreignPlayer"`
	Position      domain.Position `json:"position" binding:"required,oneof=GOALKEEPER DEFENDER MIDFIELDER FORWARD"`
}

type UpdatePlayerRequest struct {
	Name          string          `json:"name" binding:"required"`
	ForeignPlayer bool            `json:"foreignPlayer"`
	Position      domain.Position `json:"position" binding:"required,oneof=GOALKEEPER DEFENDER MIDFIELDER FORWARD"`
}

type PlayerResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ForeignPlayer bool            `json:"foreignPlayer"`
	Position      domain.Position `json:"position"`
}

func ToPlayerResponse(player *domain.Player) PlayerResponse {
	return PlayerResponse{
		ID:            player.ID,
		Name:          player.Name,
		ForeignPlayer: player.ForeignPlayer,
		Position:      player.Position,
	}
}
