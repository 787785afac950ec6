package domain

import (
	commondomain "github.com/Rapter1990/footballteamapi/internal/common/domain"
)

type Position string

const (
	PositionGoalkeeper Position = "GOALKEEPER"
	PositionDefender   Position = "DEFENDER"
	PositionMidfielder Position = "MIDFIELDER"
	PositionForward    Position = "FORWARD"
)

// Player is a squad member of a football team.
type Player struct {
	commondomain.BaseModel

	ID             string   `gorm:"column:id;primaryKey" json:"id"`
	Name           string   `gorm:"column:name" json:"name"`
	ForeignPlayer  bool     `gorm:"column:foreign_player" json:"foreignPlayer"`
	Position       Position `gorm:"column:position" json:"position"`
	FootballTeamID string   `gorm:"column:football_team_id;index" json:"footballTeamId"`
}

func (Player) TableName() string {
	return "football_players"
}
