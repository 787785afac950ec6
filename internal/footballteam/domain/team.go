package domain

import (
	commondomain "github.com/Rapter1990/footballteamapi/internal/common/domain"
)

// FootballTeam is a club together with its squad.
type FootballTeam struct {
	commondomain.BaseModel

	ID       string   `gorm:"column:id;primaryKey" json:"id"`
	TeamName string   `gorm:"column:team_name;uniqueIndex" json:"teamName"`
	Players  []Player `gorm:"foreignKey:FootballTeamID;constraint:OnDelete:CASCADE" json:"players"`
}

func (FootballTeam) TableName() string {
	return "football_teams"
}

// ForeignPlayerCount counts squad members flagged as foreign.
func (t *FootballTeam) ForeignPlayerCount() int {
	count := 0
	for _, player := range t.Players {
		if player.ForeignPlayer {
			count++
		}
	}
	return count
}

// GoalkeeperCount counts squad members playing in goal.
func (t *FootballTeam) GoalkeeperCount() int {
	count := 0
	for _, player := range t.Players {
		if player.Position == PositionGoalkeeper {
			count++
		}
	}
	return count
}
