package domain

import (
	commondomain "github.com/Rapter1990/footballteamapi/internal/common/domain"
)

// InvalidToken is a revoked token id. Rows are only ever inserted; a token id
// present here fails any later validation that references it.
type InvalidToken struct {
	commondomain.BaseModel

	ID      string `gorm:"column:id;primaryKey" json:"id"`
	TokenID string `gorm:"column:token_id;uniqueIndex" json:"tokenId"`
}

func (InvalidToken) TableName() string {
	return "invalid_tokens"
}
