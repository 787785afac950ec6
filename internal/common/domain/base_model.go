package domain

import (
	"context"
	"time"

	"github.com/Rapter1990/footballteamapi/internal/common/auditctx"
)

// BaseModel holds the audit columns shared by every persisted record.
type BaseModel struct {
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	CreatedBy string    `gorm:"column:created_by" json:"createdBy"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
	UpdatedBy string    `gorm:"column:updated_by" json:"updatedBy"`
}

// StampForCreate fills the creation audit fields from the request context.
func (m *BaseModel) StampForCreate(ctx context.Context) {
	m.CreatedAt = time.Now()
	m.CreatedBy = auditctx.Principal(ctx)
}

// StampForUpdate fills the update audit fields from the request context.
func (m *BaseModel) StampForUpdate(ctx context.Context) {
	m.UpdatedAt = time.Now()
	m.UpdatedBy = auditctx.Principal(ctx)
}
