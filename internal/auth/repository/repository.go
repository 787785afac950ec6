package repository

import (
	"context"

	"github.com/Rapter1990/footballteamapi/internal/auth/domain"
)

// UserRepository is the persistence port for the user aggregate. Lookups
// return (nil, nil) when no row matches; the caller decides the error kind.
type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// InvalidTokenRepository is the persistence port for the revoked-token
// ledger.
type InvalidTokenRepository interface {
	SaveAll(ctx context.Context, tokenIDs []string) error
	ExistsByTokenID(ctx context.Context, tokenID string) (bool, error)
}
