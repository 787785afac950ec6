package usecase

import (
	"context"

	"github.com/Rapter1990/footballteamapi/internal/auth/domain"
	"github.com/Rapter1990/footballteamapi/internal/auth/dto"
)

// AuthUsecase bundles the authentication flows exposed to the delivery
// layer.
type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*domain.Token, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error)
	RefreshToken(ctx context.Context, req *dto.TokenRefreshRequest) (*domain.Token, error)
	Logout(ctx context.Context, req *dto.TokenInvalidateRequest) error
}

// InvalidTokenUsecase is the revoked-token ledger service consulted and
// populated by the token flows.
type InvalidTokenUsecase interface {
	InvalidateTokens(ctx context.Context, tokenIDs []string) error
	CheckForInvalidity(ctx context.Context, tokenID string) error
}
