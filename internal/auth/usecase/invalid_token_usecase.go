package usecase

import (
	"context"

	"github.com/Rapter1990/footballteamapi/internal/auth/repository"
	"github.com/Rapter1990/footballteamapi/internal/common/apperror"
)

// invalidTokenUsecase implements InvalidTokenUsecase over the invalid-token
// table.
type invalidTokenUsecase struct {
	invalidTokenRepo repository.InvalidTokenRepository
}

func NewInvalidTokenUsecase(invalidTokenRepo repository.InvalidTokenRepository) InvalidTokenUsecase {
	return &invalidTokenUsecase{invalidTokenRepo: invalidTokenRepo}
}

func (u *invalidTokenUsecase) InvalidateTokens(ctx context.Context, tokenIDs []string) error {
	return u.invalidTokenRepo.SaveAll(ctx, tokenIDs)
}

func (u *invalidTokenUsecase) CheckForInvalidity(ctx context.Context, tokenID string) error {
	invalid, err := u.invalidTokenRepo.ExistsByTokenID(ctx, tokenID)
	if err != nil {
		return err
	}
	if invalid {
		return apperror.ErrTokenAlreadyInvalidated
	}
	return nil
}
