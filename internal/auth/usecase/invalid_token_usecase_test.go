package usecase

import (
	"context"
	"testing"

	"github.com/Rapter1990/footballteamapi/internal/common/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidateTokens(t *testing.T) {
	u := NewInvalidTokenUsecase(newFakeInvalidTokenRepository())
	ctx := context.Background()

	require.NoError(t, u.CheckForInvalidity(ctx, "jti-1"))
	require.NoError(t, u.CheckForInvalidity(ctx, "jti-2"))

	require.NoError(t, u.InvalidateTokens(ctx, []string{"jti-1", "jti-2"}))

	assert.ErrorIs(t, u.CheckForInvalidity(ctx, "jti-1"), apperror.ErrTokenAlreadyInvalidated)
	assert.ErrorIs(t, u.CheckForInvalidity(ctx, "jti-2"), apperror.ErrTokenAlreadyInvalidated)
	assert.NoError(t, u.CheckForInvalidity(ctx, "jti-3"))
}

func TestInvalidateTokensIsIdempotent(t *testing.T) {
	u := NewInvalidTokenUsecase(newFakeInvalidTokenRepository())
	ctx := context.Background()

	require.NoError(t, u.InvalidateTokens(ctx, []string{"jti-1"}))
	require.NoError(t, u.InvalidateTokens(ctx, []string{"jti-1"}))

	assert.ErrorIs(t, u.CheckForInvalidity(ctx, "jti-1"), apperror.ErrTokenAlreadyInvalidated)
}
