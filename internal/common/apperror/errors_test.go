package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrUserNotFound, http.StatusNotFound},
		{ErrPasswordNotValid, http.StatusBadRequest},
		{ErrUserAlreadyExist, http.StatusConflict},
		{ErrUserStatusNotValid, http.StatusBadRequest},
		{ErrTokenAlreadyInvalidated, http.StatusBadRequest},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrRoleNotFound, http.StatusNotFound},
		{ErrTeamNotFound, http.StatusNotFound},
		{ErrTeamAlreadyExist, http.StatusConflict},
		{ErrPlayerNotFound, http.StatusNotFound},
		{ErrPlayerTeamMismatch, http.StatusBadRequest},
		{ErrMaxPlayersExceeded, http.StatusBadRequest},
		{ErrMaxForeignPlayers, http.StatusBadRequest},
		{ErrMaxGoalkeepersExceeded, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestStatusOfWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("refreshing session: %w", ErrInvalidToken)
	assert.Equal(t, http.StatusUnauthorized, StatusOf(wrapped))
}

func TestStatusOfUnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("database is down")))
}
