package apperror

import (
	"errors"
	"net/http"
)

// One sentinel per user-visible failure kind. Handlers map these through the
// static status table below instead of inspecting error strings.
var (
	ErrUserNotFound            = errors.New("user not found")
	ErrPasswordNotValid        = errors.New("password is not valid")
	ErrUserAlreadyExist        = errors.New("user already exists")
	ErrUserStatusNotValid      = errors.New("user status is not valid")
	ErrTokenAlreadyInvalidated = errors.New("token is already invalidated")
	ErrInvalidToken            = errors.New("invalid token")
	ErrRoleNotFound            = errors.New("role not found")

	ErrTeamNotFound           = errors.New("football team not found")
	ErrTeamAlreadyExist       = errors.New("football team already exists")
	ErrPlayerNotFound         = errors.New("player not found")
	ErrPlayerTeamMismatch     = errors.New("player does not belong to the given team")
	ErrMaxPlayersExceeded     = errors.New("a team can have at most 18 players")
	ErrMaxForeignPlayers      = errors.New("a team can have at most 6 foreign players")
	ErrMaxGoalkeepersExceeded = errors.New("a team can have at most 2 goalkeepers")
)

var statusTable = map[error]int{
	ErrUserNotFound:            http.StatusNotFound,
	ErrPasswordNotValid:        http.StatusBadRequest,
	ErrUserAlreadyExist:        http.StatusConflict,
	ErrUserStatusNotValid:      http.StatusBadRequest,
	ErrTokenAlreadyInvalidated: http.StatusBadRequest,
	ErrInvalidToken:            http.StatusUnauthorized,
	ErrRoleNotFound:            http.StatusNotFound,

	ErrTeamNotFound:           http.StatusNotFound,
	ErrTeamAlreadyExist:       http.StatusConflict,
	ErrPlayerNotFound:         http.StatusNotFound,
	ErrPlayerTeamMismatch:     http.StatusBadRequest,
	ErrMaxPlayersExceeded:     http.StatusBadRequest,
	ErrMaxForeignPlayers:      http.StatusBadRequest,
	ErrMaxGoalkeepersExceeded: http.StatusBadRequest,
}

// StatusOf resolves the transport status for an error. Unknown errors are
// internal failures.
func StatusOf(err error) int {
	for sentinel, status := range statusTable {
		if errors.Is(err, sentinel) {
			return status
		}
	}
	return http.StatusInternalServerError
}
