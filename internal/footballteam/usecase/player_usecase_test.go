package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/Rapter1990/footballteamapi/internal/common/apperror"
	commondto "github.com/Rapter1990/footballteamapi/internal/common/dto"
	"github.com/Rapter1990/footballteamapi/internal/footballteam/domain"
	"github.com/Rapter1990/footballteamapi/internal/footballteam/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlayerRepository is an in-memory PlayerRepository. It mirrors saved
// players onto the owning team in teamRepo so squad counts stay in sync,
// the way a preloaded association would.
type fakePlayerRepository struct {
	teamRepo *fakeFootballTeamRepository
	players  map[string]*domain.Player
	ordered  []string
	nextID   int
}

func newFakePlayerRepository(teamRepo *fakeFootballTeamRepository) *fakePlayerRepository {
	return &fakePlayerRepository{
		teamRepo: teamRepo,
		players:  make(map[string]*domain.Player),
	}
}

func (f *fakePlayerRepository) Save(_ context.Context, player *domain.Player) error {
	if player.ID == "" {
		f.nextID++
		player.ID = fmt.Sprintf("player-%d", f.nextID)
		f.ordered = append(f.ordered, player.ID)
	}
	copied := *player
	f.players[player.ID] = &copied
	f.syncTeam(player.FootballTeamID)
	return nil
}

func (f *fakePlayerRepository) FindByID(_ context.Context, id string) (*domain.Player, error) {
	player, ok := f.players[id]
	if !ok {
		return nil, nil
	}
	copied := *player
	return &copied, nil
}

func (f *fakePlayerRepository) Delete(_ context.Context, player *domain.Player) error {
	delete(f.players, player.ID)
	for i, id := range f.ordered {
		if id == player.ID {
			f.ordered = append(f.ordered[:i], f.ordered[i+1:]...)
			break
		}
	}
	f.syncTeam(player.FootballTeamID)
	return nil
}

func (f *fakePlayerRepository) FindByTeamID(_ context.Context, teamID string, limit, offset int) ([]domain.Player, int64, error) {
	var teamPlayers []domain.Player
	for _, id := range f.ordered {
		if player, ok := f.players[id]; ok && player.FootballTeamID == teamID {
			teamPlayers = append(teamPlayers, *player)
		}
	}
	total := int64(len(teamPlayers))
	if offset >= len(teamPlayers) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(teamPlayers) {
		end = len(teamPlayers)
	}
	return teamPlayers[offset:end], total, nil
}

func (f *fakePlayerRepository) syncTeam(teamID string) {
	team, ok := f.teamRepo.teams[teamID]
	if !ok {
		return
	}
	team.Players = nil
	for _, id := range f.ordered {
		if player, ok := f.players[id]; ok && player.FootballTeamID == teamID {
			team.Players = append(team.Players, *player)
		}
	}
}

func newPlayerTestEnv(t *testing.T) (PlayerUsecase, *domain.FootballTeam) {
	t.Helper()
	teamRepo := newFakeFootballTeamRepository()
	team := createTeam(t, NewFootballTeamUsecase(teamRepo), "Galatasaray")
	return NewPlayerUsecase(teamRepo, newFakePlayerRepository(teamRepo)), team
}

func addPlayer(t *testing.T, u PlayerUsecase, teamID, name string, foreign bool, position domain.Position) *domain.Player {
	t.Helper()
	player, err := u.AddPlayerToTeam(context.Background(), teamID, &dto.AddPlayerRequest{
		Name:          name,
		ForeignPlayer: foreign,
		Position:      position,
	})
	require.NoError(t, err)
	return player
}

func TestAddPlayerToTeam(t *testing.T) {
	u, team := newPlayerTestEnv(t)

	player := addPlayer(t, u, team.ID, "Muslera", true, domain.PositionGoalkeeper)

	assert.NotEmpty(t, player.ID)
	assert.Equal(t, team.ID, player.FootballTeamID)
	assert.Equal(t, domain.PositionGoalkeeper, player.Position)
}

func TestAddPlayerToUnknownTeam(t *testing.T) {
	u, _ := newPlayerTestEnv(t)

	_, err := u.AddPlayerToTeam(context.Background(), "missing", &dto.AddPlayerRequest{
		Name:     "Muslera",
		Position: domain.PositionGoalkeeper,
	})
	assert.ErrorIs(t, err, apperror.ErrTeamNotFound)
}

func TestAddPlayerMaxSquadSize(t *testing.T) {
	u, team := newPlayerTestEnv(t)

	for i := 1; i <= maxPlayersPerTeam; i++ {
		addPlayer(t, u, team.ID, fmt.Sprintf("Player %d", i), false, domain.PositionMidfielder)
	}

	_, err := u.AddPlayerToTeam(context.Background(), team.ID, &dto.AddPlayerRequest{
		Name:     "One Too Many",
		Position: domain.PositionForward,
	})
	assert.ErrorIs(t, err, apperror.ErrMaxPlayersExceeded)
}

func TestAddPlayerMaxForeignPlayers(t *testing.T) {
	u, team := newPlayerTestEnv(t)

	for i := 1; i <= maxForeignPlayers; i++ {
		addPlayer(t, u, team.ID, fmt.Sprintf("Foreign %d", i), true, domain.PositionMidfielder)
	}

	_, err := u.AddPlayerToTeam(context.Background(), team.ID, &dto.AddPlayerRequest{
		Name:          "Seventh Foreign",
		ForeignPlayer: true,
		Position:      domain.PositionForward,
	})
	assert.ErrorIs(t, err, apperror.ErrMaxForeignPlayers)

	domestic := addPlayer(t, u, team.ID, "Domestic", false, domain.PositionForward)
	assert.NotEmpty(t, domestic.ID)
}

func TestAddPlayerMaxGoalkeepers(t *testing.T) {
	u, team := newPlayerTestEnv(t)

	for i := 1; i <= maxGoalkeepersPerTeam; i++ {
		addPlayer(t, u, team.ID, fmt.Sprintf("Keeper %d", i), false, domain.PositionGoalkeeper)
	}

	_, err := u.AddPlayerToTeam(context.Background(), team.ID, &dto.AddPlayerRequest{
		Name:     "Third Keeper",
		Position: domain.PositionGoalkeeper,
	})
	assert.ErrorIs(t, err, apperror.ErrMaxGoalkeepersExceeded)
}

func TestUpdatePlayer(t *testing.T) {
	u, team := newPlayerTestEnv(t)
	player := addPlayer(t, u, team.ID, "Icardi", true, domain.PositionForward)

	updated, err := u.UpdatePlayer(context.Background(), team.ID, player.ID, &dto.UpdatePlayerRequest{
		Name:          "Mauro Icardi",
		ForeignPlayer: true,
		Position:      domain.PositionForward,
	})
	require.NoError(t, err)

	assert.Equal(t, player.ID, updated.ID)
	assert.Equal(t, "Mauro Icardi", updated.Name)
}

func TestUpdatePlayerTeamMismatch(t *testing.T) {
	teamRepo := newFakeFootballTeamRepository()
	teamUsecase := NewFootballTeamUsecase(teamRepo)
	firstTeam := createTeam(t, teamUsecase, "Galatasaray")
	secondTeam := createTeam(t, teamUsecase, "Fenerbahce")
	u := NewPlayerUsecase(teamRepo, newFakePlayerRepository(teamRepo))

	player := addPlayer(t, u, firstTeam.ID, "Icardi", true, domain.PositionForward)

	_, err := u.UpdatePlayer(context.Background(), secondTeam.ID, player.ID, &dto.UpdatePlayerRequest{
		Name:          "Icardi",
		ForeignPlayer: true,
		Position:      domain.PositionForward,
	})
	assert.ErrorIs(t, err, apperror.ErrPlayerTeamMismatch)
}

func TestDeletePlayer(t *testing.T) {
	u, team := newPlayerTestEnv(t)
	player := addPlayer(t, u, team.ID, "Icardi", true, domain.PositionForward)

	require.NoError(t, u.DeletePlayer(context.Background(), team.ID, player.ID))

	err := u.DeletePlayer(context.Background(), team.ID, player.ID)
	assert.ErrorIs(t, err, apperror.ErrPlayerNotFound)
}

func TestGetPlayersByTeamID(t *testing.T) {
	u, team := newPlayerTestEnv(t)
	for i := 1; i <= 3; i++ {
		addPlayer(t, u, team.ID, fmt.Sprintf("Player %d", i), false, domain.PositionMidfielder)
	}

	page, err := u.GetPlayersByTeamID(context.Background(), team.ID, commondto.CustomPagingRequest{PageNumber: 1, PageSize: 2})
	require.NoError(t, err)

	assert.Len(t, page.Content, 2)
	assert.Equal(t, int64(3), page.TotalElementCount)
	assert.Equal(t, 2, page.TotalPageCount)
}

func TestGetPlayersByTeamIDEmpty(t *testing.T) {
	u, team := newPlayerTestEnv(t)

	_, err := u.GetPlayersByTeamID(context.Background(), team.ID, commondto.CustomPagingRequest{PageNumber: 1, PageSize: 10})
	assert.ErrorIs(t, err, apperror.ErrPlayerNotFound)
}
