package delivery

import (
	"net/http"

	"github.com/Rapter1990/footballteamapi/internal/common/apperror"
	commondto "github.com/Rapter1990/footballteamapi/internal/common/dto"
	"github.com/Rapter1990/footballteamapi/internal/footballteam/dto"
	"github.com/Rapter1990/footballteamapi/internal/footballteam/usecase"

	"github.com/gin-gonic/gin"
)

// FootballTeamHandler handles team and player HTTP requests.
type FootballTeamHandler struct {
	teamUsecase   usecase.FootballTeamUsecase
	playerUsecase usecase.PlayerUsecase
}

func NewFootballTeamHandler(teamUsecase usecase.FootballTeamUsecase, playerUsecase usecase.PlayerUsecase) *FootballTeamHandler {
	return &FootballTeamHandler{
		teamUsecase:   teamUsecase,
		playerUsecase: playerUsecase,
	}
}

// CreateTeam creates a new football team.
// POST /api/v1/football-teams
func (h *FootballTeamHandler) CreateTeam(c *gin.Context) {
	var req dto.CreateFootballTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, commondto.ErrorOf(http.StatusBadRequest, err.Error()))
		return
	}

	team, err := h.teamUsecase.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, commondto.SuccessOf(dto.ToFootballTeamResponse(team)))
}

// UpdateTeam renames an existing team.
// PUT /api/v1/football-teams/:teamId
func (h *FootballTeamHandler) UpdateTeam(c *gin.Context) {
	var req dto.UpdateFootballTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, commondto.ErrorOf(http.StatusBadRequest, err.Error()))
		return
	}

	team, err := h.teamUsecase.UpdateTeam(c.Request.Context(), c.Param("teamId"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, commondto.SuccessOf(dto.ToFootballTeamResponse(team)))
}

// GetTeamByID returns a team with its squad.
// GET /api/v1/football-teams/:teamId
func (h *FootballTeamHandler) GetTeamByID(c *gin.Context) {
	team, err := h.teamUsecase.GetTeamByID(c.Request.Context(), c.Param("teamId"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, commondto.SuccessOf(dto.ToFootballTeamResponse(team)))
}

// DeleteTeam removes a team and its squad.
// DELETE /api/v1/football-teams/:teamId
func (h *FootballTeamHandler) DeleteTeam(c *gin.Context) {
	if err := h.teamUsecase.DeleteTeam(c.Request.Context(), c.Param("teamId")); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, commondto.Success())
}

// GetAllTeams returns a page of teams.
// POST /api/v1/football-teams/teamsList
func (h *FootballTeamHandler) GetAllTeams(c *gin.Context) {
	var req commondto.CustomPagingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, commondto.ErrorOf(http.StatusBadRequest, err.Error()))
		return
	}

	page, err := h.teamUsecase.GetAllTeams(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	content := make([]dto.FootballTeamResponse, 0, len(page.Content))
	for i := range page.Content {
		content = append(content, dto.ToFootballTeamResponse(&page.Content[i]))
	}

	c.JSON(http.StatusOK, commondto.SuccessOf(commondto.CustomPagingResponse[dto.FootballTeamResponse]{
		Content:           content,
		PageNumber:        page.PageNumber,
		PageSize:          page.PageSize,
		TotalElementCount: page.TotalElementCount,
		TotalPageCount:    page.TotalPageCount,
	}))
}

// AddPlayerToTeam adds a player to a team's squad.
// POST /api/v1/football-teams/:teamId/players
func (h *FootballTeamHandler) AddPlayerToTeam(c *gin.Context) {
	var req dto.AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, commondto.ErrorOf(http.StatusBadRequest, err.Error()))
		return
	}

	player, err := h.playerUsecase.AddPlayerToTeam(c.Request.Context(), c.Param("teamId"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, commondto.SuccessOf(dto.ToPlayerResponse(player)))
}

// UpdatePlayer updates a squad member.
// PUT /api/v1/football-teams/:teamId/players/:playerId
func (h *FootballTeamHandler) UpdatePlayer(c *gin.Context) {
	var req dto.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, commondto.ErrorOf(http.StatusBadRequest, err.Error()))
		return
	}

	player, err := h.playerUsecase.UpdatePlayer(c.Request.Context(), c.Param("teamId"), c.Param("playerId"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, commondto.SuccessOf(dto.ToPlayerResponse(player)))
}

// DeletePlayer removes a squad member.
// DELETE /api/v1/football-teams/:teamId/players/:playerId
func (h *FootballTeamHandler) DeletePlayer(c *gin.Context) {
	if err := h.playerUsecase.DeletePlayer(c.Request.Context(), c.Param("teamId"), c.Param("playerId")); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, commondto.Success())
}

// GetPlayersByTeamID returns a page of a team's players.
// GET /api/v1/football-teams/:teamId/players
func (h *FootballTeamHandler) GetPlayersByTeamID(c *gin.Context) {
	var req commondto.CustomPagingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, commondto.ErrorOf(http.StatusBadRequest, err.Error()))
		return
	}

	page, err := h.playerUsecase.GetPlayersByTeamID(c.Request.Context(), c.Param("teamId"), req)
	if err != nil {
		handleError(c, err)
		return
	}

	content := make([]dto.PlayerResponse, 0, len(page.Content))
	for i := range page.Content {
		content = append(content, dto.ToPlayerResponse(&page.Content[i]))
	}

	c.JSON(http.StatusOK, commondto.SuccessOf(commondto.CustomPagingResponse[dto.PlayerResponse]{
		Content:           content,
		PageNumber:        page.PageNumber,
		PageSize:          page.PageSize,
		TotalElementCount: page.TotalElementCount,
		TotalPageCount:    page.TotalPageCount,
	}))
}

func handleError(c *gin.Context, err error) {
	status := apperror.StatusOf(err)
	c.JSON(status, commondto.ErrorOf(status, err.Error()))
}
