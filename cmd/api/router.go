package api

import (
	"net/http"

	authdelivery "github.com/Rapter1990/footballteamapi/internal/auth/delivery"
	"github.com/Rapter1990/footballteamapi/internal/auth/token"
	teamdelivery "github.com/Rapter1990/footballteamapi/internal/footballteam/delivery"
	logdelivery "github.com/Rapter1990/footballteamapi/internal/logging/delivery"
	logusecase "github.com/Rapter1990/footballteamapi/internal/logging/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *authdelivery.AuthHandler,
	teamHandler *teamdelivery.FootballTeamHandler,
	tokenService *token.Service,
	logUsecase logusecase.LogUsecase,
) {
	r.Use(logdelivery.RequestLoggingMiddleware(logUsecase))

	api := r.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := api.Group("/authentication/user")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh-token", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
		}

		teams := api.Group("/football-teams")
		teams.Use(authdelivery.AuthMiddleware(tokenService))
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.POST("/teamsList", teamHandler.GetAllTeams)
			teams.GET("/:teamId", teamHandler.GetTeamByID)
			teams.PUT("/:teamId", teamHandler.UpdateTeam)
			teams.DELETE("/:teamId", teamHandler.DeleteTeam)

			players := teams.Group("/:teamId/players")
			{
				players.POST("", teamHandler.AddPlayerToTeam)
				players.GET("", teamHandler.GetPlayersByTeamID)
				players.PUT("/:playerId", teamHandler.UpdatePlayer)
				players.DELETE("/:playerId", teamHandler.DeletePlayer)
			}
		}
	}
}
