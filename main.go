package main

import (
	api "github.com/Rapter1990/footballteamapi/cmd/api"
	authdelivery "github.com/Rapter1990/footballteamapi/internal/auth/delivery"
	authdomain "github.com/Rapter1990/footballteamapi/internal/auth/domain"
	authrepo "github.com/Rapter1990/footballteamapi/internal/auth/repository"
	"github.com/Rapter1990/footballteamapi/internal/auth/token"
	authusecase "github.com/Rapter1990/footballteamapi/internal/auth/usecase"
	teamdelivery "github.com/Rapter1990/footballteamapi/internal/footballteam/delivery"
	teamdomain "github.com/Rapter1990/footballteamapi/internal/footballteam/domain"
	teamrepo "github.com/Rapter1990/footballteamapi/internal/footballteam/repository"
	teamusecase "github.com/Rapter1990/footballteamapi/internal/footballteam/usecase"
	logdomain "github.com/Rapter1990/footballteamapi/internal/logging/domain"
	logrepo "github.com/Rapter1990/footballteamapi/internal/logging/repository"
	logusecase "github.com/Rapter1990/footballteamapi/internal/logging/usecase"
	"github.com/Rapter1990/footballteamapi/pkg/config"
	"github.com/Rapter1990/footballteamapi/pkg/database"
	"github.com/Rapter1990/footballteamapi/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", err)
	}

	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", err)
	}

	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.InvalidToken{},
		&teamdomain.FootballTeam{},
		&teamdomain.Player{},
		&logdomain.LogEntry{},
	); err != nil {
		logger.Fatal("failed to migrate database", err)
	}

	userRepo := authrepo.NewUserRepository(db)
	invalidTokenRepo := authrepo.NewInvalidTokenRepository(db)
	teamRepo := teamrepo.NewFootballTeamRepository(db)
	playerRepo := teamrepo.NewPlayerRepository(db)
	logRepository := logrepo.NewLogRepository(db)

	invalidTokenUsecase := authusecase.NewInvalidTokenUsecase(invalidTokenRepo)
	tokenCodec := token.NewCodec(cfg.PrivateKey, cfg.PublicKey, cfg.TokenIssuer)
	tokenService := token.NewService(tokenCodec, invalidTokenUsecase, cfg.AccessTokenExpireMinutes, cfg.RefreshTokenExpireDays)
	authUsecase := authusecase.NewAuthUsecase(userRepo, tokenService, invalidTokenUsecase)
	teamUsecase := teamusecase.NewFootballTeamUsecase(teamRepo)
	playerUsecase := teamusecase.NewPlayerUsecase(teamRepo, playerRepo)
	logUsecase := logusecase.NewLogUsecase(logRepository)

	authHandler := authdelivery.NewAuthHandler(authUsecase)
	teamHandler := teamdelivery.NewFootballTeamHandler(teamUsecase, playerUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	api.SetupRoutes(r, authHandler, teamHandler, tokenService, logUsecase)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", err)
	}
}
