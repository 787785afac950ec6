package delivery

import (
	"net/http"

	"github.com/Rapter1990/footballteamapi/internal/auth/dto"
	"github.com/Rapter1990/footballteamapi/internal/auth/usecase"
	"github.com/Rapter1990/footballteamapi/internal/common/apperror"
	commondto "github.com/Rapter1990/footballteamapi/internal/common/dto"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register creates a new user.
// POST /api/v1/authentication/user/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, commondto.ErrorOf(http.StatusBadRequest, err.Error()))
		return
	}

	if _, err := h.authUsecase.Register(c.Request.Context(), &req); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, commondto.Success())
}

// Login authenticates a user and returns an access and refresh token.
// POST /api/v1/authentication/user/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, commondto.ErrorOf(http.StatusBadRequest, err.Error()))
		return
	}

	token, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, commondto.SuccessOf(dto.TokenResponse{
		AccessToken:          token.AccessToken,
		AccessTokenExpiresAt: token.AccessTokenExpiresAt,
		RefreshToken:         token.RefreshToken,
	}))
}

// RefreshToken exchanges a valid refresh token for a new access token.
// POST /api/v1/authentication/user/refresh-token
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.TokenRefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, commondto.ErrorOf(http.StatusBadRequest, err.Error()))
		return
	}

	token, err := h.authUsecase.RefreshToken(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, commondto.SuccessOf(dto.TokenResponse{
		AccessToken:          token.AccessToken,
		AccessTokenExpiresAt: token.AccessTokenExpiresAt,
		RefreshToken:         token.RefreshToken,
	}))
}

// Logout invalidates the provided token pair.
// POST /api/v1/authentication/user/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.TokenInvalidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, commondto.ErrorOf(http.StatusBadRequest, err.Error()))
		return
	}

	if err := h.authUsecase.Logout(c.Request.Context(), &req); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, commondto.Success())
}

func handleError(c *gin.Context, err error) {
	status := apperror.StatusOf(err)
	c.JSON(status, commondto.ErrorOf(status, err.Error()))
}
