package delivery

import (
	"net/http"
	"strings"

	"github.com/Rapter1990/footballteamapi/internal/auth/domain"
	"github.com/Rapter1990/footballteamapi/internal/auth/token"
	"github.com/Rapter1990/footballteamapi/internal/common/auditctx"
	commondto "github.com/Rapter1990/footballteamapi/internal/common/dto"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer access token and places the caller's
// identity into the request context. Signature and expiry only; the
// invalid-token ledger is consulted on the refresh path, not here.
func AuthMiddleware(tokenService *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, commondto.ErrorOf(http.StatusUnauthorized, "authorization header required"))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, commondto.ErrorOf(http.StatusUnauthorized, "invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := tokenService.GetPayload(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, commondto.ErrorOf(http.StatusUnauthorized, "invalid or expired token"))
			c.Abort()
			return
		}

		userID, _ := claims[domain.ClaimUserID].(string)
		userEmail, _ := claims[domain.ClaimUserEmail].(string)
		c.Set("userID", userID)
		c.Set("userEmail", userEmail)

		ctx := auditctx.WithPrincipal(c.Request.Context(), userEmail)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
