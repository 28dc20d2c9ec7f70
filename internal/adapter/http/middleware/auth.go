package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
	"github.com/SNcodeur2001/projet-final-todo/pkg/apierrors"
)

const claimsKey = "claims"

const bearerPrefix = "Bearer "

// AuthRequired verifies the bearer token before any business logic
// runs: 401 when the token is missing, 403 when it is invalid or
// expired.
func AuthRequired(auth ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(apierrors.MsgTokenMissing, lang),
			)
			return
		}

		claims, err := auth.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apierrors.CreateError(apierrors.MsgTokenInvalid, lang),
			)
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentUser returns the claims injected by AuthRequired.
func CurrentUser(c *gin.Context) domain.TokenClaims {
	if value, exists := c.Get(claimsKey); exists {
		if claims, ok := value.(domain.TokenClaims); ok {
			return claims
		}
	}
	return domain.TokenClaims{}
}
