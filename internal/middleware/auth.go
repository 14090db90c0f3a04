package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/studio-gestor/internal/config"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
)

const ContextUserID = "userID"

// AuthMiddleware verifies the bearer token issued by the auth provider.
// The owner id is the "sub" claim.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			deny(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			deny(c, "invalid_authorization_header")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			deny(c, "invalid_token")
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			deny(c, "invalid_token_payload")
			return
		}

		c.Set(ContextUserID, sub)
		c.Next()
	}
}

func deny(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "Sessão inválida. Entre novamente.")
	c.Abort()
}

// Owner returns the authenticated owner id.
func Owner(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
