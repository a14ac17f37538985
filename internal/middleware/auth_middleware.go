package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/playforge/rewards-backend/pkg/tokens"
)

// SubjectKey is the gin context key under which the verified subject id is stored.
const SubjectKey = "subject"

// TokenAuthMiddleware creates a gin middleware that verifies the bearer
// credential and stores its subject id in the context. All rejections use the
// uniform {ok:false, error} body shape.
func TokenAuthMiddleware(tokenSvc *tokens.Service) gin.HandlerFunc {
	const bearerSchema = "Bearer "

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Authorization header is required"})
			return
		}

		if !strings.HasPrefix(authHeader, bearerSchema) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Authorization header must start with Bearer "})
			return
		}

		subject, err := tokenSvc.Verify(authHeader[len(bearerSchema):])
		if err != nil {
			log.Printf("[WARN] TokenAuthMiddleware: token verification failed: %v", err)
			if errors.Is(err, tokens.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Invalid token"})
			}
			return
		}

		c.Set(SubjectKey, subject)
		c.Next()
	}
}
