package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"hrdesk.co.kr/hrdesk/security"
	"hrdesk.co.kr/hrdesk/web/common"
)

const SessionCookie = "hrdesk.session"

// Authentication accepts a Bearer token or the session cookie.
func Authentication(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("login required"))
				return
			}

			tokenStr = cookie
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("login required"))
				return
			}

			tokenStr = parts[1]
		}

		claims, err := security.ParseSessionToken(tokenStr, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired session"))
			return
		}

		c.Set(common.ClaimsKey, claims)
		c.Next()
	}
}

// RequireAdmin must run after Authentication.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := common.Claims(c)
		if claims == nil || !claims.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse("admin only"))
			return
		}
		c.Next()
	}
}
