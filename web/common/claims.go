package common

import (
	"github.com/gin-gonic/gin"
	"hrdesk.co.kr/hrdesk/security"
)

const ClaimsKey = "claims"

// Claims returns the session claims set by the authentication middleware.
func Claims(c *gin.Context) *security.SessionClaims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*security.SessionClaims)
	return claims
}

// UserID is the logged-in user's id, or "" outside an authenticated route.
func UserID(c *gin.Context) string {
	if claims := Claims(c); claims != nil {
		return claims.UserID
	}
	return ""
}
