package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskvault/internal/core/ports"
	"taskvault/pkg/apierrors"
)

// CallerContextKey is the context key holding the authenticated caller identity.
const CallerContextKey = "caller_id"

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller identity from the Authorization header.
// Handlers behind it never see raw credentials, only the identity stored in
// the context.
func AuthMiddleware(authService ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c, lang)
			return
		}

		tokenString := strings.TrimPrefix(header, bearerPrefix)
		if tokenString == "" {
			abortUnauthorized(c, lang)
			return
		}

		callerID, err := authService.VerifyToken(c.Request.Context(), tokenString)
		if err != nil || callerID == "" {
			abortUnauthorized(c, lang)
			return
		}

		c.Set(CallerContextKey, callerID)
		c.Next()
	}
}

// GetCallerID returns the identity stored by AuthMiddleware, or "" when the
// request never went through it.
func GetCallerID(c *gin.Context) string {
	if callerID, exists := c.Get(CallerContextKey); exists {
		if s, ok := callerID.(string); ok {
			return s
		}
	}
	return ""
}

func abortUnauthorized(c *gin.Context, lang string) {
	c.AbortWithStatusJSON(
		http.StatusUnauthorized,
		apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
	)
}
