package middleware

import (
	"micro_learning_backend/internal/config"
	"micro_learning_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates every protected route. A missing token is 401, a
// token that fails signature or expiry checks is 403; nothing downstream
// runs in either case.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Forbidden(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
