package v1

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_reporting_system/internal/service"
)

const identityKey = "identity"

// IdentityMiddleware - middleware, привязывающее идентичность к запросу.
// Отсутствующий, кривой или просроченный токен не приводит к отказу:
// запрос тихо понижается до гостевого и продолжается.
func IdentityMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := service.AnonymousIdentity()

		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token != "" {
				identity = authService.Verify(token)
			}
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// identityFromContext достает идентичность запроса, по умолчанию гостевую
func identityFromContext(c *gin.Context) service.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(service.Identity); ok {
			return identity
		}
	}
	return service.AnonymousIdentity()
}
