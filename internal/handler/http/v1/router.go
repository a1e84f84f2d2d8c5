package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Идентичность вычисляется для каждого запроса, отказа тут нет
	api.Use(IdentityMiddleware(h.authService))

	// Маршрут логина через внешнего провайдера
	api.POST("/auth/:provider", h.login)

	// Маршруты репортов: подача и выборка за окно времени
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
