package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/central-brain/internal/adapter/api/controller"
)

// SetupHealthRoutes configura as rotas de diagnóstico na raiz
func SetupHealthRoutes(router gin.IRoutes, healthController *controller.HealthController) {
	router.GET("/", healthController.Root)
	router.GET("/health", healthController.Health)
}
