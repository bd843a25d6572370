package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/central-brain/internal/adapter/api/controller"
	"github.com/hugohenrick/central-brain/internal/adapter/api/dto"
	"github.com/hugohenrick/central-brain/pkg/logger"
	"github.com/hugohenrick/central-brain/pkg/middleware"
)

// RouterConfig reúne as dependências do router
type RouterConfig struct {
	ChatController   *controller.ChatController
	HealthController *controller.HealthController
	Logger           logger.Logger
	CORSOrigins      []string
	// ExposeErrors inclui o detalhe de panics na resposta
	ExposeErrors bool
}

// NewRouter monta o router com os middlewares globais e todas as rotas
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestLogger(cfg.Logger))
	router.Use(middleware.Recovery(cfg.Logger, cfg.ExposeErrors))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Not Found", c.Request.URL.Path))
	})

	SetupHealthRoutes(router, cfg.HealthController)
	SetupSwaggerRoutes(router)

	api := router.Group("/api")
	SetupChatRoutes(api, cfg.ChatController)

	return router
}
