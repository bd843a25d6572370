package route

import (
	"github.com/gin-gonic/gin"
	_ "github.com/hugohenrick/central-brain/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupSwaggerRoutes publica a documentação da API
func SetupSwaggerRoutes(router gin.IRoutes) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
