package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/central-brain/internal/adapter/api/dto"
	"github.com/hugohenrick/central-brain/pkg/logger"
)

// Recovery converte panics em 500. O detalhe só é exposto em desenvolvimento.
func Recovery(log logger.Logger, exposeDetail bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		detail := fmt.Sprint(recovered)
		log.Error("Panic recuperado", "error", detail, "path", c.Request.URL.Path)

		message := "Something went wrong"
		if exposeDetail {
			message = detail
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal Server Error", message))
	})
}
