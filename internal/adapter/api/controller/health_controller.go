package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/central-brain/internal/adapter/api/dto"
	"github.com/hugohenrick/central-brain/internal/infrastructure/database"
)

// Version é a versão publicada da API
const Version = "1.0.0"

// HealthController responde às verificações de saúde
type HealthController struct {
	monitor database.Monitor
	env     string
}

// NewHealthController cria uma nova instância de HealthController
func NewHealthController(monitor database.Monitor, env string) *HealthController {
	return &HealthController{
		monitor: monitor,
		env:     env,
	}
}

// Root godoc
// @Summary Informações da API
// @Tags health
// @Produce json
// @Success 200 {object} dto.RootResponse
// @Router / [get]
func (c *HealthController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.RootResponse{
		Message:   "Central Brain API is running",
		Version:   Version,
		Timestamp: time.Now().UTC().Format(dto.ISOTimestamp),
	})
}

// Health godoc
// @Summary Health check
// @Description Estado do servidor e da conexão com o armazenamento
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status: "healthy",
		Services: dto.HealthServices{
			Server:   "up",
			Database: c.monitor.Status().String(),
		},
		Host:      c.monitor.Host(),
		Timestamp: time.Now().UTC().Format(dto.ISOTimestamp),
		Env:       c.env,
	})
}
