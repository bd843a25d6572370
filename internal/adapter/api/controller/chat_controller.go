package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/central-brain/internal/adapter/api/dto"
	"github.com/hugohenrick/central-brain/internal/domain/chat"
	"github.com/hugohenrick/central-brain/pkg/logger"
	"github.com/hugohenrick/central-brain/pkg/middleware"
)

// ChatController gerencia as requisições do chat
type ChatController struct {
	service *chat.Service
	logger  logger.Logger
}

// NewChatController cria uma nova instância de ChatController
func NewChatController(service *chat.Service, logger logger.Logger) *ChatController {
	return &ChatController{
		service: service,
		logger:  logger,
	}
}

// Send godoc
// @Summary Envia uma mensagem
// @Description Grava a mensagem do usuário, gera uma resposta e grava a resposta
// @Tags chat
// @Accept json
// @Produce json
// @Param message body dto.ChatRequest true "Mensagem do usuário"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/chat [post]
func (c *ChatController) Send(ctx *gin.Context) {
	var request dto.ChatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request", err.Error()))
		return
	}

	reply, err := c.service.Converse(ctx.Request.Context(), *request.Message)
	if err != nil {
		middleware.LoggerFrom(ctx, c.logger).Error("Chat error", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to process message", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatResponse{Message: reply})
}

// History godoc
// @Summary Lista o histórico
// @Description Retorna todas as mensagens em ordem cronológica
// @Tags chat
// @Produce json
// @Success 200 {array} dto.ChatEntryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/chat [get]
func (c *ChatController) History(ctx *gin.Context) {
	entries, err := c.service.History(ctx.Request.Context())
	if err != nil {
		middleware.LoggerFrom(ctx, c.logger).Error("Get chat history error", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to get chat history", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChatHistoryResponse(entries))
}
