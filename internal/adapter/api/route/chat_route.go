package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/central-brain/internal/adapter/api/controller"
)

// SetupChatRoutes configura as rotas do chat
func SetupChatRoutes(router *gin.RouterGroup, chatController *controller.ChatController) {
	chatRouter := router.Group("/chat")
	{
		chatRouter.POST("", chatController.Send)
		chatRouter.GET("", chatController.History)
	}
}
