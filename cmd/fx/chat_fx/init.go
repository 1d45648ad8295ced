package chatfx

import (
	"go.uber.org/fx"

	"tripweaver/internal/api/controllers"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

var Module = fx.Provide(
	provideChatService, provideChatController)

func provideChatService(client utils.GenerativeClientInterface) services.ChatServiceInterface {
	return services.NewChatService(client)
}

func provideChatController(chatService services.ChatServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}
