package router

import (
	"net/http"

	"github.com/CUknot/chat_backend/config"
	"github.com/CUknot/chat_backend/controllers"
	"github.com/CUknot/chat_backend/docs"
	"github.com/CUknot/chat_backend/middleware"
	"github.com/CUknot/chat_backend/websocket"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// New builds the HTTP engine serving the REST API, the chat relay and the
// swagger UI.
func New(cfg config.Config, hub *websocket.Hub) *gin.Engine {
	docs.SwaggerInfo.Host = cfg.SwaggerHost

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"connections": hub.ClientCount(),
		})
	})

	api := router.Group("/api")
	{
		api.GET("/", controllers.Greeting)

		api.GET("/rooms", controllers.GetRooms)
		api.GET("/rooms/:roomId/channels", controllers.GetRoomChannels)
		api.GET("/rooms/:roomId/:channelId/messages", controllers.GetChannelMessages)

		api.POST("/account/signin", controllers.SignIn)
	}

	// WebSocket routes; /ws/chat/:roomId matches the partysocket URL layout
	chat := websocket.NewHandler(hub, cfg)
	router.GET("/ws/chat/:roomId", chat.ServeRoom)
	router.GET("/chat/:roomId", chat.ServeRoom)

	return router
}
