package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/CUknot/chat_backend/config"
	"github.com/CUknot/chat_backend/router"
	"github.com/CUknot/chat_backend/websocket"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title           Chat API
// @version         1.0
// @description     Mock REST API and WebSocket relay for the chat prototype
// @host            localhost:8080
// @BasePath        /
// @schemes         http
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Start the chat relay
	hubCtx, stopHub := context.WithCancel(context.Background())
	hub := websocket.NewHub()
	go hub.Run(hubCtx)

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router.New(cfg, hub),
	}

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		log.Printf("Swagger documentation available at http://%s/swagger/index.html", cfg.SwaggerHost)
		log.Printf("Chat relay available at ws://localhost:%s/ws/chat/{roomId}", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				return server.Shutdown(ctx)
			},
			"chat-hub": func(ctx context.Context) error {
				stopHub()
				return hub.Wait(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Server exited with code: %d", exitCode)
	os.Exit(exitCode)
}
