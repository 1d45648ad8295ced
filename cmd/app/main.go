package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	chatfx "tripweaver/cmd/fx/chat_fx"
	dbfx "tripweaver/cmd/fx/db_fx"
	plannerfx "tripweaver/cmd/fx/planner_fx"
	signalsfx "tripweaver/cmd/fx/signals_fx"
	storagefx "tripweaver/cmd/fx/storage_fx"
	"tripweaver/internal/api/controllers"
	"tripweaver/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		dbfx.Module,
		plannerfx.Module,
		chatfx.Module,
		signalsfx.Module,
		storagefx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8000"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	chatController *controllers.ChatController,
	signalsController *controllers.SignalsController,
	storageController *controllers.StorageController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.IdentityMiddleware())

	RegisterRoutes(r, plannerController, chatController, signalsController, storageController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	chatController *controllers.ChatController,
	signalsController *controllers.SignalsController,
	storageController *controllers.StorageController) {

	r.GET("/health", func(c *gin.Context) {
		environment := os.Getenv("ENVIRONMENT")
		if environment == "" {
			environment = "development"
		}
		c.JSON(200, gin.H{"status": "ok", "environment": environment})
	})

	api := r.Group("/api")
	api.POST("/plan-trip", plannerController.PlanTrip)
	api.POST("/customize-trip", plannerController.CustomizeTrip)
	api.POST("/chat", chatController.Chat)
	api.GET("/weather", signalsController.GetWeather)
	api.GET("/events", signalsController.GetEvents)
	api.GET("/map", signalsController.GetMap)
	api.POST("/save", storageController.SaveTrip)
	api.GET("/trips/:userId", storageController.ListTrips)
}
