package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-warehouse-api/internal/handler"
	"go-warehouse-api/internal/middleware"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"
	"go-warehouse-api/internal/storage"
	"go-warehouse-api/internal/ws"
	"go-warehouse-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.User{}, &model.Location{}, &model.Inventory{}, &model.Transaction{})

	// 3. Setup Uploads Store
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	store, err := storage.New(uploadDir, os.Getenv("PUBLIC_BASE_URL"))
	if err != nil {
		log.Fatal("Failed to prepare uploads directory: ", err)
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	locationRepo := repository.NewLocationRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	transactionRepo := repository.NewTransactionRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	locationService := service.NewLocationService(locationRepo)
	inventoryService := service.NewInventoryService(inventoryRepo, locationRepo, wsHub)
	transactionService := service.NewTransactionService(transactionRepo, store, wsHub)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	locationHandler := handler.NewLocationHandler(locationService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	transactionHandler := handler.NewTransactionHandler(transactionService, store)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Warehouse API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("FRONT_APP_URL"),
		AllowMethods:     "GET,POST,PATCH,DELETE",
		AllowCredentials: true,
	}))

	// Uploaded attachments served back under a fixed static path
	app.Static("/uploads", uploadDir)

	// 7. Routes
	api := app.Group("/api-warehouse")

	// ============ PUBLIC ROUTES ============
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())

	protected.Get("/user", authHandler.Me)

	protected.Get("/users", userHandler.GetUsers)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Patch("/users/:id", userHandler.UpdateUser)
	protected.Delete("/users/:id", userHandler.DeleteUser)

	protected.Get("/locations", locationHandler.GetLocations)
	protected.Get("/locations/:id", locationHandler.GetLocation)
	protected.Post("/locations", locationHandler.CreateLocation)
	protected.Patch("/locations/:id", locationHandler.UpdateLocation)
	protected.Delete("/locations/:id", locationHandler.DeleteLocation)

	protected.Get("/inventory", inventoryHandler.GetInventory)
	protected.Get("/inventory/:id", inventoryHandler.GetInventoryItem)
	protected.Post("/inventory", inventoryHandler.CreateInventory)
	protected.Patch("/inventory/:id", inventoryHandler.UpdateInventory)
	protected.Delete("/inventory/:id", inventoryHandler.DeleteInventory)

	protected.Get("/transaction", transactionHandler.GetTransactions)
	protected.Get("/transaction/:id", transactionHandler.GetTransaction)
	protected.Post("/transaction", transactionHandler.CreateTransaction)
	protected.Patch("/transaction/:id", transactionHandler.UpdateTransaction)
	protected.Delete("/transaction/:id", transactionHandler.DeleteTransaction)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "5000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
