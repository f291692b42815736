package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-stockledger/internal/handler"
	"go-stockledger/internal/middleware"
	"go-stockledger/internal/model"
	"go-stockledger/internal/repository"
	"go-stockledger/internal/service"
	"go-stockledger/internal/ws"
	"go-stockledger/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db, err := database.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}
	db.AutoMigrate(&model.User{}, &model.Category{}, &model.Product{}, &model.StockHistory{})

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub (view revalidation signals)
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	historyRepo := repository.NewStockHistoryRepo(db)
	userRepo := repository.NewUserRepo(db)

	productService := service.NewProductService(productRepo, historyRepo, categoryRepo, wsHub)
	categoryService := service.NewCategoryService(categoryRepo, wsHub)
	dashService := service.NewDashboardService(historyRepo, productRepo)
	authService := service.NewAuthService(userRepo)

	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	dashHandler := handler.NewDashboardHandler(dashService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stock Ledger v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	api.Post("/auth/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))
	editor := middleware.RequireEditor()

	// Dashboard
	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	protected.Get("/dashboard/stock-movement", dashHandler.GetStockMovement)
	protected.Get("/dashboard/recent", dashHandler.GetRecentProducts)
	protected.Get("/dashboard/low-stock", dashHandler.GetLowStockProducts)

	// Products. Every write path, stock adjustments included, goes through
	// the editor gate.
	protected.Get("/products", productHandler.GetProducts)
	protected.Get("/products/:slug", productHandler.GetProduct)
	protected.Get("/products/:slug/history", productHandler.GetStockHistory)
	protected.Post("/products", editor, productHandler.CreateProduct)
	protected.Put("/products/:slug", editor, productHandler.UpdateProduct)
	protected.Delete("/products/:slug", editor, productHandler.DeleteProduct)
	protected.Post("/products/:slug/stock", editor, productHandler.AdjustStock)

	// Categories
	protected.Get("/categories", categoryHandler.GetCategories)
	protected.Get("/categories/active", categoryHandler.GetActiveCategories)
	protected.Get("/categories/:slug", categoryHandler.GetCategory)
	protected.Post("/categories", editor, categoryHandler.CreateCategory)
	protected.Put("/categories/:slug", editor, categoryHandler.UpdateCategory)
	protected.Delete("/categories/:slug", editor, categoryHandler.DeleteCategory)

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
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if no user owns the admin email yet
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	admin := &model.User{
		Name:     "Administrator",
		Username: "admin",
		Email:    email,
		Role:     model.RoleAdmin,
		Status:   model.UserActive,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Printf("Admin user created: %s (ADMIN)", email)
	}
}
