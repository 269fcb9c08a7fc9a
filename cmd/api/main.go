package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-hardware-pos/internal/config"
	"go-hardware-pos/internal/handler"
	"go-hardware-pos/internal/service"
	"go-hardware-pos/internal/store"
	"go-hardware-pos/internal/ws"
	"go-hardware-pos/pkg/workbook"

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
	cfg := config.Load()

	// 2. Workbook bootstrap: create sheets + sample stock on first run,
	// never touch an existing file.
	created, err := workbook.Init(cfg.DataFile, false, store.SeedSheets())
	if err != nil {
		log.Fatal("Failed to initialize workbook: ", err)
	}
	if created {
		log.Printf("✅ Created %s with seed inventory", cfg.DataFile)
	}

	// 3. Table store: load every sheet into the in-memory cache
	st := store.New(cfg.DataFile)
	if err := st.LoadAll(); err != nil {
		log.Fatal("Failed to load workbook into memory: ", err)
	}
	log.Println("Workbook loaded into memory cache")

	// 4. WebSocket Hub for live stock updates
	hub := ws.NewHub()
	go hub.Run()

	// 5. Dependency Injection (Wiring Layers)
	invService := service.NewInventoryService(st, hub)
	txService := service.NewTransactionService(st, hub)
	dashService := service.NewDashboardService(st)

	invHandler := handler.NewInventoryHandler(invService)
	txHandler := handler.NewTransactionHandler(txService)
	reportHandler := handler.NewReportHandler(dashService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Hardware Shop POS v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))

	// 7. Routes
	api := app.Group("/api")

	api.Get("/inventory", invHandler.GetInventory)
	api.Post("/inventory", invHandler.AddItem)
	api.Put("/inventory/:item_code", invHandler.UpdateItem)
	api.Delete("/inventory/:item_code", invHandler.DeleteItem)

	api.Get("/sales", txHandler.GetSales)
	api.Post("/sales", txHandler.CreateSale)

	api.Get("/purchases", txHandler.GetPurchases)
	api.Post("/purchases", txHandler.CreatePurchase)

	api.Get("/reports/summary", reportHandler.GetSummary)
	api.Get("/reports/daily-summary", reportHandler.GetDailySummaries)
	api.Post("/reports/daily-summary", reportHandler.UpsertDailySummary)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		hub.Register <- c
		defer func() { hub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// Static front-end, when deployed next to the binary
	if _, err := os.Stat("./static"); err == nil {
		app.Static("/static", "./static")
	}
	if _, err := os.Stat("./index.html"); err == nil {
		app.Get("/", func(c *fiber.Ctx) error {
			return c.SendFile("./index.html")
		})
	}

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
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
