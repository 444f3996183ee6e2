package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"acex_backend/internals/configs"
	database "acex_backend/internals/databases"
	"acex_backend/internals/features/notifications/sender"
	notificationService "acex_backend/internals/features/notifications/service"
	"acex_backend/internals/helpers/storage"
	middlewares "acex_backend/internals/middlewares"
	routes "acex_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		BodyLimit:             int(storage.MaxUploadSize) + 1024*1024,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	// 📦 blob storage (oss | local)
	blob, err := storage.NewFromEnv()
	if err != nil {
		log.Fatalf("❌ Storage gagal diinisialisasi: %v", err)
	}
	if configs.StorageDriver == "local" {
		uploadDir := configs.GetEnv("UPLOAD_DIR", "./uploads")
		app.Static("/uploads", uploadDir)
		log.Printf("✅ Storage lokal aktif, serve %s di /uploads", uploadDir)
	}

	// 🔔 FCM opsional; tanpa kredensial push jadi no-op
	var push sender.Sender
	if fcm, err := sender.NewFirebaseSenderFromCredentials(context.Background(), configs.FirebaseCredentials); err != nil {
		log.Printf("⚠️ Firebase tidak dikonfigurasi, push notification nonaktif: %v", err)
	} else {
		push = fcm
		log.Println("✅ Firebase Messaging siap.")
	}
	notifSvc := notificationService.NewNotificationService(database.DB, push)

	// ❤️ Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, blob, notifSvc)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 60 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
