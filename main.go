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
	"github.com/google/uuid"

	"currimon_backend/internals/configs"
	database "currimon_backend/internals/databases"
	middlewares "currimon_backend/internals/middlewares"
	routes "currimon_backend/internals/route"
)

func main() {
	cfg := configs.Load()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// request id + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	database.ConnectDB(cfg)
	database.TunePool()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	if err := routes.SetupRoutes(app, database.DB, cfg); err != nil {
		log.Fatalf("route setup error: %v", err)
	}

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

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
