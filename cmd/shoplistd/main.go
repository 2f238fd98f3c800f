package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"shoplist/internal/config"
	"shoplist/internal/http/handlers"
	applog "shoplist/internal/log"
	"shoplist/internal/repos"
	"shoplist/internal/wire"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// No raw error escapes the handler boundary
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).
				JSON(wire.NewError(wire.KindServerError, "Internal server error", nil))
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(handlers.Identity())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Audit(c, "rate.limit.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).
				JSON(wire.NewError(wire.KindServerError, "Rate limit exceeded, retry soon", nil))
		},
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db)

	lists := app.Group("/shoppingList")
	lists.Post("/create", deps.ShoppingListHandler.Create)
	lists.Get("/get", deps.ShoppingListHandler.Get)
	lists.Get("/myList", deps.ShoppingListHandler.MyList)
	lists.Put("/update", deps.ShoppingListHandler.Update)
	lists.Delete("/delete", deps.ShoppingListHandler.Delete)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Unmatched routes get the same envelope as every other failure
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).
			JSON(wire.NewError(wire.KindEndpointNotFound, "Endpoint not found", nil))
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
