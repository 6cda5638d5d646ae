package main

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"github.com/angdmz/mattilda/app/apiclient"
	"github.com/angdmz/mattilda/app/config"
	"github.com/angdmz/mattilda/app/routes/auth"
	"github.com/angdmz/mattilda/app/routes/invoices"
	"github.com/angdmz/mattilda/app/routes/payments"
	"github.com/angdmz/mattilda/app/routes/schools"
	"github.com/angdmz/mattilda/app/routes/statements"
	"github.com/angdmz/mattilda/app/routes/students"
	"github.com/angdmz/mattilda/app/session"
	"github.com/angdmz/mattilda/app/templates"
)

// customErrorHandler renders JSON for /api requests and the error templates
// for pages.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case fiber.StatusNotFound:
		return c.Status(code).Render("404", fiber.Map{
			"Title":       "Page Not Found - Mattilda Billing",
			"CurrentPage": "",
		})
	case fiber.StatusUnauthorized:
		return c.Redirect("/auth/login")
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Mattilda Billing",
			"CurrentPage":  "",
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	config.Init()
	cfg := config.AppConfig
	log := cfg.Logger
	defer log.Sync() //nolint:errcheck

	api, err := apiclient.New(apiclient.Options{
		BaseURL:     cfg.APIBaseURL,
		AuthBaseURL: cfg.AuthBaseURL,
		Timeout:     cfg.RequestTimeout,
		Logger:      log,
	})
	if err != nil {
		log.Fatal("Failed to build API client", zap.Error(err))
	}

	sessions := session.NewManager(log)

	engine := templates.Engine()

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/schools")
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"app":         "mattilda-admin",
			"environment": cfg.Environment,
			"status":      "ok",
		})
	})

	// Routes
	auth.SetupAuthRoutes(app, api, sessions)
	schools.SetupSchoolsRoutes(app, api, sessions)
	students.SetupStudentsRoutes(app, api, sessions)
	invoices.SetupInvoicesRoutes(app, api, sessions)
	payments.SetupPaymentsRoutes(app, api, sessions)
	statements.SetupStatementsRoutes(app, api, sessions)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	log.Info("server starting", zap.String("addr", cfg.ListenAddr))
	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
