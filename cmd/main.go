package main

import (
	"fmt"
	"os"

	"school-cms/config"
	"school-cms/domain/auth"
	"school-cms/migrations"
	"school-cms/pkg/apperrors"
	"school-cms/pkg/logger"
	"school-cms/routes"
	"school-cms/seed"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/main.go [server|migrate|seed|sync]")
		os.Exit(1)
	}

	config.InitConfig()

	logger.Init(logger.Config{
		Level:       logger.Level(viper.GetString("LOG_LEVEL")),
		Environment: viper.GetString("ENVIRONMENT"),
		ServiceName: "school-cms",
	})
	log := logger.Get()

	switch os.Args[1] {
	case "server":
		config.InitDB()
		defer config.CloseDB()
		runMigrations(log)
		startServer(log)
	case "migrate":
		config.InitDB()
		defer config.CloseDB()
		runMigrations(log)
	case "seed":
		config.InitDB()
		defer config.CloseDB()
		runMigrations(log)
		stats, err := seed.Reseed(config.DB, seed.DefaultSite())
		if err != nil {
			log.Fatal("Reseed failed", err,
				logger.Int("pages_applied", stats.Pages),
				logger.Int("sections_applied", stats.Sections),
			)
		}
	case "sync":
		runSync(log)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func runMigrations(log logger.Logger) {
	if err := migrations.Up(config.DB.DB); err != nil {
		log.Fatal("Migrations failed", err)
	}

	username := viper.GetString("ADMIN_USERNAME")
	password := viper.GetString("ADMIN_PASSWORD")
	if username != "" && password != "" {
		if err := auth.EnsureAdminUser(username, password); err != nil {
			log.Fatal("Failed to ensure admin user", err)
		}
	}
}

func startServer(log logger.Logger) {
	e := echo.New()
	e.HideBanner = true

	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(log)
	e.Use(logger.RequestLoggerMiddleware(log))
	e.Use(logger.RecoveryMiddleware(log))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders:    []string{echo.HeaderContentLength},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	routes.RegisterRoutes(e)

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("Starting server", logger.String("port", port))
	e.Logger.Fatal(e.Start(":" + port))
}

// runSync pushes the site definition against a running API instead of the
// database file: login once, create each record, skip conflicts.
func runSync(log logger.Logger) {
	baseURL := viper.GetString("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := seed.NewClient(baseURL)
	if err := client.Login(viper.GetString("ADMIN_USERNAME"), viper.GetString("ADMIN_PASSWORD")); err != nil {
		log.Fatal("Sync login failed", err)
	}

	summary := client.Sync(seed.DefaultSite())
	if summary.Failed > 0 {
		log.Warn("Sync finished with failures",
			logger.CreatedCount(summary.Created),
			logger.SkippedCount(summary.Skipped),
			logger.FailedCount(summary.Failed),
		)
		os.Exit(1)
	}
}
