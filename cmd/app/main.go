package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"canteen/cmd"
	canteenhttp "canteen/internal/adapters/in/http"
	pg "canteen/internal/adapters/out/postgres"
	"canteen/internal/core/application/session"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(postgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = pg.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	sessions := app.CreateSessionManager()

	jobManager := app.CreateJobManager(sessions)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, sessions, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		ReconcileFallbackCron: goDotEnvVariable("RECONCILE_FALLBACK_CRON"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, sessions *session.Manager, port string) {
	server := canteenhttp.NewServer(
		sessions,
		app.CreateMenuRepository(),
		app.CreateSubmitOrderCommandHandler(),
		app.CreateAdvanceOrderCommandHandler(),
		app.CreateSetOrderStatusCommandHandler(),
		app.CreateAddMenuItemCommandHandler(),
		app.CreateUpdateMenuItemCommandHandler(),
		app.CreateRemoveMenuItemCommandHandler(),
		app.CreateGetMenuQueryHandler(),
		app.CreateGetVisibleOrdersQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
