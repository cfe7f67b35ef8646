package main

import (
	"pantrypilot-backend/cmd/config"
	migration "pantrypilot-backend/cmd/database/migrate"
	"pantrypilot-backend/internal/utils"
	"pantrypilot-backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	utils.LoadConfig()

	zapLogger := logger.Must(logger.New(utils.GetConfig("LOG_LEVEL")))
	defer zapLogger.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		zapLogger.Fatal("failed connecting to database", zap.Error(err))
	}

	if err := migration.Migrate(db); err != nil {
		zapLogger.Fatal("failed migrating database", zap.Error(err))
	}

	app, err := config.NewApp(db, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed setting up application", zap.Error(err))
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
