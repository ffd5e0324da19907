package main

import (
	"os"
	"os/signal"
	"syscall"

	"cardcatalog.app/configs"
	"cardcatalog.app/configs/configsdatabase"
	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/routes"

	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()
	configslog.InitLogger(cfg.LogLevel, cfg.Env)
	defer configslog.SyncLogger()

	db, err := configsdatabase.InitDB(cfg.Database)
	if err != nil {
		configslog.Log.Fatal("Database could not be initialized", zap.Error(err))
	}
	defer configsdatabase.CloseDB(db)

	app := configs.NewFiberApp(cfg)
	routes.SetupRoutes(app, db, configs.SetupSession(cfg))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("Server listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		configslog.Log.Error("Server stopped with error", zap.Error(err))
	}
}
