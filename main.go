package main

import (
	"time"

	"github.com/Nithin0000007/Rock-paper-scissors/config"
	"github.com/Nithin0000007/Rock-paper-scissors/logger"
	"github.com/Nithin0000007/Rock-paper-scissors/monitor"
	"github.com/Nithin0000007/Rock-paper-scissors/persistence"
	"github.com/Nithin0000007/Rock-paper-scissors/server"
	"github.com/Nithin0000007/Rock-paper-scissors/timer"
)

func main() {
	// Initialize logger
	logger.Init()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalf("Failed to load configuration: %v", err)
	}

	// Match-history store is optional; the game runs fully in memory.
	store, err := openStore(cfg)
	if err != nil {
		logger.Log.Fatalf("Failed to connect to database: %v", err)
	}
	if store != nil {
		logger.Log.Info("Database connection successful.")
		defer store.Close()
	}

	// Metrics endpoint
	mon := monitor.NewMonitor("rps")
	mon.StartServer(cfg.Server.MetricsAddress)

	// Initialize Game Server
	gameServer := server.NewGameServer(cfg, store, mon)

	// Refresh the gauges off the event path.
	timers := timer.NewManager()
	defer timers.Stop()
	timers.Add(0, 5*time.Second, func() {
		rooms, _ := gameServer.Stats()
		mon.SetActiveRooms(rooms)
	})

	// Start Server
	logger.Log.Infof("Starting game server on %s", cfg.Server.HTTPAddress)
	if err := gameServer.Start(); err != nil {
		logger.Log.Fatalf("Failed to start server: %v", err)
	}
}

func openStore(cfg *config.Config) (persistence.Store, error) {
	pg := cfg.Database.Postgres
	switch cfg.Database.Driver {
	case "postgres":
		return persistence.NewPostgreSQL(pg.Host, pg.Port, pg.User, pg.Password, pg.DBName)
	case "gorm":
		return persistence.NewGormPostgreSQL(pg.Host, pg.Port, pg.User, pg.Password, pg.DBName)
	default:
		return nil, nil
	}
}
