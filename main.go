package main

import (
	"log"
	"time"

	"film-social/cmd"
	"film-social/internal/data/cache"
	"film-social/internal/data/repository"
	"film-social/internal/wire"
	rediscache "film-social/pkg/cache"
	"film-social/pkg/database"
	"film-social/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	rdb, err := rediscache.InitRedis(config.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	if rdb != nil {
		defer rdb.Close()
		logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))
	}

	repos := repository.NewRepository(db, logger)
	filmCache := cache.NewFilmCache(rdb, time.Duration(config.Redis.TTLSeconds)*time.Second, logger)

	app := wire.Wiring(repos, filmCache, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
