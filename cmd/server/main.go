package main

import (
	"context"
	"time"

	"github.com/poiioq/5315-project/internal/config"
	chihttp "github.com/poiioq/5315-project/internal/handler/http"
	"github.com/poiioq/5315-project/internal/logger"
	"github.com/poiioq/5315-project/internal/server"
	"github.com/poiioq/5315-project/internal/service"
	"github.com/poiioq/5315-project/internal/store"
)

func main() {
	log := logger.NewLogger("restaurants-api")

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := store.NewConnectMongo(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Err(err).Msg("error disconnecting from database")
		}
	}()

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)
	handler := chihttp.NewHandler(services, cfg.App, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
