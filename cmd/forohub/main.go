package main

import (
	"fmt"

	"github.com/Unikyri/forohub-tui/internal/adapter"
	"github.com/Unikyri/forohub-tui/internal/cache"
	"github.com/Unikyri/forohub-tui/internal/client"
	"github.com/Unikyri/forohub-tui/internal/config"
	"github.com/Unikyri/forohub-tui/internal/logger"
	"github.com/Unikyri/forohub-tui/internal/service"
	"github.com/Unikyri/forohub-tui/internal/store"
	"github.com/Unikyri/forohub-tui/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("forohub-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	forumAdapter, err := adapter.NewHTTPForumAdapter(cfg.Adapter, storages.Sessions, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create forum adapter")
	}

	queryCache := cache.NewQueryCache(log)
	services := service.NewServices(storages, forumAdapter, queryCache, log)
	ui := tui.New(services, cfg.App.PageSize, log)

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
