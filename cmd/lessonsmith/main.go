package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/lessonsmith/internal/catalog"
	"github.com/alexanderramin/lessonsmith/internal/cli"
	"github.com/alexanderramin/lessonsmith/internal/config"
	"github.com/alexanderramin/lessonsmith/internal/db"
	"github.com/alexanderramin/lessonsmith/internal/repository"
	"github.com/alexanderramin/lessonsmith/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Catalog: LESSONSMITH_CATALOG or config path, else the embedded data.
	var cat *catalog.Catalog
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	lessonRepo := repository.NewSQLiteLessonArchiveRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Wire services
	genCfg := service.GenerationConfig{Seed: cfg.Seed, ArchiveHistory: cfg.ArchiveHistory}
	app := &cli.App{
		Generation:        service.NewGenerationService(cat, nil, genCfg, observers...),
		ArchiveGeneration: service.NewGenerationService(cat, lessonRepo, genCfg, observers...),
		Archive:           service.NewArchiveService(lessonRepo, uow, observers...),
		Catalog:           service.NewCatalogService(cat, observers...),

		Defaults:      cfg.Defaults,
		MaxCandidates: cfg.MaxCandidates,
	}

	// Detect interactive terminal for the request form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
