package cmd

import (
	adapterstorage "salta/internal/adapters/storage"
	adaptertmux "salta/internal/adapters/tmux"
	adapterzoxide "salta/internal/adapters/zoxide"
	"salta/internal/config"
	"salta/internal/logging"
	"salta/internal/ports"
	"salta/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Options         config.Options
	SnapshotService *services.SnapshotService
	SessionService  *services.SessionService

	// Internal - for cleanup only
	repo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired.
// Zoxide backs the ranked directory list when installed; otherwise the
// SQLite visit history takes over for both ranking and visit recording.
func NewContainer(cli *CLI) (*Container, error) {
	repo, err := adapterstorage.NewSQLiteRepository(cli.DBPath)
	if err != nil {
		return nil, err
	}

	opts := config.NewOptions(
		cli.Separator,
		config.ParsePathList(cli.BasePaths),
		cli.ShowResurrectable,
		cli.DefaultLayout,
		logging.Logger,
	)

	var frecency ports.FrecencySource = repo
	var recorder ports.VisitRecorder = repo
	if adapterzoxide.Available() {
		source := adapterzoxide.NewSource()
		frecency = source
		recorder = source
	} else {
		logging.Logger.Info("zoxide not found, using local visit history")
	}

	lister := adaptertmux.NewLister()
	sink := adaptertmux.NewSink()

	snapshotService := services.NewSnapshotService(frecency, lister, repo, opts, logging.Logger)
	sessionService := services.NewSessionService(sink, lister, repo, recorder, logging.Logger)

	return &Container{
		Options:         opts,
		SnapshotService: snapshotService,
		SessionService:  sessionService,
		repo:            repo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
