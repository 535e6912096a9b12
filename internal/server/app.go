// Package server assembles the SocialScribe service: configuration, the
// database pool and migrations, the generation client, the post service and
// the HTTP server, and runs it until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/socialscribe/internal/logging"
	"github.com/dmitrijs2005/socialscribe/internal/server/archive"
	"github.com/dmitrijs2005/socialscribe/internal/server/config"
	"github.com/dmitrijs2005/socialscribe/internal/server/generation"
	"github.com/dmitrijs2005/socialscribe/internal/server/metrics"
	"github.com/dmitrijs2005/socialscribe/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/socialscribe/internal/server/rest"
	"github.com/dmitrijs2005/socialscribe/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Construction seams, replaced in tests.
var (
	logOutput      io.Writer = os.Stdout
	openDB                   = repomanager.Open
	newRepoManager           = repomanager.NewPostgresRepositoryManager
	newTextModel             = func(ctx context.Context, apiKey string) (generation.TextModel, error) {
		return generation.NewGeminiClient(ctx, apiKey)
	}
	newS3Archiver = func(ctx context.Context, cfg archive.S3Config) (archive.Archiver, error) {
		return archive.NewS3Archiver(ctx, cfg)
	}
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *rest.HTTPServer
}

// NewApp validates c and builds every dependency. Any failure is fatal to
// startup; partially opened resources are released.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(logOutput, c.LogLevel)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if c.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	app, err := build(ctx, c, db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return app, nil
}

func build(ctx context.Context, c *config.Config, db *sql.DB, logger logging.Logger) (*App, error) {
	rm := newRepoManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}
	logger.Info(ctx, "Database ready")

	model, err := newTextModel(ctx, c.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("generation client error: %w", err)
	}

	var archiver archive.Archiver = archive.NopArchiver{}
	if c.ArchiveEnabled() {
		archiver, err = newS3Archiver(ctx, archive.S3Config{
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("archive init error: %w", err)
		}
		logger.Info(ctx, "Archiving approved posts", "bucket", c.S3Bucket)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(reg)

	gen := generation.NewGenerator(model, c.GenerationModels, logger, m.Attempts())
	ps := services.NewPostService(db, rm, gen, archiver, m, logger)

	srv := rest.NewHTTPServer(rest.Options{
		Address:         c.EndpointAddrHTTP,
		APIPrefix:       c.APIPrefix,
		AllowedOrigins:  c.AllowedOrigins,
		ShutdownTimeout: c.ShutdownTimeout,
		Metrics:         m,
		Gatherer:        reg,
	}, ps, logger)

	logger.Info(ctx, "Generation candidates", "models", gen.Candidates())

	return &App{config: c, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "HTTP server error", "error", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}

// Close releases the database pool.
func (app *App) Close() error {
	if app.db == nil {
		return nil
	}
	return app.db.Close()
}
