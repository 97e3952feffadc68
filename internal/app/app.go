// Package app wires configuration, storage and services for the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/abhisek/devpath/internal/cache"
	"github.com/abhisek/devpath/internal/config"
	"github.com/abhisek/devpath/internal/curriculum"
	"github.com/abhisek/devpath/internal/llm"
	"github.com/abhisek/devpath/internal/store"
	"github.com/abhisek/devpath/internal/tracker"
	"github.com/abhisek/devpath/internal/tutor"
)

// Options controls how the application is assembled.
type Options struct {
	Config config.Config
	DBPath string
	Logger *slog.Logger

	// Provider overrides the configured LLM provider (tests).
	Provider llm.Provider
}

// App holds the long-lived services of one CLI invocation.
type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Store   *store.Store
	Catalog *curriculum.Catalog
	Cache   cache.StatusCache
	Tracker *tracker.Service

	providerOnce sync.Once
	provider     llm.Provider
	providerErr  error
}

// Open opens the database, loads the catalog and connects the status cache.
// A configured but unreachable Redis is logged and replaced by no cache.
func Open(ctx context.Context, opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	catalog := curriculum.Default()
	if f := opts.Config.CurriculumFile; f != "" {
		var err error
		if catalog, err = curriculum.LoadFile(f); err != nil {
			return nil, fmt.Errorf("load curriculum %s: %w", f, err)
		}
		logger.Debug("loaded curriculum", "file", f, "paths", len(catalog.Paths()))
	}

	st, err := store.Open(opts.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	var statusCache cache.StatusCache = cache.Noop{}
	if rc := opts.Config.Redis; rc.Addr != "" {
		r, err := cache.NewRedis(ctx, cache.RedisConfig{
			Addr:     rc.Addr,
			Password: rc.Password,
			DB:       rc.DB,
			TTL:      rc.TTL,
		})
		if err != nil {
			logger.Warn("status cache disabled", "addr", rc.Addr, "error", err)
		} else {
			statusCache = r
		}
	}

	a := &App{
		Config:  opts.Config,
		Logger:  logger,
		Store:   st,
		Catalog: catalog,
		Cache:   statusCache,
		Tracker: tracker.NewService(tracker.Deps{
			Catalog:      catalog,
			Progress:     st.ProgressRepo(),
			Certificates: st.CertificateRepo(),
			Events:       st.EventRepo(),
			Cache:        statusCache,
			Logger:       logger,
		}),
	}
	if opts.Provider != nil {
		a.providerOnce.Do(func() { a.provider = opts.Provider })
	}
	return a, nil
}

// Provider returns the LLM provider, building it on first use.
func (a *App) Provider(ctx context.Context) (llm.Provider, error) {
	a.providerOnce.Do(func() {
		cfg := a.Config.LLM
		if cfg.Validate() != nil {
			if discovered, ok := llm.DiscoverConfig(); ok {
				discovered.Retry, discovered.Timeout = cfg.Retry, cfg.Timeout
				cfg = discovered
			}
		}
		a.provider, a.providerErr = llm.NewProvider(ctx, cfg, a.Store.EventRepo(), a.Logger)
	})
	return a.provider, a.providerErr
}

// Tutor returns a tutor backed by the configured provider.
func (a *App) Tutor(ctx context.Context) (*tutor.Service, error) {
	p, err := a.Provider(ctx)
	if err != nil {
		return nil, fmt.Errorf("LLM provider not configured: %w", err)
	}
	cfg := tutor.DefaultConfig()
	if a.Config.LLM.Timeout > 0 {
		cfg.Timeout = a.Config.LLM.Timeout
	}
	return tutor.NewService(p, a.Catalog, cfg, a.Logger), nil
}

// Close releases the cache connection and the database.
func (a *App) Close() error {
	cacheErr := a.Cache.Close()
	if err := a.Store.Close(); err != nil {
		return err
	}
	return cacheErr
}
