package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/germanamz/cinifilme/pkg/appdir"
	"github.com/germanamz/cinifilme/pkg/catalog"
	"github.com/germanamz/cinifilme/pkg/config"
	"github.com/germanamz/cinifilme/pkg/logging"
	"github.com/germanamz/cinifilme/pkg/settings"
)

// apiKeyEnv is read when neither the flag, the store nor the config file
// carries a key.
const apiKeyEnv = "TMDB_API_KEY"

// session is everything a command needs after startup.
type session struct {
	dir    appdir.Dir
	cfg    config.Config
	path   string
	log    *zap.Logger
	store  *settings.Store
	apiKey string
}

// openSession resolves the directory, the configuration, the logger and the
// access key, in that order.
func openSession(flags *rootFlags) (*session, error) {
	d := appdir.New(flags.dir)

	// Config resolution: explicit flag → .cinifilme/config.yaml → cinifilme.yaml.
	cfg, path, err := config.Resolve(flags.config, d.ConfigPath(), "cinifilme.yaml")
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := d.EnsureLocal(); err != nil {
		return nil, err
	}

	logFile := cfg.Log.File
	if logFile == "" {
		logFile = d.LogPath()
	}
	log, err := logging.New(logging.Options{Level: cfg.Log.Level, File: logFile, Verbose: flags.verbose})
	if err != nil {
		return nil, err
	}

	store, err := settings.New(d.SettingsPath())
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	fallback := cfg.Catalog.APIKey
	if fallback == "" {
		fallback = os.Getenv(apiKeyEnv)
	}
	key, err := settings.ResolveAPIKey(flags.apiKey, store, fallback)
	if err != nil {
		log.Warn("could not save API key", zap.Error(err))
	}

	log.Info("session opened",
		zap.String("dir", d.Root()),
		zap.String("config", path),
		zap.Bool("api_key", key != ""))

	return &session{dir: d, cfg: cfg, path: path, log: log, store: store, apiKey: key}, nil
}

func (s *session) close() {
	_ = s.log.Sync()
}

// catalogClient builds the TMDB client from the configuration.
func (s *session) catalogClient() *catalog.Client {
	c := s.cfg.Catalog
	return catalog.NewClient(catalog.ClientOptions{
		BaseURL:      c.BaseURL,
		PosterBase:   c.PosterBase,
		BackdropBase: c.BackdropBase,
		Language:     s.cfg.LanguageTag(),
		APIKey:       s.apiKey,
		HeroCount:    c.HeroCount,
		SectionSize:  c.SectionSize,
		Timeout:      c.Timeout,
	})
}

// loadCatalog picks the catalog once: TMDB when it answers, the built-in
// dataset otherwise.
func (s *session) loadCatalog(ctx context.Context) catalog.Catalog {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Catalog.Timeout)
	defer cancel()
	return catalog.Resolve(ctx, s.catalogClient(), s.log)
}

func (s *session) modelOptions() modelOptions {
	return modelOptions{
		Carousel:        s.cfg.CarouselOptions(),
		Hero:            s.cfg.HeroOptions(),
		AnnounceTimeout: s.cfg.Announce.Timeout,
	}
}

func run(ctx context.Context, flags *rootFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	s, err := openSession(flags)
	if err != nil {
		return err
	}
	defer s.close()

	cat := s.loadCatalog(ctx)
	model := newAppModel(cat, s.modelOptions(), s.log)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if m, ok := final.(appModel); ok {
		m.shutdown()
	}
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
