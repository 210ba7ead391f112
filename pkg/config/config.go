// Package config loads the cinifilme YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/germanamz/cinifilme/pkg/announce"
	"github.com/germanamz/cinifilme/pkg/carousel"
	"github.com/germanamz/cinifilme/pkg/gesture"
	"github.com/germanamz/cinifilme/pkg/hero"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Catalog  CatalogConfig  `yaml:"catalog"`
	Carousel CarouselConfig `yaml:"carousel"`
	Hero     HeroConfig     `yaml:"hero"`
	Announce AnnounceConfig `yaml:"announce"`
	Log      LogConfig      `yaml:"log"`
}

// CatalogConfig configures the remote catalog and the shape of the page.
type CatalogConfig struct {
	BaseURL      string        `yaml:"base_url"`
	PosterBase   string        `yaml:"poster_base"`
	BackdropBase string        `yaml:"backdrop_base"`
	Language     string        `yaml:"language"`
	APIKey       string        `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
	Timeout      time.Duration `yaml:"timeout"`
	HeroCount    int           `yaml:"hero_count"`
	SectionSize  int           `yaml:"section_size"`
}

// CarouselConfig mirrors carousel.Options.
type CarouselConfig struct {
	PageSize            int           `yaml:"page_size"`
	CardMarginExtra     float64       `yaml:"card_margin_extra"`
	PaddingCompensation float64       `yaml:"padding_compensation"`
	FallbackItemWidth   float64       `yaml:"fallback_item_width"`
	AutoplayInterval    time.Duration `yaml:"autoplay_interval"`
	SwipeThreshold      float64       `yaml:"swipe_threshold"`
	SelectPress         time.Duration `yaml:"select_press"`
	ResizeDebounce      time.Duration `yaml:"resize_debounce"`
	PauseMode           string        `yaml:"pause_mode"` // "poll" or "suspend".
}

// HeroConfig mirrors hero.Options.
type HeroConfig struct {
	Interval       time.Duration `yaml:"interval"`
	SwipeThreshold float64       `yaml:"swipe_threshold"`
}

// AnnounceConfig configures accessibility announcements.
type AnnounceConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty means <dir>/local/cinifilme.log.
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Catalog: CatalogConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			PosterBase:   "https://image.tmdb.org/t/p/w500",
			BackdropBase: "https://image.tmdb.org/t/p/original",
			Language:     "pt-BR",
			Timeout:      10 * time.Second,
			HeroCount:    5,
			SectionSize:  20,
		},
		Carousel: CarouselConfig{
			PageSize:            carousel.DefaultPageSize,
			CardMarginExtra:     carousel.DefaultCardMarginExtra,
			PaddingCompensation: carousel.DefaultPaddingCompensation,
			FallbackItemWidth:   carousel.DefaultFallbackItemWidth,
			AutoplayInterval:    carousel.DefaultAutoplayInterval,
			SwipeThreshold:      gesture.DefaultThreshold,
			SelectPress:         carousel.DefaultSelectPress,
			ResizeDebounce:      carousel.DefaultResizeDebounce,
			PauseMode:           carousel.PausePoll.String(),
		},
		Hero: HeroConfig{
			Interval:       hero.DefaultInterval,
			SwipeThreshold: gesture.DefaultThreshold,
		},
		Announce: AnnounceConfig{Timeout: announce.DefaultTimeout},
		Log:      LogConfig{Level: "info"},
	}
}

// LoadConfig reads a YAML file on top of Default.
// Environment variables referenced as ${VAR} or $VAR in the YAML are expanded
// before parsing, so the access key can live in the environment (e.g. loaded
// from a .env file).
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, nil
}

// Find returns the first candidate path that exists.
func Find(candidates ...string) (string, bool) {
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}

	return "", false
}

// Resolve loads explicit when set. Otherwise it loads the first existing
// candidate, falling back to Default when none exists.
func Resolve(explicit string, candidates ...string) (Config, string, error) {
	if explicit != "" {
		cfg, err := LoadConfig(explicit)
		return cfg, explicit, err
	}

	path, ok := Find(candidates...)
	if !ok {
		return Default(), "", nil
	}

	cfg, err := LoadConfig(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return Default(), "", nil
	}

	return cfg, path, err
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("config: catalog: base_url is required")
	}
	if _, err := language.Parse(c.Catalog.Language); err != nil {
		return fmt.Errorf("config: catalog: language %q: %w", c.Catalog.Language, err)
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("config: catalog: timeout must be positive")
	}
	if c.Catalog.HeroCount <= 0 || c.Catalog.SectionSize <= 0 {
		return fmt.Errorf("config: catalog: hero_count and section_size must be positive")
	}

	if c.Carousel.PageSize <= 0 {
		return fmt.Errorf("config: carousel: page_size must be positive")
	}
	if c.Carousel.AutoplayInterval <= 0 {
		return fmt.Errorf("config: carousel: autoplay_interval must be positive")
	}
	if c.Carousel.CardMarginExtra < 0 || c.Carousel.PaddingCompensation < 0 {
		return fmt.Errorf("config: carousel: card_margin_extra and padding_compensation must not be negative")
	}
	if c.Carousel.FallbackItemWidth < 0 {
		return fmt.Errorf("config: carousel: fallback_item_width must not be negative")
	}
	if c.Carousel.SwipeThreshold < 0 {
		return fmt.Errorf("config: carousel: swipe_threshold must not be negative")
	}
	if c.Carousel.SelectPress < 0 || c.Carousel.ResizeDebounce < 0 {
		return fmt.Errorf("config: carousel: select_press and resize_debounce must not be negative")
	}
	if _, err := carousel.ParsePauseMode(c.Carousel.PauseMode); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if c.Hero.Interval <= 0 {
		return fmt.Errorf("config: hero: interval must be positive")
	}
	if c.Hero.SwipeThreshold < 0 {
		return fmt.Errorf("config: hero: swipe_threshold must not be negative")
	}
	if c.Announce.Timeout < 0 {
		return fmt.Errorf("config: announce: timeout must not be negative")
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log: %w", err)
	}

	return nil
}

// CarouselOptions converts the carousel section. Call Validate first; an
// unknown pause mode falls back to poll.
func (c Config) CarouselOptions() carousel.Options {
	mode, _ := carousel.ParsePauseMode(c.Carousel.PauseMode)
	return carousel.Options{
		PageSize:            c.Carousel.PageSize,
		CardMarginExtra:     c.Carousel.CardMarginExtra,
		PaddingCompensation: c.Carousel.PaddingCompensation,
		FallbackItemWidth:   c.Carousel.FallbackItemWidth,
		AutoplayInterval:    c.Carousel.AutoplayInterval,
		SwipeThreshold:      c.Carousel.SwipeThreshold,
		SelectPress:         c.Carousel.SelectPress,
		ResizeDebounce:      c.Carousel.ResizeDebounce,
		PauseMode:           mode,
	}
}

// HeroOptions converts the hero section.
func (c Config) HeroOptions() hero.Options {
	return hero.Options{Interval: c.Hero.Interval, SwipeThreshold: c.Hero.SwipeThreshold}
}

// LanguageTag returns the canonical catalog language, e.g. "pt-BR".
func (c Config) LanguageTag() string {
	tag, err := language.Parse(c.Catalog.Language)
	if err != nil {
		return c.Catalog.Language
	}
	return tag.String()
}
