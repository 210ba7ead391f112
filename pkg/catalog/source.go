package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Resolve tries remote once and falls back to the local dataset on any error.
// A nil remote always yields the local dataset.
func Resolve(ctx context.Context, remote Fetcher, log *zap.Logger) Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	if remote == nil {
		return Local()
	}

	cat, err := remote.Fetch(ctx)
	switch {
	case errors.Is(err, ErrMissingAPIKey):
		log.Info("no TMDB key configured, using local catalog")
		return Local()
	case err != nil:
		log.Warn("TMDB fetch failed, using local catalog", zap.Error(err))
		return Local()
	}

	log.Info("catalog loaded from TMDB",
		zap.Int("hero", len(cat.Hero)),
		zap.Int("sections", len(cat.Sections)))
	return cat
}
