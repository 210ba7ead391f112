package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Attribution lines shown under the page.
const (
	AttributionTMDB  = "Imagens e dados por TMDB (https://www.themoviedb.org/)"
	AttributionLocal = "Imagens fornecidas por TMDB (https://www.themoviedb.org/)"
)

//go:embed fallback.yaml
var fallbackYAML []byte

// Local returns the embedded fallback dataset.
func Local() Catalog {
	cat, err := parseLocal(fallbackYAML)
	if err != nil {
		// The dataset is compiled in; a parse failure is a build defect.
		panic(err)
	}
	return cat
}

func parseLocal(data []byte) (Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return Catalog{}, fmt.Errorf("catalog: parse fallback: %w", err)
	}
	cat.Source = SourceLocal
	cat.Attribution = AttributionLocal
	return cat, nil
}
