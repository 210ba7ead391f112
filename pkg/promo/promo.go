// Package promo builds the image strip behind the promotional banner.
package promo

import "github.com/germanamz/cinifilme/pkg/catalog"

// DefaultMax caps the number of distinct images.
const DefaultMax = 12

// Sources collects image sources from the hero (backdrops first) and from every
// carousel item (backdrop, else poster), keeping first occurrences only.
func Sources(cat catalog.Catalog) []string {
	var ordered []string
	for _, h := range cat.Hero {
		ordered = append(ordered, h.HeroImage())
	}
	for _, s := range cat.Sections {
		for _, it := range s.Items {
			ordered = append(ordered, it.HeroImage())
		}
	}

	seen := make(map[string]struct{}, len(ordered))
	unique := ordered[:0]
	for _, src := range ordered {
		if src == "" {
			continue
		}
		if _, dup := seen[src]; dup {
			continue
		}
		seen[src] = struct{}{}
		unique = append(unique, src)
	}
	return unique
}

// Strip returns at most limit distinct sources (DefaultMax when limit <= 0),
// emitted twice so the strip can loop without a visible seam.
func Strip(cat catalog.Catalog, limit int) []string {
	if limit <= 0 {
		limit = DefaultMax
	}
	chosen := Sources(cat)
	if len(chosen) > limit {
		chosen = chosen[:limit]
	}
	out := make([]string, 0, 2*len(chosen))
	out = append(out, chosen...)
	return append(out, chosen...)
}
