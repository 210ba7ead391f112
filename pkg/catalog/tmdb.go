package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrMissingAPIKey is returned by Fetch when no access key is configured.
	ErrMissingAPIKey = errors.New("catalog: TMDB API key missing")
	// ErrStatus wraps non-2xx TMDB responses.
	ErrStatus = errors.New("catalog: unexpected TMDB status")
)

// Defaults for ClientOptions.
const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultPosterBase   = "https://image.tmdb.org/t/p/w500"
	DefaultBackdropBase = "https://image.tmdb.org/t/p/original"
	DefaultLanguage     = "pt-BR"
	DefaultHeroCount    = 5
	DefaultSectionSize  = 20
	placeholderTitle    = "Título"
)

// Fetcher loads a remote catalog.
type Fetcher interface {
	Fetch(ctx context.Context) (Catalog, error)
}

// ClientOptions configures a Client. Zero fields take defaults.
type ClientOptions struct {
	BaseURL      string
	PosterBase   string
	BackdropBase string
	Language     string
	APIKey       string //nolint:gosec // configuration field, not a hardcoded secret
	HeroCount    int
	SectionSize  int
	HTTPClient   *http.Client
	Timeout      time.Duration
}

// Client reads the TMDB v3 API.
type Client struct {
	opts     ClientOptions
	http     *http.Client
	sanitize *bluemonday.Policy
}

var _ Fetcher = (*Client)(nil)

// NewClient creates a Client.
func NewClient(opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.PosterBase == "" {
		opts.PosterBase = DefaultPosterBase
	}
	if opts.BackdropBase == "" {
		opts.BackdropBase = DefaultBackdropBase
	}
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}
	if opts.HeroCount <= 0 {
		opts.HeroCount = DefaultHeroCount
	}
	if opts.SectionSize <= 0 {
		opts.SectionSize = DefaultSectionSize
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{opts: opts, http: hc, sanitize: bluemonday.StrictPolicy()}
}

type listResponse struct {
	Results []rawMedia `json:"results"`
}

type rawMedia struct {
	Title        string   `json:"title"`
	Name         string   `json:"name"`
	ReleaseDate  string   `json:"release_date"`
	FirstAirDate string   `json:"first_air_date"`
	VoteAverage  *float64 `json:"vote_average"`
	PosterPath   string   `json:"poster_path"`
	BackdropPath string   `json:"backdrop_path"`
	Overview     string   `json:"overview"`
}

type endpoint struct {
	path    string
	id      string // Empty for the hero list.
	title   string
	results []rawMedia
}

// Fetch loads the hero list and the four sections in parallel. Any failing
// request fails the whole fetch.
func (c *Client) Fetch(ctx context.Context) (Catalog, error) {
	if strings.TrimSpace(c.opts.APIKey) == "" {
		return Catalog{}, ErrMissingAPIKey
	}

	endpoints := []*endpoint{
		{path: "trending/movie/week"},
		{path: "movie/popular", id: "popular", title: "Filmes Populares"},
		{path: "trending/tv/week", id: "series", title: "Séries em Alta"},
		{path: "movie/top_rated", id: "toprated", title: "Mais Bem Avaliados"},
		{path: "movie/upcoming", id: "upcoming", title: "Em Breve"},
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, ep := range endpoints {
		g.Go(func() error {
			results, err := c.list(ctx, ep.path)
			if err != nil {
				return err
			}
			ep.results = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Catalog{}, err
	}

	cat := Catalog{Source: SourceTMDB, Attribution: AttributionTMDB}
	for _, ep := range endpoints {
		if ep.id == "" {
			cat.Hero = c.mapAll(ep.results, c.opts.HeroCount)
			continue
		}
		cat.Sections = append(cat.Sections, Section{
			ID:    ep.id,
			Title: ep.title,
			Items: c.mapAll(ep.results, c.opts.SectionSize),
		})
	}

	return cat, nil
}

func (c *Client) list(ctx context.Context, path string) ([]rawMedia, error) {
	q := url.Values{}
	q.Set("api_key", c.opts.APIKey)
	q.Set("language", c.opts.Language)
	u := c.opts.BaseURL + "/" + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: build request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// Strip the URL so the key never ends up in a log line.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog: %s: %w: %d", path, ErrStatus, resp.StatusCode)
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("catalog: %s: decode: %w", path, err)
	}

	return body.Results, nil
}

func (c *Client) mapAll(raw []rawMedia, limit int) []Media {
	if len(raw) > limit {
		raw = raw[:limit]
	}
	out := make([]Media, 0, len(raw))
	for _, r := range raw {
		out = append(out, c.mapMedia(r))
	}
	return out
}

func (c *Client) mapMedia(r rawMedia) Media {
	title := c.clean(r.Title)
	if title == "" {
		title = c.clean(r.Name)
	}
	if title == "" {
		title = placeholderTitle
	}

	date := r.ReleaseDate
	if date == "" {
		date = r.FirstAirDate
	}

	m := Media{
		Title:    title,
		Year:     year(date),
		Overview: c.clean(r.Overview),
	}
	if r.VoteAverage != nil {
		m.Rating = fmt.Sprintf("%.1f", *r.VoteAverage)
	}
	if r.PosterPath != "" {
		m.Poster = c.opts.PosterBase + r.PosterPath
	}
	if r.BackdropPath != "" {
		m.Backdrop = c.opts.BackdropBase + r.BackdropPath
	}
	return m
}

// clean strips markup from remote text. The policy escapes entities, which
// the terminal would print literally, so they are decoded again.
func (c *Client) clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(c.sanitize.Sanitize(s)))
}

func year(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return ""
	}
	return fmt.Sprint(t.Year())
}
