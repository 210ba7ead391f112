package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTMDB struct {
	srv      *httptest.Server
	requests atomic.Int32
	failPath string
}

func results(prefix string, n int, series bool) []map[string]any {
	out := make([]map[string]any, n)
	for i := range out {
		item := map[string]any{
			"poster_path":   fmt.Sprintf("/%s-%d-p.jpg", prefix, i),
			"backdrop_path": fmt.Sprintf("/%s-%d-b.jpg", prefix, i),
			"vote_average":  7.345,
			"overview":      "Overview " + prefix,
		}
		if series {
			item["name"] = fmt.Sprintf("%s %d", prefix, i)
			item["first_air_date"] = "2021-03-04"
		} else {
			item["title"] = fmt.Sprintf("%s %d", prefix, i)
			item["release_date"] = "2023-07-19"
		}
		out[i] = item
	}
	return out
}

func newFakeTMDB(t *testing.T) *fakeTMDB {
	t.Helper()
	f := &fakeTMDB{}

	lists := map[string][]map[string]any{
		"/trending/movie/week": results("trend", 7, false),
		"/movie/popular":       results("pop", 25, false),
		"/trending/tv/week":    results("tv", 3, true),
		"/movie/top_rated":     results("top", 2, false),
		"/movie/upcoming":      {},
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			f.requests.Add(1)
			if req.URL.Query().Get("api_key") != "k-test" {
				http.Error(w, `{"status_message":"Invalid API key"}`, http.StatusUnauthorized)
				return
			}
			if req.URL.Query().Get("language") != "pt-BR" {
				http.Error(w, "bad language", http.StatusBadRequest)
				return
			}
			if req.URL.Path == f.failPath {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, req)
		})
	})
	for path, list := range lists {
		r.Get(path, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"page": 1, "results": list})
		})
	}

	f.srv = httptest.NewServer(r)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeTMDB) client(key string) *Client {
	return NewClient(ClientOptions{
		BaseURL:    f.srv.URL + "/",
		APIKey:     key,
		HTTPClient: f.srv.Client(),
	})
}

func TestFetch_MapsAllEndpoints(t *testing.T) {
	f := newFakeTMDB(t)

	cat, err := f.client("k-test").Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, SourceTMDB, cat.Source)
	assert.Equal(t, AttributionTMDB, cat.Attribution)
	assert.EqualValues(t, 5, f.requests.Load())

	require.Len(t, cat.Hero, 5, "hero keeps the first five trending movies")
	assert.Equal(t, Media{
		Title:    "trend 0",
		Year:     "2023",
		Rating:   "7.3",
		Poster:   DefaultPosterBase + "/trend-0-p.jpg",
		Backdrop: DefaultBackdropBase + "/trend-0-b.jpg",
		Overview: "Overview trend",
	}, cat.Hero[0])

	ids := make([]string, 0, len(cat.Sections))
	for _, s := range cat.Sections {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"popular", "series", "toprated", "upcoming"}, ids)

	popular, ok := cat.Section("popular")
	require.True(t, ok)
	assert.Len(t, popular.Items, 20)

	series, ok := cat.Section("series")
	require.True(t, ok)
	require.Len(t, series.Items, 3)
	assert.Equal(t, "tv 2", series.Items[2].Title)
	assert.Equal(t, "2021", series.Items[2].Year)

	upcoming, ok := cat.Section("upcoming")
	require.True(t, ok)
	assert.Empty(t, upcoming.Items)

	_, ok = cat.Section("nope")
	assert.False(t, ok)
}

func TestFetch_MissingKey(t *testing.T) {
	f := newFakeTMDB(t)

	_, err := f.client("  ").Fetch(context.Background())
	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Zero(t, f.requests.Load())
}

func TestFetch_StatusError(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		failPath string
	}{
		{name: "rejected key", key: "wrong-key"},
		{name: "one endpoint fails", key: "k-test", failPath: "/movie/top_rated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeTMDB(t)
			f.failPath = tt.failPath

			_, err := f.client(tt.key).Fetch(context.Background())
			require.ErrorIs(t, err, ErrStatus)
			assert.NotContains(t, err.Error(), tt.key)
		})
	}
}

func TestFetch_CanceledContext(t *testing.T) {
	f := newFakeTMDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.client("k-test").Fetch(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, err.Error(), "k-test")
}

func TestFetch_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(ClientOptions{BaseURL: srv.URL, APIKey: "k", HTTPClient: srv.Client()})
	_, err := c.Fetch(context.Background())
	assert.ErrorContains(t, err, "decode")
}

func TestMapMedia(t *testing.T) {
	c := NewClient(ClientOptions{PosterBase: "P", BackdropBase: "B"})
	rating := func(v float64) *float64 { return &v }

	tests := []struct {
		name string
		in   rawMedia
		want Media
	}{
		{
			name: "movie",
			in:   rawMedia{Title: "Duna", ReleaseDate: "2021-10-21", VoteAverage: rating(8), PosterPath: "/p.jpg", BackdropPath: "/b.jpg"},
			want: Media{Title: "Duna", Year: "2021", Rating: "8.0", Poster: "P/p.jpg", Backdrop: "B/b.jpg"},
		},
		{
			name: "series uses name and first air date",
			in:   rawMedia{Name: "Dark", FirstAirDate: "2017-12-01"},
			want: Media{Title: "Dark", Year: "2017"},
		},
		{
			name: "placeholder title",
			in:   rawMedia{},
			want: Media{Title: "Título"},
		},
		{
			name: "unparseable date has no year",
			in:   rawMedia{Title: "X", ReleaseDate: "soon"},
			want: Media{Title: "X"},
		},
		{
			name: "zero rating is still a rating",
			in:   rawMedia{Title: "X", VoteAverage: rating(0)},
			want: Media{Title: "X", Rating: "0.0"},
		},
		{
			name: "markup is stripped",
			in:   rawMedia{Title: "<i>Tom &amp; Jerry</i>", Overview: `<script>alert(1)</script>Cat <b>and</b> mouse`},
			want: Media{Title: "Tom & Jerry", Overview: "Cat and mouse"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.mapMedia(tt.in))
		})
	}
}
