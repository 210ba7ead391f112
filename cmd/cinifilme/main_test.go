package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/germanamz/cinifilme/pkg/catalog"
	"github.com/germanamz/cinifilme/pkg/promo"
)

func TestRootCmd_Flags(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"config", "dir", "env", "tmdb-api-key", "verbose"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "flag %q", name)
	}
	assert.Equal(t, ".cinifilme", root.PersistentFlags().Lookup("dir").DefValue)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "settings")
	assert.Contains(t, names, "catalog")
}

// execute runs the root command with args against a temporary directory.
func execute(t *testing.T, args ...string) (string, string) {
	t.Helper()
	t.Setenv(apiKeyEnv, "")
	tmp := t.TempDir()
	dir := filepath.Join(tmp, ".cinifilme")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--dir", dir, "--env", filepath.Join(tmp, ".env")}, args...))
	require.NoError(t, root.Execute())
	return out.String(), dir
}

func TestCatalogCmd_FallsBackWithoutKey(t *testing.T) {
	out, dir := execute(t, "catalog")

	var cat catalog.Catalog
	require.NoError(t, yaml.Unmarshal([]byte(out), &cat))
	assert.Equal(t, catalog.SourceLocal, cat.Source)
	assert.Equal(t, catalog.Local().Sections, cat.Sections)

	_, err := os.Stat(filepath.Join(dir, "local"))
	assert.NoError(t, err, "the local directory is created")
	_, err = os.Stat(filepath.Join(dir, "local", "cinifilme.log"))
	assert.NoError(t, err, "logs go to the local directory")
}

func TestCatalogCmd_Promo(t *testing.T) {
	out, _ := execute(t, "catalog", "--promo")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, promo.Strip(catalog.Local(), promo.DefaultMax), lines)
}

func TestCatalogCmd_BadConfig(t *testing.T) {
	t.Setenv(apiKeyEnv, "")
	tmp := t.TempDir()
	cfg := filepath.Join(tmp, "cinifilme.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("carousel:\n  pause_mode: sometimes\n"), 0o600))

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--dir", filepath.Join(tmp, ".cinifilme"), "--config", cfg, "catalog"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pause mode")
}

func TestOpenSession_FlagKeyIsSaved(t *testing.T) {
	t.Setenv(apiKeyEnv, "")
	tmp := t.TempDir()
	flags := &rootFlags{dir: filepath.Join(tmp, ".cinifilme"), apiKey: "flag-key"}

	s, err := openSession(flags)
	require.NoError(t, err)
	defer s.close()
	assert.Equal(t, "flag-key", s.apiKey)

	flags.apiKey = ""
	again, err := openSession(flags)
	require.NoError(t, err)
	defer again.close()
	assert.Equal(t, "flag-key", again.apiKey, "the flag key persists across runs")
}

func TestOpenSession_EnvKeyFallback(t *testing.T) {
	t.Setenv(apiKeyEnv, "env-key")
	s, err := openSession(&rootFlags{dir: filepath.Join(t.TempDir(), ".cinifilme")})
	require.NoError(t, err)
	defer s.close()
	assert.Equal(t, "env-key", s.apiKey)

	opts := s.modelOptions()
	assert.Equal(t, s.cfg.Carousel.AutoplayInterval, opts.Carousel.AutoplayInterval)
	assert.Equal(t, s.cfg.Hero.Interval, opts.Hero.Interval)
}

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCatalog(&buf, catalog.Local(), false))
	assert.Contains(t, buf.String(), "source: local")
	assert.Contains(t, buf.String(), "Oppenheimer")
}
