// Package appdir resolves paths within the .cinifilme/ project directory: the
// optional config file and the gitignored local/ runtime state (settings and
// logs).
package appdir

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultName is the directory created in the working directory.
const DefaultName = ".cinifilme"

const gitignoreContent = "local/\n"

// Dir is a value object that resolves paths within a .cinifilme/ directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at root, made absolute. No I/O is performed.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Root returns the absolute directory path.
func (d Dir) Root() string { return d.root }

// ConfigPath returns the path to the config file.
func (d Dir) ConfigPath() string { return filepath.Join(d.root, "config.yaml") }

// LocalDir returns the path to the local (gitignored) runtime state directory.
func (d Dir) LocalDir() string { return filepath.Join(d.root, "local") }

// SettingsPath returns the path to the persisted user settings.
func (d Dir) SettingsPath() string { return filepath.Join(d.root, "local", "settings.json") }

// LogPath returns the path to the log file.
func (d Dir) LogPath() string { return filepath.Join(d.root, "local", "cinifilme.log") }

// GitignorePath returns the path to the .gitignore file.
func (d Dir) GitignorePath() string { return filepath.Join(d.root, ".gitignore") }

// Exists reports whether the root directory exists on disk.
func (d Dir) Exists() bool {
	info, err := os.Stat(d.root)

	return err == nil && info.IsDir()
}

// EnsureLocal creates local/ and the .gitignore that keeps it out of version
// control. It is idempotent.
func (d Dir) EnsureLocal() error {
	if err := os.MkdirAll(d.LocalDir(), 0o750); err != nil {
		return fmt.Errorf("appdir: create local dir: %w", err)
	}

	if _, err := os.Stat(d.GitignorePath()); err == nil {
		return nil
	}

	if err := os.WriteFile(d.GitignorePath(), []byte(gitignoreContent), 0o600); err != nil {
		return fmt.Errorf("appdir: gitignore: %w", err)
	}

	return nil
}
