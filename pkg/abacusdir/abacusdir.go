// Package abacusdir encapsulates path knowledge for the .abacus/ directory:
// the config file and the gitignored local/ directory that holds logs.
package abacusdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const gitignoreContent = "local/\n"

// ErrExists is returned by BootstrapWithConfig when a config file is
// already present.
var ErrExists = errors.New("config already exists")

// Dir is a value object that resolves paths within a .abacus/ directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is converted to an
// absolute path. No I/O is performed.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Root returns the absolute path to the .abacus/ directory.
func (d Dir) Root() string { return d.root }

// ConfigPath returns the path to the main config file.
func (d Dir) ConfigPath() string { return filepath.Join(d.root, "config.yaml") }

// LocalDir returns the path to the local (gitignored) runtime directory.
func (d Dir) LocalDir() string { return filepath.Join(d.root, "local") }

// LogPath returns the default log file of the terminal UI.
func (d Dir) LogPath() string { return filepath.Join(d.root, "local", "abacus.log") }

// GitignorePath returns the path to the .gitignore file inside .abacus/.
func (d Dir) GitignorePath() string { return filepath.Join(d.root, ".gitignore") }

// Exists reports whether the .abacus/ root directory exists on disk.
func (d Dir) Exists() bool {
	info, err := os.Stat(d.root)

	return err == nil && info.IsDir()
}

// EnsureStructure creates the local/ directory and .gitignore file if they
// are missing. It is idempotent.
func EnsureStructure(d Dir) error {
	if err := os.MkdirAll(d.LocalDir(), 0o750); err != nil {
		return fmt.Errorf("abacusdir: create local dir: %w", err)
	}

	if _, err := os.Stat(d.GitignorePath()); err == nil {
		return nil // already exists
	}

	if err := os.WriteFile(d.GitignorePath(), []byte(gitignoreContent), 0o600); err != nil {
		return fmt.Errorf("abacusdir: gitignore: %w", err)
	}

	return nil
}

// BootstrapWithConfig creates the directory layout and writes configYAML as
// the config file. An existing config is never overwritten.
func BootstrapWithConfig(d Dir, configYAML []byte) error {
	if _, err := os.Stat(d.ConfigPath()); err == nil {
		return fmt.Errorf("abacusdir: %s: %w", d.ConfigPath(), ErrExists)
	}

	if err := EnsureStructure(d); err != nil {
		return err
	}

	if err := os.WriteFile(d.ConfigPath(), configYAML, 0o600); err != nil {
		return fmt.Errorf("abacusdir: write config: %w", err)
	}

	return nil
}

// ResolveConfigPath returns the config file to use. Priority:
// 1. explicit (non-empty)
// 2. <dir>/config.yaml (if it exists)
// 3. abacus.yaml in the working directory
func ResolveConfigPath(explicit string, d Dir) string {
	if explicit != "" {
		return explicit
	}

	if _, err := os.Stat(d.ConfigPath()); err == nil {
		return d.ConfigPath()
	}

	return "abacus.yaml"
}
