// Package install wires manifest regeneration into a git repository. It
// creates the image directory and installs a pre-commit hook that runs
// `gallery update` and stages the manifest, so the published manifest always
// matches the committed images.
package install

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	markerStart = "# gallery-manifest-start"
	markerEnd   = "# gallery-manifest-end"
)

// Config holds the settings for the install command.
type Config struct {
	ImageDir string // image directory relative to Dir, e.g. "images"
	Manifest string // manifest path relative to Dir, e.g. "images.json"
	Command  string // generator executable, e.g. "gallery"
	Dir      string // git repository root (auto-detected if empty)
}

// Run executes the full install sequence. Running it again is a no-op.
func Run(cfg Config) error {
	if cfg.Dir == "" {
		dir, err := gitRoot()
		if err != nil {
			return fmt.Errorf("not a git repository (run from inside a repo): %w", err)
		}
		cfg.Dir = dir
	}
	if cfg.Command == "" {
		cfg.Command = "gallery"
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"create image directory", func() error { return ensureImageDir(cfg.Dir, cfg.ImageDir) }},
		{"install git pre-commit hook", func() error { return installPreCommitHook(cfg.Dir, cfg) }},
	}

	for _, s := range steps {
		if err := s.fn(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}

	return nil
}

// gitRoot returns the top-level directory of the current git repo.
func gitRoot() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ensureImageDir creates the image directory with a .gitkeep so it survives
// an empty checkout.
func ensureImageDir(repoDir, imageDir string) error {
	dir := filepath.Join(repoDir, imageDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	keep := filepath.Join(dir, ".gitkeep")
	if _, err := os.Stat(keep); err == nil {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return nil
	}
	return os.WriteFile(keep, nil, 0o644)
}

// installPreCommitHook installs or appends to the pre-commit hook. Uses
// git rev-parse --git-common-dir to find the correct hooks directory, which
// works in both normal repos and worktrees.
func installPreCommitHook(repoDir string, cfg Config) error {
	gitDir, err := gitOutput(repoDir, "rev-parse", "--git-common-dir")
	if err != nil {
		return fmt.Errorf("find git dir: %w", err)
	}
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(repoDir, gitDir)
	}
	hookPath := filepath.Join(gitDir, "hooks", "pre-commit")

	if err := os.MkdirAll(filepath.Dir(hookPath), 0o755); err != nil {
		return err
	}

	data, err := os.ReadFile(hookPath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if strings.Contains(string(data), markerStart) {
		return nil // already installed
	}

	f, err := os.OpenFile(hookPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o755)
	if err != nil {
		return err
	}
	defer f.Close()

	// Add shebang if file is new/empty
	if len(data) == 0 {
		if _, err := f.WriteString("#!/bin/sh\n"); err != nil {
			return err
		}
	} else if data[len(data)-1] != '\n' {
		if _, err := f.WriteString("\n"); err != nil {
			return err
		}
	}

	_, err = f.WriteString(buildPreCommitHookScript(cfg))
	return err
}

// gitOutput runs a git command and returns its stdout.
func gitOutput(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// buildPreCommitHookScript regenerates the manifest only when something under
// the image directory is staged, then stages the rewritten manifest.
func buildPreCommitHookScript(cfg Config) string {
	return fmt.Sprintf(`
%s
# Regenerate the gallery manifest when images change.
# Installed by gallery install.
REPO_ROOT="$(git rev-parse --show-toplevel)"
if git diff --cached --name-only -- %s | grep -q .; then
  (cd "$REPO_ROOT" && %s update --dir %s --out %s) || exit 1
  git -C "$REPO_ROOT" add -- %s
fi
%s
`, markerStart,
		shellQuote(cfg.ImageDir),
		shellQuote(cfg.Command), shellQuote(cfg.ImageDir), shellQuote(cfg.Manifest),
		shellQuote(cfg.Manifest),
		markerEnd)
}

// shellQuote wraps s in single quotes for POSIX sh, so no expansion happens.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
