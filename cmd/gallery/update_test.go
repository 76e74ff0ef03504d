package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/sonnes/gallery/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUpdate(t *testing.T) {
	site := t.TempDir()
	dir := filepath.Join(site, "images")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range []string{"b.png", "a.png", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	out := filepath.Join(site, "images.json")
	now := time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)

	var stdout, stderr bytes.Buffer
	require.NoError(t, runUpdate(&stdout, &stderr, dir, out, now))

	m, err := manifest.ReadFile(out)
	require.NoError(t, err)
	require.Len(t, m.Images, 2)
	assert.Equal(t, "images/a.png", m.Images[0].Src)
	assert.Equal(t, "images/b.png", m.Images[1].Src)
	assert.Equal(t, "Image: a", m.Images[0].Alt)
	assert.Equal(t, now, m.LastUpdated)

	printed := ansi.Strip(stdout.String())
	assert.Contains(t, printed, "Updated "+out+" (previously 0 images)")
	assert.Contains(t, printed, "Found 2 images:")
	assert.Contains(t, printed, "- images/a.png (a)")
	assert.Empty(t, stderr.String())
}

func TestRunUpdateMissingDir(t *testing.T) {
	site := t.TempDir()
	out := filepath.Join(site, "images.json")
	require.NoError(t, os.WriteFile(out, []byte(`{"images":[{"src":"images/stale.png"}]}`), 0o644))

	var stdout, stderr bytes.Buffer
	require.NoError(t, runUpdate(&stdout, &stderr, filepath.Join(site, "images"), out, time.Now()))

	assert.Contains(t, stderr.String(), "error:")
	assert.Contains(t, stdout.String(), "(previously 1 image)")

	m, err := manifest.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, m.Images, "stale entries are overwritten")
}

func TestRunUpdateReportsPreviousCount(t *testing.T) {
	site := t.TempDir()
	dir := filepath.Join(site, "images")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.png"), []byte("x"), 0o644))
	out := filepath.Join(site, "images.json")
	require.NoError(t, os.WriteFile(out,
		[]byte(`{"images":[{"src":"images/a.png"},{"src":"images/b.png"},{"src":"images/c.png"}]}`), 0o644))

	var stdout, stderr bytes.Buffer
	require.NoError(t, runUpdate(&stdout, &stderr, dir, out, time.Now()))

	printed := ansi.Strip(stdout.String())
	assert.Contains(t, printed, "(previously 3 images)")
	assert.Contains(t, printed, "Found 1 image:")
}

func TestRunUpdateWriteFailure(t *testing.T) {
	site := t.TempDir()
	dir := filepath.Join(site, "images")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	// A directory in place of the manifest makes the rename fail.
	out := filepath.Join(site, "images.json")
	require.NoError(t, os.MkdirAll(filepath.Join(out, "child"), 0o755))

	var stdout, stderr bytes.Buffer
	err := runUpdate(&stdout, &stderr, dir, out, time.Now())
	assert.Error(t, err)
	assert.Contains(t, stderr.String(), "write")
}

func TestSrcPrefix(t *testing.T) {
	tests := []struct {
		dir, out, want string
	}{
		{"images", "images.json", "images"},
		{"site/images", "site/images.json", "images"},
		{"photos", "public/photos.json", "../photos"},
		{"./images/", "./images.json", "images"},
	}

	for _, tt := range tests {
		t.Run(tt.dir+"->"+tt.out, func(t *testing.T) {
			assert.Equal(t, tt.want, srcPrefix(tt.dir, tt.out))
		})
	}
}
