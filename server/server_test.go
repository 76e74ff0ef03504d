package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sonnes/gallery/core"
	htmlrender "github.com/sonnes/gallery/render/html"
	"github.com/sonnes/gallery/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedResolver []core.ImageEntry

func (f fixedResolver) Resolve(context.Context) []core.ImageEntry { return f }

type failingRenderer struct{ *htmlrender.Renderer }

func (failingRenderer) Render(io.Writer, []core.ImageEntry) error {
	return errors.New("mount point missing")
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func siteRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "images", "a.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "images.json"), []byte(`{"images":[]}`), 0o644))
	return root
}

func TestIndexPage(t *testing.T) {
	s := &Server{
		Root:     siteRoot(t),
		Resolver: fixedResolver{core.NewImageEntry("images", "a.png"), core.NewImageEntry("images", "b.png")},
	}
	h := s.Handler()

	for _, path := range []string{"/", "/index.html"} {
		t.Run(path, func(t *testing.T) {
			rec := get(t, h, path)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

			body := rec.Body.String()
			assert.Equal(t, 2, strings.Count(body, `class="image-container"`))
			assert.Contains(t, body, `src="images/a.png"`)
		})
	}
}

func TestIndexPageEmpty(t *testing.T) {
	s := &Server{Root: siteRoot(t), Resolver: fixedResolver{}}
	rec := get(t, s.Handler(), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), htmlrender.EmptyMessage)
}

func TestIndexPageRenderFailure(t *testing.T) {
	s := &Server{
		Root:     siteRoot(t),
		Resolver: fixedResolver{core.NewImageEntry("images", "a.png")},
		Renderer: failingRenderer{htmlrender.New()},
	}
	rec := get(t, s.Handler(), "/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), htmlrender.ErrorMessage)
	assert.NotContains(t, rec.Body.String(), "image-container")
}

func TestStaticFiles(t *testing.T) {
	s := &Server{Root: siteRoot(t), Resolver: fixedResolver{}}
	h := s.Handler()

	t.Run("manifest", func(t *testing.T) {
		rec := get(t, h, "/images.json")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"images":[]}`, rec.Body.String())
	})

	t.Run("image", func(t *testing.T) {
		rec := get(t, h, "/images/a.png")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "png", rec.Body.String())
	})

	t.Run("directory listing", func(t *testing.T) {
		rec := get(t, h, "/images/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `<a href="a.png">a.png</a>`)
	})

	t.Run("missing", func(t *testing.T) {
		rec := get(t, h, "/nope.png")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSelfResolution(t *testing.T) {
	root := siteRoot(t)

	// The page resolves against the server's own manifest (empty here) and
	// directory listing.
	s := &Server{Root: root}
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	s.Resolver = resolve.New(resolve.Config{BaseURL: srv.URL, Fallback: []core.ImageEntry{}})

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, strings.Count(string(body), `class="image-container"`))
	assert.Contains(t, string(body), `src="images/a.png"`)
}
