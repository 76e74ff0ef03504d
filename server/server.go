// Package server serves a gallery site over HTTP. The index page is rendered
// on every request from the resolved image list; every other path is served
// from the site root, with directory browsing so the image listing can act as
// a data source.
package server

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/sonnes/gallery/core"
	htmlrender "github.com/sonnes/gallery/render/html"
)

// Resolver produces the image list for one page view.
type Resolver interface {
	Resolve(ctx context.Context) []core.ImageEntry
}

// PageRenderer renders the gallery page and its failure state.
type PageRenderer interface {
	Render(w io.Writer, images []core.ImageEntry) error
	RenderError(w io.Writer) error
}

// Server serves the gallery page and the static files beneath Root.
type Server struct {
	// Root is the site directory holding the manifest and image directory.
	Root string
	// Resolver provides the image list for each page view.
	Resolver Resolver
	// Renderer renders the page. Nil means htmlrender.New().
	Renderer PageRenderer
}

// Handler returns the HTTP handler for the site.
func (s *Server) Handler() http.Handler {
	var renderer PageRenderer = htmlrender.New()
	if s.Renderer != nil {
		renderer = s.Renderer
	}

	mux := http.NewServeMux()
	files := http.FileServer(http.Dir(s.Root))

	page := func(w http.ResponseWriter, req *http.Request) {
		images := s.Resolver.Resolve(req.Context())

		var buf bytes.Buffer
		if err := renderer.Render(&buf, images); err != nil {
			log.Error("render gallery", "err", err)
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			if err := renderer.RenderError(w); err != nil {
				log.Error("render error page", "err", err)
			}
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}

	mux.HandleFunc("GET /{$}", page)
	mux.HandleFunc("GET /index.html", page)
	mux.Handle("GET /", files)
	return mux
}

// ListenAndServe serves the site on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	log.Info("serving", "addr", addr, "root", s.Root)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
