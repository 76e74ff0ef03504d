// Package resolve determines the list of images shown by the gallery page.
// It walks an ordered chain of sources (the JSON manifest, the image
// directory listing, then a fixed fallback list) and uses the first one
// that yields at least one image.
package resolve

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/sonnes/gallery/core"
)

const (
	// DefaultManifestPath is the manifest location relative to the base URL.
	DefaultManifestPath = "images.json"
	// DefaultImageDir is the image directory relative to the base URL.
	DefaultImageDir = "images"
)

// DefaultFallback is the canonical fallback list used when no other list is
// configured.
var DefaultFallback = []core.ImageEntry{
	{
		Src:   "images/iShot_2025-09-13_16.47.17.png",
		Title: "Screenshot 2025-09-13",
		Alt:   "Screenshot",
	},
}

// Source yields a list of images. An error or an empty list both mean the
// resolver should move on to the next source.
type Source interface {
	Name() string
	Images(ctx context.Context) ([]core.ImageEntry, error)
}

// Config controls how a Resolver is built.
type Config struct {
	// BaseURL is the site root that the manifest and image directory are
	// resolved against, e.g. "http://localhost:8080/".
	BaseURL string
	// Root, when set and BaseURL is empty, serves the sources from a local
	// site directory instead of the network.
	Root string
	// ManifestPath defaults to DefaultManifestPath.
	ManifestPath string
	// ImageDir defaults to DefaultImageDir.
	ImageDir string
	// Local skips the network sources and returns Fallback directly.
	Local bool
	// Fallback is the list used when every other source is empty. Nil means
	// DefaultFallback.
	Fallback []core.ImageEntry
	// Client is used for HTTP sources. Nil means http.DefaultClient.
	Client *http.Client
}

// Resolver tries its sources in order.
type Resolver struct {
	sources []Source
}

// New builds the standard chain from cfg: manifest, directory listing, then
// the fallback list. With cfg.Local only the fallback list is consulted.
func New(cfg Config) *Resolver {
	fallback := cfg.Fallback
	if fallback == nil {
		fallback = DefaultFallback
	}
	static := &StaticSource{List: fallback}

	if cfg.Local {
		return NewChain(static)
	}

	base := cfg.BaseURL
	client := cfg.Client
	if client == nil {
		client = http.DefaultClient
	}
	if base == "" && cfg.Root != "" {
		base = "file:///"
		client = &http.Client{Transport: http.NewFileTransport(http.Dir(cfg.Root))}
	}
	manifestPath := cfg.ManifestPath
	if manifestPath == "" {
		manifestPath = DefaultManifestPath
	}
	imageDir := cfg.ImageDir
	if imageDir == "" {
		imageDir = DefaultImageDir
	}

	return NewChain(
		&ManifestSource{URL: joinURL(base, manifestPath), Client: client},
		&ListingSource{URL: joinURL(base, imageDir+"/"), Dir: imageDir, Client: client},
		static,
	)
}

// NewChain builds a Resolver over an explicit list of sources.
func NewChain(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// Resolve returns the images from the first source that yields a non-empty
// list. Source failures are logged and never returned. If every source comes
// up empty the result is an empty, non-nil slice.
func (r *Resolver) Resolve(ctx context.Context) []core.ImageEntry {
	for _, s := range r.sources {
		images, err := s.Images(ctx)
		if err != nil {
			log.Warn("image source failed", "source", s.Name(), "err", err)
			continue
		}
		if len(images) == 0 {
			log.Debug("image source empty", "source", s.Name())
			continue
		}
		log.Debug("images resolved", "source", s.Name(), "count", len(images))
		return images
	}
	log.Warn("no images resolved")
	return []core.ImageEntry{}
}

// StaticSource returns a fixed list.
type StaticSource struct {
	List []core.ImageEntry
}

// Name identifies the source in logs.
func (s *StaticSource) Name() string { return "fallback" }

// Images returns a copy of List. It never fails.
func (s *StaticSource) Images(context.Context) ([]core.ImageEntry, error) {
	out := make([]core.ImageEntry, len(s.List))
	copy(out, s.List)
	return out, nil
}
