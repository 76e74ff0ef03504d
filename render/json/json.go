// Package json renders an image list as a manifest document.
package json

import (
	"encoding/json"
	"io"
	"time"

	"github.com/sonnes/gallery/core"
	"github.com/sonnes/gallery/manifest"
)

// Renderer renders an image list to JSON in manifest format.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
	// Now stamps lastUpdated. Nil means time.Now.
	Now func() time.Time
}

// New creates a JSON Renderer with indentation enabled.
func New() *Renderer {
	return &Renderer{Indent: true}
}

// Render writes {"images": [...], "lastUpdated": ...} to w.
func (r *Renderer) Render(w io.Writer, images []core.ImageEntry) error {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	if images == nil {
		images = []core.ImageEntry{}
	}

	enc := json.NewEncoder(w)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(manifest.Manifest{Images: images, LastUpdated: now().UTC()})
}
