// Package render defines the interface for rendering a resolved image list
// into various output formats.
package render

import (
	"io"

	"github.com/sonnes/gallery/core"
)

// Renderer writes an ordered image list to the given writer in a specific
// format.
type Renderer interface {
	Render(w io.Writer, images []core.ImageEntry) error
}
