// Package html renders the gallery as a standalone HTML page. Each image is
// placed in its own container inside the #image-gallery mount point, with an
// onerror handler that hides the container if the image fails to load.
package html

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/sonnes/gallery/core"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

//go:embed templates/*.html
var content embed.FS

// Messages shown in place of the gallery.
const (
	EmptyMessage = "No images yet"
	ErrorMessage = "Failed to load images"
)

const defaultTitle = "Gallery"

// Renderer renders an image list to a standalone HTML page.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template

	// Title is the page title and heading. Empty means "Gallery".
	Title string
	// Intro is optional markdown shown above the gallery.
	Intro string
}

// New creates an HTML Renderer with goldmark configured for GFM and syntax
// highlighting of code in the intro.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("dracula"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles for standalone pages
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(), // allow raw HTML in markdown
		),
	)

	tmpl := template.Must(
		template.New("page.html").ParseFS(content, "templates/*.html"),
	)

	return &Renderer{md: md, tmpl: tmpl}
}

// pageData is the top-level template data passed to page.html. Exactly one of
// Images or Message is shown in the mount point.
type pageData struct {
	Title   string
	Intro   template.HTML
	Images  []core.ImageEntry
	Message string
	IsError bool
}

// Render writes the gallery page for images to w. An empty list renders the
// empty-state message.
func (r *Renderer) Render(w io.Writer, images []core.ImageEntry) error {
	data, err := r.page()
	if err != nil {
		return err
	}
	if len(images) == 0 {
		data.Message = EmptyMessage
	} else {
		data.Images = images
	}
	return r.tmpl.ExecuteTemplate(w, "page.html", data)
}

// RenderError writes the page with the failure message in place of the
// gallery. It skips the intro so that a broken intro cannot fail it too.
func (r *Renderer) RenderError(w io.Writer) error {
	return r.tmpl.ExecuteTemplate(w, "page.html", pageData{
		Title:   r.title(),
		Message: ErrorMessage,
		IsError: true,
	})
}

func (r *Renderer) page() (pageData, error) {
	data := pageData{Title: r.title()}
	if r.Intro != "" {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(r.Intro), &buf); err != nil {
			return data, fmt.Errorf("goldmark convert: %w", err)
		}
		data.Intro = template.HTML(buf.String())
	}
	return data, nil
}

func (r *Renderer) title() string {
	if r.Title == "" {
		return defaultTitle
	}
	return r.Title
}
