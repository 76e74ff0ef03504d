// Package terminal renders an image list as ANSI-colored lines.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/sonnes/gallery/core"
)

const defaultWidth = 100

// Renderer prints one line per image: "- src (title)".
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes a count header followed by one line per image to w.
func (r *Renderer) Render(w io.Writer, images []core.ImageEntry) error {
	width := r.termWidth()

	if len(images) == 0 {
		fmt.Fprintln(w, styleEmpty.Render("No images found"))
		return nil
	}

	noun := "images"
	if len(images) == 1 {
		noun = "image"
	}
	fmt.Fprintln(w, styleHeader.Render("Found ")+styleCount.Render(fmt.Sprintf("%d", len(images)))+styleHeader.Render(" "+noun+":"))

	for _, img := range images {
		line := img.Src
		if img.Title != "" {
			line += " (" + img.Title + ")"
		}
		line = truncate(line, width-5)

		// Style the path and title halves separately after truncation.
		src, rest, _ := strings.Cut(line, " (")
		styled := stylePath.Render(src)
		if rest != "" {
			styled += styleTitle.Render(" (" + rest)
		}
		fmt.Fprintln(w, "   - "+styled)
	}
	return nil
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// truncate shortens text to maxWidth, appending "..." if needed.
// Multi-line text is reduced to the first line.
func truncate(s string, maxWidth int) string {
	if maxWidth < 4 {
		maxWidth = 4
	}
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
