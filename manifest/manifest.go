// Package manifest reads, writes and generates the gallery manifest
// (images.json) that lists the images available to the gallery page.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sonnes/gallery/core"
)

// Manifest holds the ordered image list and the time it was generated.
type Manifest struct {
	Images      []core.ImageEntry `json:"images"`
	LastUpdated time.Time         `json:"lastUpdated"`
}

// Parse decodes a manifest document. A missing or null images array yields an
// empty list. Entries whose src is not a supported image are dropped, and a
// missing title or alt is derived from the src file name. A lastUpdated value
// that is not an RFC 3339 timestamp is ignored.
func Parse(data []byte) (*Manifest, error) {
	var doc struct {
		Images      []core.ImageEntry `json:"images"`
		LastUpdated json.RawMessage   `json:"lastUpdated"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	m := &Manifest{Images: make([]core.ImageEntry, 0, len(doc.Images))}
	var ts time.Time
	if len(doc.LastUpdated) > 0 && json.Unmarshal(doc.LastUpdated, &ts) == nil {
		m.LastUpdated = ts
	}

	for _, e := range doc.Images {
		if !core.IsImageFile(e.Src) {
			continue
		}
		if e.Title == "" {
			e.Title = core.DeriveTitle(e.Src)
		}
		if e.Alt == "" {
			e.Alt = core.DeriveAlt(e.Src)
		}
		m.Images = append(m.Images, e)
	}
	return m, nil
}

// ReadFile reads a manifest from disk. Returns an empty Manifest if the file
// does not exist.
func ReadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Manifest{Images: []core.ImageEntry{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Scan lists dir once, without recursion, and returns an entry for every
// supported image file. Each Src is prefix-joined and the result is sorted
// by Src.
func Scan(dir, prefix string) ([]core.ImageEntry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	images := []core.ImageEntry{}
	for _, f := range files {
		if f.IsDir() || !core.IsImageFile(f.Name()) {
			continue
		}
		images = append(images, core.NewImageEntry(prefix, f.Name()))
	}

	sort.SliceStable(images, func(i, j int) bool {
		return images[i].Src < images[j].Src
	})
	return images, nil
}

// Generate scans dir and builds a manifest stamped with now. When dir cannot
// be read the returned manifest is still usable (it has no images) and the
// error is returned alongside it so the caller can report it.
func Generate(dir, prefix string, now time.Time) (*Manifest, error) {
	m := &Manifest{Images: []core.ImageEntry{}, LastUpdated: now.UTC()}

	images, err := Scan(dir, prefix)
	if err != nil {
		return m, fmt.Errorf("scan %s: %w", dir, err)
	}
	m.Images = images
	return m, nil
}

// WriteFile writes the manifest to disk atomically using a temporary file and
// rename, so readers never observe a partial document.
func (m *Manifest) WriteFile(path string) error {
	out := *m
	if out.Images == nil {
		out.Images = []core.ImageEntry{}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".manifest-*.json")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
