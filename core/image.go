// Package core defines the image entry type shared by the manifest generator,
// the resolver and the renderers, plus the filename rules that derive an
// entry's display metadata.
package core

import (
	"path"
	"strings"
)

// AltPrefix is prepended to a derived title to form the alt text.
const AltPrefix = "Image: "

// ImageEntry describes one image in the gallery.
type ImageEntry struct {
	Src   string `json:"src"`
	Title string `json:"title"`
	Alt   string `json:"alt"`
}

// SupportedFormats is the set of recognized image extensions, lowercase and
// dot-prefixed. It is never modified after initialization.
var SupportedFormats = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
	".bmp":  {},
	".svg":  {},
}

// IsImageFile reports whether name ends in a supported image extension.
// The comparison is case-insensitive.
func IsImageFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	if ext == "" {
		return false
	}
	_, ok := SupportedFormats[ext]
	return ok
}

// DeriveTitle strips the extension from name and replaces underscores and
// hyphens with spaces. Names without an extension keep their text.
func DeriveTitle(name string) string {
	base := path.Base(name)
	if base == "." || base == "/" {
		base = ""
	}
	base = strings.TrimSuffix(base, path.Ext(base))
	return titleReplacer.Replace(base)
}

var titleReplacer = strings.NewReplacer("_", " ", "-", " ")

// DeriveAlt returns the accessibility text for name.
func DeriveAlt(name string) string {
	return AltPrefix + DeriveTitle(name)
}

// NewImageEntry builds an entry for the file name inside dir. Src joins dir
// and name with a forward slash; an empty dir leaves name unprefixed.
func NewImageEntry(dir, name string) ImageEntry {
	src := name
	if dir != "" {
		src = strings.TrimSuffix(dir, "/") + "/" + name
	}
	return ImageEntry{
		Src:   src,
		Title: DeriveTitle(name),
		Alt:   DeriveAlt(name),
	}
}
