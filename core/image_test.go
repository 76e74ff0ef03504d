package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"diagram.Png", true},
		{"anim.gif", true},
		{"modern.webp", true},
		{"old.BMP", true},
		{"logo.svg", true},
		{"archive.tar.png", true},
		{"notes.txt", false},
		{"png", false},
		{"image.png.bak", false},
		{"", false},
		{"dir/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsImageFile(tt.name))
		})
	}
}

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"underscore and hyphen", "a_b-c.png", "a b c"},
		{"plain", "sunset.jpg", "sunset"},
		{"dotted name keeps inner dots", "iShot_2025-09-13_16.47.17.png", "iShot 2025 09 13 16.47.17"},
		{"directory prefix dropped", "images/my-cat.gif", "my cat"},
		{"no extension", "README", "README"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTitle(tt.in))
		})
	}
}

func TestDeriveAlt(t *testing.T) {
	alt := DeriveAlt("a_b-c.png")
	assert.Contains(t, alt, "a b c")
	assert.Equal(t, AltPrefix+"a b c", alt)
}

func TestNewImageEntry(t *testing.T) {
	t.Run("with dir", func(t *testing.T) {
		e := NewImageEntry("images", "my_photo.png")
		assert.Equal(t, ImageEntry{Src: "images/my_photo.png", Title: "my photo", Alt: "Image: my photo"}, e)
	})

	t.Run("trailing slash", func(t *testing.T) {
		e := NewImageEntry("images/", "x.png")
		assert.Equal(t, "images/x.png", e.Src)
	})

	t.Run("no dir", func(t *testing.T) {
		e := NewImageEntry("", "x.png")
		assert.Equal(t, "x.png", e.Src)
	})
}
