package main

import (
	"fmt"
	"os"

	"github.com/sonnes/gallery/core"
	"github.com/sonnes/gallery/manifest"
	"github.com/sonnes/gallery/render"
	htmlrender "github.com/sonnes/gallery/render/html"
	jsonrender "github.com/sonnes/gallery/render/json"
	"github.com/sonnes/gallery/render/terminal"
	"github.com/sonnes/gallery/resolve"
	"github.com/urfave/cli/v3"
)

// renderers maps -o values to list renderers.
var renderers = map[string]func() render.Renderer{
	"terminal": func() render.Renderer { return terminal.New() },
	"json":     func() render.Renderer { return jsonrender.New() },
}

func renderer(name string) (render.Renderer, error) {
	fn, ok := renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return fn(), nil
}

// resolverFlags are shared by every command that resolves the image list.
func resolverFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "Site URL to fetch the manifest and image listing from",
		},
		&cli.StringFlag{
			Name:  "root",
			Usage: "Site directory to read the manifest and image listing from when --base-url is not set",
			Value: ".",
		},
		&cli.StringFlag{
			Name:  "manifest-path",
			Usage: "Manifest path relative to the site",
			Value: resolve.DefaultManifestPath,
		},
		&cli.StringFlag{
			Name:  "image-dir",
			Usage: "Image directory relative to the site",
			Value: resolve.DefaultImageDir,
		},
		&cli.BoolFlag{
			Name:  "local",
			Usage: "Skip the manifest and directory listing and use the fallback list",
		},
		&cli.StringFlag{
			Name:  "fallback",
			Usage: "JSON file in manifest format holding the fallback list",
		},
	}
}

// newResolver builds a Resolver from the resolver flags. baseURL overrides
// --base-url when non-empty.
func newResolver(cmd *cli.Command, baseURL string) (*resolve.Resolver, error) {
	fallback, err := loadFallback(cmd.String("fallback"))
	if err != nil {
		return nil, err
	}
	if baseURL == "" {
		baseURL = cmd.String("base-url")
	}
	return resolve.New(resolve.Config{
		BaseURL:      baseURL,
		Root:         cmd.String("root"),
		ManifestPath: cmd.String("manifest-path"),
		ImageDir:     cmd.String("image-dir"),
		Local:        cmd.Bool("local"),
		Fallback:     fallback,
	}), nil
}

// loadFallback reads the fallback list. An empty path means the built-in
// list.
func loadFallback(path string) ([]core.ImageEntry, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fallback list: %w", err)
	}
	m, err := manifest.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse fallback list %s: %w", path, err)
	}
	return m.Images, nil
}

// pageFlags configure the HTML page.
func pageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "title",
			Usage: "Page title",
		},
		&cli.StringFlag{
			Name:  "intro",
			Usage: "Markdown file shown above the gallery",
		},
	}
}

func newPageRenderer(cmd *cli.Command) (*htmlrender.Renderer, error) {
	r := htmlrender.New()
	r.Title = cmd.String("title")
	if path := cmd.String("intro"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read intro: %w", err)
		}
		r.Intro = string(data)
	}
	return r, nil
}
