package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sonnes/gallery/manifest"
	"github.com/sonnes/gallery/render/terminal"
	"github.com/urfave/cli/v3"
)

func updateCmd() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Scan the image directory and rewrite the manifest",
		Description: `Lists the image directory (not recursively), keeps files with a
supported image extension (jpg, jpeg, png, gif, webp, bmp, svg), derives a
title and alt text from each file name and writes the result, sorted by
path, to images.json. The previous manifest is overwritten and its entry
count is reported.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Image directory to scan",
				Value:   "images",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Manifest file to write",
				Value:   "images.json",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runUpdate(os.Stdout, os.Stderr, cmd.String("dir"), cmd.String("out"), time.Now())
		},
	}
}

// runUpdate regenerates the manifest at out from the images in dir. A
// directory that cannot be read is reported on stderr and an empty manifest
// is still written; only a failed write is returned as an error.
func runUpdate(stdout, stderr io.Writer, dir, out string, now time.Time) error {
	fmt.Fprintf(stdout, "Scanning %s...\n", dir)

	previous := 0
	if prev, err := manifest.ReadFile(out); err != nil {
		log.Warn("could not read previous manifest", "path", out, "err", err)
	} else {
		previous = len(prev.Images)
	}

	m, err := manifest.Generate(dir, srcPrefix(dir, out), now)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}

	if err := m.WriteFile(out); err != nil {
		fmt.Fprintf(stderr, "error: write %s: %v\n", out, err)
		return fmt.Errorf("write manifest: %w", err)
	}

	noun := "images"
	if previous == 1 {
		noun = "image"
	}
	fmt.Fprintf(stdout, "Updated %s (previously %d %s)\n", out, previous, noun)
	return terminal.New().Render(stdout, m.Images)
}

// srcPrefix returns the image directory as seen from the manifest's
// directory, with forward slashes, so entries resolve relative to the page
// that loads the manifest.
func srcPrefix(dir, out string) string {
	rel, err := filepath.Rel(filepath.Dir(out), dir)
	if err != nil {
		return filepath.ToSlash(filepath.Clean(dir))
	}
	return filepath.ToSlash(rel)
}
