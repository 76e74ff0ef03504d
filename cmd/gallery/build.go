package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Resolve the image list and write a static gallery page",
		Description: `Resolves the image list through the fallback chain (manifest, image
directory listing, fallback list) and writes a standalone HTML page.
Without --base-url the site is read from --root on disk.`,
		Flags: append(append(resolverFlags(), pageFlags()...),
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Output HTML file",
				Value:   "index.html",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			res, err := newResolver(cmd, "")
			if err != nil {
				return err
			}
			page, err := newPageRenderer(cmd)
			if err != nil {
				return err
			}

			images := res.Resolve(ctx)

			outPath := cmd.String("out")
			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return err
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			defer f.Close()

			if err := page.Render(f, images); err != nil {
				log.Error("render gallery", "err", err)
				if _, err := f.Seek(0, io.SeekStart); err != nil {
					return err
				}
				if err := f.Truncate(0); err != nil {
					return err
				}
				if err := page.RenderError(f); err != nil {
					return fmt.Errorf("render: %w", err)
				}
			}

			fmt.Printf("Wrote %s (%d images)\n", outPath, len(images))
			return nil
		},
	}
}
