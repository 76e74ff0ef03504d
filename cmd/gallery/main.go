package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "gallery",
		Usage: "Generate the image manifest and render a static image gallery",
		Description: `The gallery page shows every image listed in images.json. When the
manifest is missing or empty it falls back to the image directory listing,
then to a fixed fallback list.

Run "gallery update" after adding images to regenerate images.json.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "warn",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			updateCmd(),
			buildCmd(),
			serveCmd(),
			listCmd(),
			installCmd(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
