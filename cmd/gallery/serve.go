package main

import (
	"context"
	"fmt"

	"github.com/sonnes/gallery/server"
	"github.com/urfave/cli/v3"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the gallery site for browsing in a local web UI",
		Description: `Serves --root over HTTP. The index page is rendered on every request;
unless --base-url is given it resolves the image list against this server's
own images.json and image directory listing.`,
		Flags: append(append(resolverFlags(), pageFlags()...),
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
				Value: 8080,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			port := int(cmd.Int("port"))
			res, err := newResolver(cmd, selfURL(cmd.String("base-url"), port))
			if err != nil {
				return err
			}
			page, err := newPageRenderer(cmd)
			if err != nil {
				return err
			}

			s := &server.Server{
				Root:     cmd.String("root"),
				Resolver: res,
				Renderer: page,
			}
			return s.ListenAndServe(ctx, fmt.Sprintf(":%d", port))
		},
	}
}

// selfURL returns baseURL, or the loopback address of the server itself when
// baseURL is empty.
func selfURL(baseURL string, port int) string {
	if baseURL != "" {
		return baseURL
	}
	return fmt.Sprintf("http://127.0.0.1:%d/", port)
}
