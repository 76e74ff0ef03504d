package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Resolve the image list and print it",
		Flags: append(resolverFlags(),
			&cli.StringFlag{
				Name:  "o",
				Usage: "Output format: terminal, json",
				Value: "terminal",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rnd, err := renderer(cmd.String("o"))
			if err != nil {
				return err
			}
			res, err := newResolver(cmd, "")
			if err != nil {
				return err
			}
			return rnd.Render(os.Stdout, res.Resolve(ctx))
		},
	}
}
