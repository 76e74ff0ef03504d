package main

import (
	"context"
	"fmt"

	"github.com/sonnes/gallery/install"
	"github.com/urfave/cli/v3"
)

func installCmd() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Regenerate the manifest automatically on every commit",
		Description: `Creates the image directory if needed and installs a git pre-commit
hook. When a commit touches the image directory the hook runs
"gallery update" and stages the rewritten manifest.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Usage: "Image directory, relative to the repository root",
				Value: "images",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Manifest file, relative to the repository root",
				Value: "images.json",
			},
			&cli.StringFlag{
				Name:  "command",
				Usage: "Command the hook runs to regenerate the manifest",
				Value: "gallery",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := install.Config{
				ImageDir: cmd.String("dir"),
				Manifest: cmd.String("out"),
				Command:  cmd.String("command"),
			}

			if err := install.Run(cfg); err != nil {
				return err
			}

			fmt.Println("Installed successfully.")
			fmt.Println()
			fmt.Printf("  Images:    %s/\n", cfg.ImageDir)
			fmt.Printf("  Manifest:  %s\n", cfg.Manifest)
			fmt.Println()
			fmt.Println("The manifest is regenerated whenever a commit touches the image directory.")
			return nil
		},
	}
}
