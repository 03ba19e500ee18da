// Package cli is the command line surface of scened: the default action
// falls through to the daemon loop, the interactive command opens a
// terminal dashboard over the published scene state.
package cli

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func Handle() {
	shouldExit := true
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Watch and configure an active scened instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					interactive()
					return nil
				},
			},
		},
		Name:  "Scened",
		Usage: "Start an instance of scened",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shouldExit = false
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if shouldExit {
		os.Exit(0)
	}
}
