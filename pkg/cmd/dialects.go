package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/dialect"
	"github.com/urfave/cli/v3"
)

// dialectsCmd creates a CLI command that lists the registered SQL
// dialects, one per line, marking the one currently configured.
func dialectsCmd() *cli.Command {
	return &cli.Command{
		Name:  "dialects",
		Usage: "List available SQL dialects",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, name := range dialect.Names() {
				line := name
				if name == currentConfig.Dialect {
					line += " (current)"
				}
				if _, err := fmt.Fprintln(cmd.Writer, line); err != nil {
					return errors.Wrap(err, "failed to write dialect name to output")
				}
			}

			return nil
		},
	}
}
