package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/dialect"
	"github.com/pseudomuto/sqlfmt/pkg/tokenizer"
	"github.com/urfave/cli/v3"
)

// lexCmd creates a CLI command that dumps the token stream for a SQL file.
// It exists for debugging dialect configurations: each line shows a token
// type and its raw value, exactly as the formatter will see them.
//
// Example:
//
//	$ sqlfmt lex query.sql
//	reserved-top-level  "SELECT"
//	whitespace          " "
//	word                "a"
func lexCmd() *cli.Command {
	return &cli.Command{
		Name:      "lex",
		Usage:     "Dump the token stream for a SQL file",
		ArgsUsage: "<path>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			content, err := readInput(cmd.Args().First(), cmd.Reader)
			if err != nil {
				return err
			}

			d := dialect.Get(currentConfig.Dialect)
			if d == nil {
				return errors.Errorf("unknown dialect: %s", currentConfig.Dialect)
			}

			for _, tok := range tokenizer.Cached(d.Tokenizer).Tokenize(content) {
				if _, err := fmt.Fprintf(cmd.Writer, "%-26s %q\n", tok.Type, tok.Value); err != nil {
					return errors.Wrap(err, "failed to write token to output")
				}
			}

			return nil
		},
	}
}

func readInput(path string, reader io.Reader) (string, error) {
	if path == "-" {
		content, err := io.ReadAll(reader)
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(content), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read file: %s", path)
	}
	return string(content), nil
}
