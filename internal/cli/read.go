package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/livebud/cli"
	"github.com/matthewmueller/dtime"
	"github.com/matthewmueller/prompter"
)

type Read struct {
	Input []string
	Copy  bool

	// literal input from --read, taken as-is even when blank
	literal *string
}

func (r *Read) command(cli cli.Command) cli.Command {
	cmd := cli.Command("read", "convert a timestamp to a date or a date to a timestamp")
	cmd.Flag("copy", "copy generated timestamps to the clipboard").Bool(&r.Copy).Default(true)
	cmd.Args("input", `"HH:MM:SS DD/MM/YYYY" or "<t:TIMESTAMP:F>"`).Strings(&r.Input).Default()
	return cmd
}

var errBlank = errors.New("input is required")

func nonBlank(input string) error {
	if strings.TrimSpace(input) == "" {
		return errBlank
	}
	return nil
}

func (c *CLI) Read(ctx context.Context, in *Read) error {
	return c.session(func(stdout io.Writer) error {
		input := strings.Join(in.Input, " ")
		if in.literal != nil {
			input = *in.literal
		} else if strings.TrimSpace(input) == "" {
			prompt := c.Prompt
			if prompt == nil {
				prompt = prompter.New(stdout, c.Stdin)
			}
			var err error
			input, err = prompt.Is(nonBlank).Ask(ctx, "Date or timestamp:")
			if err != nil {
				return fmt.Errorf("cli: unable to read input: %w", err)
			}
		}
		reading, err := c.dtime.Read(ctx, &dtime.Read{
			Input: input,
			Copy:  in.Copy,
		})
		if err != nil {
			return report(stdout, err)
		}
		switch reading.Direction {
		case dtime.ToHuman:
			fmt.Fprintf(stdout, "Timestamp %s corresponds to:\n%s\n", reading.Input, reading.Human)
		case dtime.ToMarkup:
			c.printGenerated(stdout, reading.Markup, reading.Copied)
		}
		return nil
	})
}
