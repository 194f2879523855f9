package cli

import (
	"context"
	"io"

	"github.com/livebud/cli"
	"github.com/matthewmueller/dtime"
)

type Now struct {
	Copy bool
}

func (n *Now) command(cli cli.Command) cli.Command {
	cmd := cli.Command("now", "print a timestamp for the current time")
	cmd.Flag("copy", "copy the timestamp to the clipboard").Bool(&n.Copy).Default(true)
	return cmd
}

func (c *CLI) Now(ctx context.Context, in *Now) error {
	return c.session(func(stdout io.Writer) error {
		generated, err := c.dtime.Generate(ctx, &dtime.Generate{
			Copy: in.Copy,
		})
		if err != nil {
			return report(stdout, err)
		}
		c.printGenerated(stdout, generated.Markup, generated.Copied)
		return nil
	})
}
