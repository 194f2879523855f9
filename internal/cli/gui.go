package cli

import (
	"context"

	"github.com/livebud/cli"
	"github.com/matthewmueller/dtime/internal/tui"
)

type GUI struct{}

func (g *GUI) command(cli cli.Command) cli.Command {
	cmd := cli.Command("gui", "edit a date and generate a timestamp (default)")
	return cmd
}

func (c *CLI) GUI(ctx context.Context, in *GUI) error {
	return tui.Run(ctx, c.log, c.dtime)
}
