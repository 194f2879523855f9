package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/livebud/cli"
	"github.com/livebud/color"
	"github.com/matthewmueller/dtime"
	"github.com/matthewmueller/dtime/internal/clipboard"
	"github.com/matthewmueller/dtime/internal/console"
	"github.com/matthewmueller/dtime/internal/timestamp"
	"github.com/matthewmueller/logs"
	"github.com/matthewmueller/prompter"
)

func Run() int {
	cli := Default()
	ctx := context.Background()
	err := cli.Parse(ctx, os.Args[1:]...)
	if err != nil {
		if !errors.Is(err, errReported) {
			logs.ErrorContext(ctx, err.Error())
		}
		return 1
	}
	return 0
}

func Default() *CLI {
	return &CLI{
		Stdin:     os.Stdin,
		Stderr:    os.Stderr,
		Console:   console.Parent,
		Color:     color.Default(),
		Clipboard: clipboard.System,
		logLevel:  "info",
	}
}

type CLI struct {
	Stdin  io.Reader
	Stderr io.Writer
	// Console acquires stdout for the console commands
	Console   console.Attacher
	Color     color.Writer
	Clipboard func(log *slog.Logger) clipboard.Writer
	// Prompt for missing input. Nil prompts on the console session.
	Prompt *prompter.Prompt
	// Configure the client after it's created (e.g. to pin the clock)
	Configure func(client *dtime.Client)

	// global flag
	logLevel string

	// Set after parsing
	log   *slog.Logger
	dtime *dtime.Client
}

// errReported means the error was already printed for the user
var errReported = errors.New("cli: error reported")

// report prints a conversion error the way users expect to see it
func report(w io.Writer, err error) error {
	switch {
	case errors.Is(err, timestamp.ErrParse):
		fmt.Fprintln(w, "Error: Could not parse number from timestamp.")
	case errors.Is(err, timestamp.ErrFormat):
		fmt.Fprintln(w, "Error: Invalid input format provided.")
		fmt.Fprintln(w, `Please use "HH:MM:SS DD/MM/YYYY" or "<t:TIMESTAMP:F>"`)
	case errors.Is(err, timestamp.ErrInvalidDateTime):
		fmt.Fprintln(w, "Error: Could not convert the provided date/time. It may be invalid.")
	default:
		return err
	}
	return fmt.Errorf("%w: %w", errReported, err)
}

func (c *CLI) printGenerated(w io.Writer, markup string, copied bool) {
	fmt.Fprintf(w, "Generated Timestamp: %s\n", markup)
	if copied {
		fmt.Fprintln(w, c.Color.Dim("Timestamp copied to clipboard."))
	}
}

func (c *CLI) logger(logLevel string) (*slog.Logger, error) {
	level, err := logs.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("cli: parsing log level: %w", err)
	}
	log := logs.New(logs.Filter(level, logs.Console(c.Stderr)))
	return log, nil
}

func (c *CLI) wrap(fn func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) (err error) {
		c.log, err = c.logger(c.logLevel)
		if err != nil {
			return err
		}
		c.dtime = dtime.New(c.log, c.Clipboard(c.log))
		if c.Configure != nil {
			c.Configure(c.dtime)
		}
		return fn(ctx)
	}
}

// session acquires the console, runs fn against it and always releases it
func (c *CLI) session(fn func(stdout io.Writer) error) (err error) {
	session, err := c.Console()
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, session.Close())
	}()
	return fn(session.Stdout)
}

func (c *CLI) Parse(ctx context.Context, args ...string) error {
	args, input, literal := normalize(args)
	cli := cli.New("dtime", "convert between dates and discord timestamps")
	cli.Flag("log", "log configures the log level").Enum(&c.logLevel, "debug", "info", "warn", "error").Default("info")

	{ // gui
		in := &GUI{}
		cmd := in.command(cli)
		cmd.Run(c.wrap(func(ctx context.Context) error {
			return c.GUI(ctx, in)
		}))
	}

	{ // now [--copy]
		in := &Now{}
		cmd := in.command(cli)
		cmd.Run(c.wrap(func(ctx context.Context) error {
			return c.Now(ctx, in)
		}))
	}

	{ // read [--copy] [input...]
		in := &Read{}
		if literal {
			in.literal = &input
		}
		cmd := in.command(cli)
		cmd.Run(c.wrap(func(ctx context.Context) error {
			return c.Read(ctx, in)
		}))
	}

	return cli.Parse(ctx, args...)
}
