package dtime

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/matthewmueller/dtime/internal/timestamp"
)

type Direction int

const (
	// ToHuman converts markup into a human readable date
	ToHuman Direction = iota + 1
	// ToMarkup converts a human readable date into markup
	ToMarkup
)

func (d Direction) String() string {
	switch d {
	case ToHuman:
		return "to-human"
	case ToMarkup:
		return "to-markup"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

type Read struct {
	// Input is either markup (<t:123:F>) or "HH:MM:SS DD/MM/YYYY"
	Input string
	// Copy generated markup to the clipboard. Human readable output is never
	// copied.
	Copy bool
}

type Reading struct {
	// Input after cleaning
	Input     string
	Direction Direction
	Time      time.Time
	// Human is set when converting to human
	Human string
	// Markup is set when converting to markup
	Markup string
	Copied bool
}

func (c *Client) Read(ctx context.Context, in *Read) (*Reading, error) {
	input := Clean(in.Input)
	if strings.HasPrefix(input, timestamp.Prefix) {
		markup, err := timestamp.Parse(input)
		if err != nil {
			return nil, err
		}
		t := markup.Time(c.location())
		c.log.DebugContext(ctx, "read timestamp", slog.Int64("epoch", markup.Epoch))
		return &Reading{
			Input:     input,
			Direction: ToHuman,
			Time:      t,
			Human:     timestamp.Render(t),
		}, nil
	}
	moment, err := timestamp.Scan(input)
	if err != nil {
		return nil, err
	}
	generated, err := c.Generate(ctx, &Generate{
		Moment: &moment,
		Copy:   in.Copy,
	})
	if err != nil {
		return nil, err
	}
	return &Reading{
		Input:     input,
		Direction: ToMarkup,
		Time:      generated.Time,
		Markup:    generated.Markup,
		Copied:    generated.Copied,
	}, nil
}
