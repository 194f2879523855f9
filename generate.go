package dtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/matthewmueller/dtime/internal/timestamp"
)

type Generate struct {
	// Moment to encode. Defaults to the current time.
	Moment *timestamp.Moment
	// Copy the markup to the clipboard
	Copy bool
}

type Generated struct {
	Markup string
	Time   time.Time
	Copied bool
}

func (c *Client) Generate(ctx context.Context, in *Generate) (*Generated, error) {
	t := c.Now()
	if in.Moment != nil {
		var err error
		t, err = in.Moment.Time(c.location())
		if err != nil {
			return nil, err
		}
	}
	out := &Generated{
		Markup: timestamp.Format(t.Unix()),
		Time:   t,
	}
	c.log.DebugContext(ctx, "generated timestamp",
		slog.Int64("epoch", t.Unix()),
		slog.String("relative", humanize.RelTime(t, c.Clock.Now(), "ago", "from now")),
	)
	if in.Copy {
		out.Copied = c.copy(ctx, out.Markup)
	}
	return out, nil
}
