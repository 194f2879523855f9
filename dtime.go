package dtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/matthewmueller/dtime/internal/clipboard"
)

func New(log *slog.Logger, clip clipboard.Writer) *Client {
	return &Client{
		log:      log,
		clip:     clip,
		Clock:    clockwork.NewRealClock(),
		Location: time.Local,
	}
}

type Client struct {
	log  *slog.Logger
	clip clipboard.Writer

	Clock    clockwork.Clock
	Location *time.Location
}

// Now in the client's location
func (c *Client) Now() time.Time {
	return c.Clock.Now().In(c.location())
}

// Copy text to the clipboard
func (c *Client) Copy(ctx context.Context, text string) error {
	return c.clip.Write(ctx, text)
}

func (c *Client) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// copy is best-effort: a missing clipboard shouldn't fail a conversion that
// already succeeded.
func (c *Client) copy(ctx context.Context, text string) bool {
	if err := c.Copy(ctx, text); err != nil {
		c.log.WarnContext(ctx, "unable to copy to clipboard", slog.String("error", err.Error()))
		return false
	}
	return true
}
