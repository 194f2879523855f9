// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/matthewmueller/logs"
	"golang.design/x/clipboard"
)

type Writer interface {
	Write(ctx context.Context, text string) error
}

// System clipboard. On Windows and macOS the text outlives the process. On
// X11 the selection is only served while the process runs, so each write
// holds on briefly to let a clipboard manager take it over. Without one the
// text is gone once a console command exits.
func System(log *slog.Logger) Writer {
	return &system{
		log:   log,
		clock: clockwork.NewRealClock(),
		hold:  holdFor(runtime.GOOS),
	}
}

// Hold is how long a write waits on X11 for the selection to change hands
const Hold = 250 * time.Millisecond

func holdFor(goos string) time.Duration {
	switch goos {
	case "windows", "darwin", "ios", "android":
		return 0
	}
	return Hold
}

type system struct {
	log   *slog.Logger
	clock clockwork.Clock
	hold  time.Duration
	once  sync.Once
	err   error
}

var _ Writer = (*system)(nil)

func (s *system) Write(ctx context.Context, text string) error {
	log := logs.Scope(s.log)
	s.once.Do(func() {
		s.err = clipboard.Init()
	})
	if s.err != nil {
		return fmt.Errorf("clipboard: unable to initialize: %w", s.err)
	}
	changed := clipboard.Write(clipboard.FmtText, []byte(text))
	log.Debug("clipboard written", slog.Int("bytes", len(text)))
	if taken := wait(ctx, s.clock, changed, s.hold); taken {
		log.Debug("clipboard taken over")
	}
	return nil
}

// wait until the selection changes hands, the hold elapses or ctx is done.
// Reports whether the selection changed hands.
func wait(ctx context.Context, clock clockwork.Clock, changed <-chan struct{}, hold time.Duration) bool {
	if hold <= 0 {
		return false
	}
	select {
	case <-changed:
		return true
	case <-clock.After(hold):
		return false
	case <-ctx.Done():
		return false
	}
}

// Memory clipboard for tests and headless environments
type Memory struct {
	Text string
	// Err is returned from every write when set
	Err error
}

var _ Writer = (*Memory)(nil)

func (m *Memory) Write(ctx context.Context, text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}
