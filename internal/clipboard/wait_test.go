package clipboard

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/matryer/is"
)

func TestHoldFor(t *testing.T) {
	is := is.New(t)
	is.Equal(holdFor("linux"), Hold)
	is.Equal(holdFor("freebsd"), Hold)
	is.Equal(holdFor("windows"), time.Duration(0))
	is.Equal(holdFor("darwin"), time.Duration(0))
}

func TestWaitNoHold(t *testing.T) {
	is := is.New(t)
	clock := clockwork.NewFakeClock()
	is.True(!wait(context.Background(), clock, make(chan struct{}), 0))
}

func TestWaitChanged(t *testing.T) {
	is := is.New(t)
	clock := clockwork.NewFakeClock()
	changed := make(chan struct{})
	close(changed)
	is.True(wait(context.Background(), clock, changed, Hold))
}

func TestWaitHoldElapses(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	done := make(chan bool, 1)
	go func() {
		done <- wait(ctx, clock, make(chan struct{}), Hold)
	}()
	is.NoErr(clock.BlockUntilContext(ctx, 1))
	clock.Advance(Hold)
	is.True(!<-done)
}

func TestWaitCanceled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	clock := clockwork.NewFakeClock()
	is.True(!wait(ctx, clock, make(chan struct{}), Hold))
}
