package dtime_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/matryer/is"
	"github.com/matthewmueller/dtime"
	"github.com/matthewmueller/dtime/internal/clipboard"
	"github.com/matthewmueller/dtime/internal/timestamp"
	"github.com/matthewmueller/logs"
)

func newClient(clip clipboard.Writer) *dtime.Client {
	client := dtime.New(logs.Default(), clip)
	client.Clock = clockwork.NewFakeClockAt(time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC))
	client.Location = time.UTC
	return client
}

func TestClean(t *testing.T) {
	is := is.New(t)
	is.Equal(dtime.Clean(`"<t:100:F>"`), "<t:100:F>")
	is.Equal(dtime.Clean(`<t:100:F>`), "<t:100:F>")
	is.Equal(dtime.Clean(" \t\"<t:100:F>"), "<t:100:F>")
	is.Equal(dtime.Clean(`<t:100:F>"`), "<t:100:F>")
	is.Equal(dtime.Clean(`""x""`), `"x"`)
	is.Equal(dtime.Clean(`"`), "")
	is.Equal(dtime.Clean(""), "")
	is.Equal(dtime.Clean("12:00:00 01/01/2024  "), "12:00:00 01/01/2024  ")
}

func TestGenerateNow(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	clip := &clipboard.Memory{}
	client := newClient(clip)
	out, err := client.Generate(ctx, &dtime.Generate{Copy: true})
	is.NoErr(err)
	is.Equal(out.Markup, "<t:1136214245:F>")
	is.True(out.Copied)
	is.Equal(clip.Text, "<t:1136214245:F>")
}

func TestGenerateMoment(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	clip := &clipboard.Memory{}
	client := newClient(clip)
	out, err := client.Generate(ctx, &dtime.Generate{
		Moment: &timestamp.Moment{Year: 1970, Month: 1, Day: 1, Hour: 0, Minute: 1, Second: 40},
	})
	is.NoErr(err)
	is.Equal(out.Markup, "<t:100:F>")
	is.True(!out.Copied)
	is.Equal(clip.Text, "")
}

func TestGenerateInvalid(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	clip := &clipboard.Memory{Text: "untouched"}
	client := newClient(clip)
	out, err := client.Generate(ctx, &dtime.Generate{
		Moment: &timestamp.Moment{Year: 2024, Month: 13, Day: 1},
		Copy:   true,
	})
	is.True(errors.Is(err, timestamp.ErrInvalidDateTime))
	is.Equal(out, nil)
	is.Equal(clip.Text, "untouched")
}

func TestGenerateClipboardUnavailable(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	clip := &clipboard.Memory{Err: errors.New("no display")}
	client := newClient(clip)
	out, err := client.Generate(ctx, &dtime.Generate{Copy: true})
	is.NoErr(err)
	is.Equal(out.Markup, "<t:1136214245:F>")
	is.True(!out.Copied)
}

func TestReadMarkup(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	clip := &clipboard.Memory{}
	client := newClient(clip)
	reading, err := client.Read(ctx, &dtime.Read{Input: "<t:0:F>", Copy: true})
	is.NoErr(err)
	is.Equal(reading.Direction, dtime.ToHuman)
	is.Equal(reading.Input, "<t:0:F>")
	is.Equal(reading.Human, "Thursday, January 01, 1970 at 12:00:00 AM")
	is.Equal(reading.Markup, "")
	// human output is never copied
	is.True(!reading.Copied)
	is.Equal(clip.Text, "")
}

func TestReadQuotedMatchesUnquoted(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	client := newClient(&clipboard.Memory{})
	quoted, err := client.Read(ctx, &dtime.Read{Input: `"<t:100:F>"`})
	is.NoErr(err)
	unquoted, err := client.Read(ctx, &dtime.Read{Input: `<t:100:F>`})
	is.NoErr(err)
	is.Equal(quoted, unquoted)
	is.Equal(quoted.Human, "Thursday, January 01, 1970 at 12:01:40 AM")
}

func TestReadHuman(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	clip := &clipboard.Memory{}
	client := newClient(clip)
	reading, err := client.Read(ctx, &dtime.Read{Input: `  "15:04:05 02/01/2006"`, Copy: true})
	is.NoErr(err)
	is.Equal(reading.Direction, dtime.ToMarkup)
	is.Equal(reading.Markup, "<t:1136214245:F>")
	is.True(reading.Copied)
	is.Equal(clip.Text, "<t:1136214245:F>")
}

func TestReadRoundTrip(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	client := newClient(&clipboard.Memory{})
	client.Location = time.FixedZone("UTC+9", 9*60*60)
	generated, err := client.Read(ctx, &dtime.Read{Input: "08:30:00 25/12/2030"})
	is.NoErr(err)
	reading, err := client.Read(ctx, &dtime.Read{Input: generated.Markup})
	is.NoErr(err)
	is.Equal(reading.Human, "Wednesday, December 25, 2030 at 08:30:00 AM")
	is.True(reading.Time.Equal(generated.Time))
}

func TestReadErrors(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	clip := &clipboard.Memory{}
	client := newClient(clip)

	_, err := client.Read(ctx, &dtime.Read{Input: "<t:abc:F>", Copy: true})
	is.True(errors.Is(err, timestamp.ErrParse))

	_, err = client.Read(ctx, &dtime.Read{Input: "15:04 02/01/2006", Copy: true})
	is.True(errors.Is(err, timestamp.ErrFormat))

	_, err = client.Read(ctx, &dtime.Read{Input: "00:00:00 01/13/2024", Copy: true})
	is.True(errors.Is(err, timestamp.ErrInvalidDateTime))

	_, err = client.Read(ctx, &dtime.Read{Input: "", Copy: true})
	is.True(errors.Is(err, timestamp.ErrFormat))

	is.Equal(clip.Text, "")
}
