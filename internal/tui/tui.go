// Package tui is the interactive surface: six editable fields pre-filled with
// the current local time, a generate button and a copy button.
package tui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/matthewmueller/dtime"
	"github.com/matthewmueller/dtime/internal/timestamp"
	"github.com/matthewmueller/logs"
	"github.com/rivo/tview"
)

const (
	Placeholder  = "Generated timestamp will appear here."
	InvalidInput = "Error: Invalid date/time."
)

// State owns the widgets. Handlers receive it instead of reaching for
// package globals.
type State struct {
	log    *slog.Logger
	client *dtime.Client

	Year   *tview.InputField
	Month  *tview.InputField
	Day    *tview.InputField
	Hour   *tview.InputField
	Minute *tview.InputField
	Second *tview.InputField
	Output *tview.TextView
	Hint   *tview.TextView
}

// New state pre-filled with the client's current time
func New(log *slog.Logger, client *dtime.Client) *State {
	now := timestamp.FromTime(client.Now())
	return &State{
		log:    log,
		client: client,
		Year:   numberField("Year", now.Year, 6),
		Month:  numberField("Month", now.Month, 4),
		Day:    numberField("Day", now.Day, 4),
		Hour:   numberField("Hour", now.Hour, 4),
		Minute: numberField("Minute", now.Minute, 4),
		Second: numberField("Second", now.Second, 4),
		Output: tview.NewTextView().SetText(Placeholder).SetTextAlign(tview.AlignCenter),
		Hint:   tview.NewTextView().SetTextAlign(tview.AlignCenter),
	}
}

func numberField(label string, value, width int) *tview.InputField {
	return tview.NewInputField().
		SetLabel(label).
		SetText(strconv.Itoa(value)).
		SetFieldWidth(width).
		SetAcceptanceFunc(func(_ string, ch rune) bool {
			return ch >= '0' && ch <= '9'
		})
}

// Moment read from the fields
func (s *State) Moment() (timestamp.Moment, error) {
	var m timestamp.Moment
	fields := []struct {
		input *tview.InputField
		value *int
	}{
		{s.Year, &m.Year},
		{s.Month, &m.Month},
		{s.Day, &m.Day},
		{s.Hour, &m.Hour},
		{s.Minute, &m.Minute},
		{s.Second, &m.Second},
	}
	for _, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field.input.GetText()))
		if err != nil {
			return m, timestamp.ErrInvalidDateTime
		}
		*field.value = n
	}
	return m, nil
}

// Generate encodes the fields into the output
func (s *State) Generate(ctx context.Context) {
	log := logs.Scope(s.log)
	moment, err := s.Moment()
	if err != nil {
		log.Debug("invalid field", slog.String("error", err.Error()))
		s.Output.SetText(InvalidInput)
		s.Hint.SetText("")
		return
	}
	generated, err := s.client.Generate(ctx, &dtime.Generate{Moment: &moment})
	if err != nil {
		log.Debug("invalid moment", slog.String("error", err.Error()))
		s.Output.SetText(InvalidInput)
		s.Hint.SetText("")
		return
	}
	s.Output.SetText(generated.Markup)
	s.Hint.SetText(humanize.RelTime(generated.Time, s.client.Clock.Now(), "ago", "from now"))
}

// Copy the output to the clipboard when it holds a timestamp. Returns
// whether anything was copied.
func (s *State) Copy(ctx context.Context) (bool, error) {
	text := s.Output.GetText(true)
	if !strings.Contains(text, timestamp.Prefix) {
		return false, nil
	}
	if err := s.client.Copy(ctx, text); err != nil {
		return false, err
	}
	return true, nil
}

// Layout the widgets inside app. Escape and the quit button stop the app.
func (s *State) Layout(ctx context.Context, app *tview.Application) tview.Primitive {
	quit := app.Stop
	log := logs.Scope(s.log)
	copyToClipboard := func() {
		copied, err := s.Copy(ctx)
		if err != nil {
			log.Warn("unable to copy to clipboard", slog.String("error", err.Error()))
			s.Hint.SetText("Unable to copy to clipboard.")
			return
		}
		if copied {
			s.Hint.SetText("Copied to clipboard.")
		}
	}

	date := tview.NewForm().
		SetHorizontal(true).
		AddFormItem(s.Year).
		AddFormItem(s.Month).
		AddFormItem(s.Day)
	clock := tview.NewForm().
		SetHorizontal(true).
		AddFormItem(s.Hour).
		AddFormItem(s.Minute).
		AddFormItem(s.Second)
	buttons := tview.NewForm().
		SetButtonsAlign(tview.AlignCenter).
		AddButton("Generate Timestamp", func() { s.Generate(ctx) }).
		AddButton("Copy to Clipboard", copyToClipboard).
		AddButton("Quit", quit)
	for _, form := range []*tview.Form{date, clock, buttons} {
		form.SetCancelFunc(quit)
	}

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(date, 3, 0, true).
		AddItem(clock, 3, 0, false).
		AddItem(s.Output, 1, 0, false).
		AddItem(s.Hint, 1, 0, false).
		AddItem(buttons, 3, 0, false)
	root.SetBorder(true).SetTitle(" Discord Timestamp Generator ")

	// ctrl-n moves between the rows, ctrl-g and ctrl-y work from anywhere
	rows := []tview.Primitive{date, clock, buttons}
	focus := 0
	root.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlG:
			s.Generate(ctx)
			return nil
		case tcell.KeyCtrlY:
			copyToClipboard()
			return nil
		case tcell.KeyCtrlN:
			focus = (focus + 1) % len(rows)
			app.SetFocus(rows[focus])
			return nil
		}
		return event
	})
	return root
}

// Run the surface until the user quits
func Run(ctx context.Context, log *slog.Logger, client *dtime.Client) error {
	app := tview.NewApplication()
	state := New(log, client)
	root := state.Layout(ctx, app)
	return app.SetRoot(root, true).EnableMouse(true).Run()
}
