// Command slimy-term runs the slimy widgets in a terminal.
//
// Usage:
//
//	slimy-term [--theme theme.yaml] [--dump-theme]
//
// Tab moves between inputs, Enter submits, Ctrl+Q quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/slimy/pkg/editing"
	"github.com/go-drift/slimy/pkg/errors"
	"github.com/go-drift/slimy/pkg/graphics"
	"github.com/go-drift/slimy/pkg/host/termhost"
	"github.com/go-drift/slimy/pkg/theme"
	"github.com/go-drift/slimy/pkg/widgets"
)

// tickInterval drives caret blinking between input events.
const tickInterval = 100 * time.Millisecond

type app struct {
	host   *termhost.Host
	search widgets.ID
	tags   widgets.ID
	bar    widgets.ID
	log    []string
}

func main() {
	themePath := flag.String("theme", "", "path to a YAML theme file")
	dumpTheme := flag.Bool("dump-theme", false, "print the effective theme as YAML and exit")
	verbose := flag.Bool("v", false, "include stack traces in error reports")
	flag.Parse()

	if err := run(*themePath, *dumpTheme, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "slimy-term:", err)
		os.Exit(1)
	}
}

func run(themePath string, dumpTheme, verbose bool) (err error) {
	errors.SetHandler(&errors.LogHandler{Verbose: verbose})

	th := theme.Default()
	if themePath != "" {
		if th, err = theme.Load(themePath); err != nil {
			return err
		}
	}
	if dumpTheme {
		data, err := theme.Marshal(th)
		if err != nil {
			return fmt.Errorf("failed to encode theme: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	screen, err := termhost.NewScreen()
	if err != nil {
		return err
	}
	host := termhost.New(screen, termhost.Options{Theme: th})
	if err := host.Init(); err != nil {
		return err
	}
	// Fini runs first so the report lands on a restored terminal.
	defer errors.RecoverWithCallback("slimy-term.run", func(r any) {
		err = fmt.Errorf("event loop panicked: %v", r)
	})
	defer host.Fini()

	a := newApp(host)
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-done:
				return
			}
		}
	}()

	for {
		a.draw()
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch e := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			a.layout()
		case *tcell.EventKey:
			if e.Key() == tcell.KeyCtrlQ {
				return nil
			}
		}
		a.handle(host.Handle(ev))
	}
}

func newApp(host *termhost.Host) *app {
	reg := host.Registry()
	a := &app{host: host}
	a.search = reg.SpawnTextInput(widgets.TextInputConfig{
		Placeholder: "search",
		DebugLabel:  "search",
	})
	a.tags = reg.SpawnTextInput(widgets.TextInputConfig{
		Placeholder: "tags (lowercase letters and commas)",
		MaxLength:   32,
		DebugLabel:  "tags",
		Constraints: []editing.Constraint{
			editing.AllowedCharacters([]rune("abcdefghijklmnopqrstuvwxyz,")),
		},
	})
	a.bar = reg.SpawnProgressBar(widgets.ProgressBarConfig{})
	a.layout()
	reg.Focus(a.search)
	return a
}

func (a *app) layout() {
	w, _ := a.host.Screen().Size()
	width := float64(max(w-4, 10))
	reg := a.host.Registry()
	reg.SetBounds(a.search, graphics.RectFromLTWH(2, 1, width, 3))
	reg.SetBounds(a.tags, graphics.RectFromLTWH(2, 5, width, 3))
	reg.SetBounds(a.bar, graphics.RectFromLTWH(2, 9, width, 1))
}

func (a *app) handle(signals []widgets.Signal) {
	reg := a.host.Registry()
	for _, sig := range signals {
		switch {
		case sig.Kind == widgets.SignalTextChanged && sig.Widget == a.tags:
			if bar, ok := reg.ProgressBar(a.bar); ok {
				in, _ := reg.TextInput(a.tags)
				bar.SetValue(float64(len([]rune(sig.Text))) / float64(in.State().MaxLength()))
			}
		case sig.Kind == widgets.SignalSubmitted:
			a.log = append(a.log, sig.String())
		}
	}
	if len(a.log) > 5 {
		a.log = a.log[len(a.log)-5:]
	}
}

func (a *app) draw() {
	screen := a.host.Screen()
	screen.Clear()
	for i, line := range a.log {
		drawText(screen, 2, 11+i, line)
	}
	drawText(screen, 2, 17, "Tab: next input  Enter: submit  Ctrl+Q: quit")
	a.host.Draw()
}

func drawText(screen tcell.Screen, x, y int, s string) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x += runewidth.RuneWidth(r)
	}
}
