// Command slimy-demo opens an ebiten window with two text inputs and a
// progress bar that fills as the name input gets longer.
package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/go-drift/slimy/pkg/editing"
	"github.com/go-drift/slimy/pkg/graphics"
	"github.com/go-drift/slimy/pkg/host/ebitenhost"
	"github.com/go-drift/slimy/pkg/theme"
	"github.com/go-drift/slimy/pkg/widgets"
)

const (
	screenWidth  = 480
	screenHeight = 240
	nameLimit    = 24
)

type Game struct {
	host     *ebitenhost.Host
	name     widgets.ID
	greeting widgets.ID
	bar      widgets.ID
	status   string
}

func newGame(th *theme.ThemeData) *Game {
	g := &Game{host: ebitenhost.New(ebitenhost.Options{Theme: th})}
	reg := g.host.Registry()

	g.name = reg.SpawnTextInput(widgets.TextInputConfig{
		Placeholder:  "Your name",
		MaxLength:    nameLimit,
		SubmitPolicy: editing.SubmitClearFocus,
		DebugLabel:   "name",
		OnChanged:    g.nameChanged,
		OnSubmitted: func(name string) {
			g.status = "Hello, " + name + "!"
			log.Printf("submitted name %q", name)
		},
	})
	g.greeting = reg.SpawnTextInput(widgets.TextInputConfig{
		Text:       "Nice to meet you",
		DebugLabel: "greeting",
		Constraints: []editing.Constraint{
			editing.DisallowedCharacters{'\n'},
			editing.MaxLength(40),
		},
	})
	g.bar = reg.SpawnProgressBar(widgets.ProgressBarConfig{
		OnValueChanged: func(v float64) {
			if v >= 1 {
				g.status = "Name is at the limit"
			}
		},
	})

	reg.SetBounds(g.name, graphics.RectFromLTWH(20, 40, 300, 24))
	reg.SetBounds(g.greeting, graphics.RectFromLTWH(20, 90, 300, 24))
	reg.SetBounds(g.bar, graphics.RectFromLTWH(20, 140, 300, th.ProgressBar.Height))
	reg.Focus(g.name)
	return g
}

func (g *Game) nameChanged(name string) {
	bar, ok := g.host.Registry().ProgressBar(g.bar)
	if !ok {
		return
	}
	bar.SetValue(float64(len([]rune(name))) / nameLimit)
}

func (g *Game) Update() error {
	for _, sig := range g.host.Update() {
		if sig.Kind == widgets.SignalFocusChanged {
			log.Printf("%s", sig)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0xF5, 0xF5, 0xF5, 0xFF})
	g.label(screen, "Name (Enter to submit, Tab to switch)", 20, 24)
	g.label(screen, "Greeting", 20, 74)
	g.label(screen, g.status, 20, 170)
	g.host.Draw(screen)
}

func (g *Game) label(screen *ebiten.Image, s string, x, y float64) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.Gray{Y: 0x40})
	text.Draw(screen, s, g.host.Face(), op)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	themePath := flag.String("theme", "", "path to a YAML theme file")
	flag.Parse()

	th := theme.Default()
	if *themePath != "" {
		var err error
		if th, err = theme.Load(*themePath); err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("slimy demo")
	if err := ebiten.RunGame(newGame(th)); err != nil {
		log.Fatal(err)
	}
}
