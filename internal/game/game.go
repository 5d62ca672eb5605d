// Package game runs the preview as an ebiten game.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/solar-charge/internal/config"
	"github.com/iburimskiy/solar-charge/internal/render"
	"github.com/iburimskiy/solar-charge/internal/session"
)

var keyCommands = map[ebiten.Key]session.Command{
	ebiten.KeySpace:  session.Mark,
	ebiten.KeyR:      session.Restart,
	ebiten.KeyEscape: session.Quit,
	ebiten.KeyQ:      session.Quit,
}

type Game struct {
	session *session.Session
	scene   *render.Scene
	canvas  *screenCanvas
	length  float64
	keys    []ebiten.Key

	overlay bool
}

// New returns a game showing s; length is the clip length for the overlay.
func New(s *session.Session, scene *render.Scene, fonts *Fonts, length time.Duration) *Game {
	return &Game{
		session: s,
		scene:   scene,
		canvas:  &screenCanvas{fonts: fonts},
		length:  length.Seconds(),
		overlay: true,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay = !g.overlay
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	running, err := g.session.Frame(commandsFor(g.keys))
	if err != nil {
		return err
	}
	if !running {
		return ebiten.Termination
	}
	return nil
}

// commandsFor maps keys to commands, keeping the order ebiten reported them.
func commandsFor(keys []ebiten.Key) []session.Command {
	var cmds []session.Command
	for _, k := range keys {
		if cmd, ok := keyCommands[k]; ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.scene.Draw(g.canvas, g.session.Revealed())

	if g.overlay {
		mark, ok := g.session.LastMark()
		render.DrawOverlay(g.canvas, render.Overlay{
			Elapsed:  g.session.Elapsed(),
			Length:   g.length,
			Revealed: g.session.Revealed(),
			Bars:     g.session.Bars(),
			LastMark: mark,
			HasMark:  ok,
		})
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
