package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/solar-charge/internal/audio"
	"github.com/iburimskiy/solar-charge/internal/config"
	"github.com/iburimskiy/solar-charge/internal/devlog"
	"github.com/iburimskiy/solar-charge/internal/game"
	"github.com/iburimskiy/solar-charge/internal/render"
	"github.com/iburimskiy/solar-charge/internal/session"
)

func run() error {
	player, err := audio.Open(config.AudioFile)
	if err != nil {
		return fmt.Errorf("load audio: %w", err)
	}
	defer player.Close()

	fonts, err := game.LoadFonts()
	if err != nil {
		return err
	}

	meta := audio.ReadMetadata(config.AudioFile)
	log := devlog.New(os.Stdout)
	log.Banner(meta.String())

	if err := player.Play(); err != nil {
		return err
	}
	sess := session.New(player, config.BarTimes, log)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle + " - " + meta.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(config.TPS)

	err = ebiten.RunGame(game.New(sess, render.NewScene(len(config.BarTimes)), fonts, player.Duration()))
	// A closed window ends RunGame without a quit key.
	sess.Stop()
	return err
}

func main() {
	if err := run(); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle))
		os.Exit(1)
	}
}
