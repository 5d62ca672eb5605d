package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/solar-charge/internal/config"
)

// Fonts holds the faces used by the screen canvas.
type Fonts struct {
	Title *text.GoTextFace
	Debug *text.GoTextFace
}

// LoadFonts parses the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load title font: %w", err)
	}
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load debug font: %w", err)
	}
	return &Fonts{
		Title: &text.GoTextFace{Source: regular, Size: config.TitleFontSize},
		Debug: &text.GoTextFace{Source: mono, Size: config.DebugFontSize},
	}, nil
}
