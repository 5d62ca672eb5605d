package render

import (
	"fmt"

	"github.com/iburimskiy/solar-charge/internal/config"
)

// Overlay is the debug readout drawn in the top-left corner.
type Overlay struct {
	Elapsed  float64
	Length   float64 // clip length in seconds, 0 if unknown
	Revealed int
	Bars     int
	LastMark float64
	HasMark  bool
}

// Lines returns the overlay text, one entry per row.
func (o Overlay) Lines() []string {
	clock := "time " + FormatElapsed(o.Elapsed)
	if o.Length > 0 {
		clock += " / " + FormatElapsed(o.Length)
	}
	lines := []string{
		clock,
		fmt.Sprintf("bars %d/%d", o.Revealed, o.Bars),
	}
	if o.HasMark {
		lines = append(lines, "mark "+FormatElapsed(o.LastMark))
	}
	return append(lines, overlayHelp)
}

const overlayHelp = "SPACE mark  R restart  ESC quit  F1 hide"

// DrawOverlay draws o with the debug font. Readings use the debug color,
// the key help the text color.
func DrawOverlay(c Canvas, o Overlay) {
	lines := o.Lines()
	for i, line := range lines {
		clr := config.DebugColor
		if i == len(lines)-1 {
			clr = config.TextColor
		}
		c.DebugText(line, 12, 12+float64(i)*(config.DebugFontSize+4), clr)
	}
}

// FormatElapsed formats seconds as MM:SS.mmm
func FormatElapsed(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	ms := int64(seconds*1000 + 0.5)
	return fmt.Sprintf("%02d:%02d.%03d", ms/60000, ms/1000%60, ms%1000)
}
