// Package render draws the charge preview onto a backend-neutral Canvas.
package render

import (
	"image/color"
	"math"

	"github.com/iburimskiy/solar-charge/internal/config"
	"github.com/iburimskiy/solar-charge/internal/layout"
)

// Canvas is the drawing surface for one frame.
type Canvas interface {
	Fill(clr color.Color)
	// LineHeight returns the height of the title font.
	LineHeight() float64
	// FitText draws s with its top-left corner at (x, y), stretched
	// horizontally to width.
	FitText(s string, x, y, width float64, clr color.Color)
	StrokeLine(x1, y1, x2, y2, width float64, clr color.Color)
	StrokeCircle(cx, cy, r, width float64, clr color.Color)
	FillRoundedRect(x, y, w, h, r float64, clr color.Color)
	// DebugText draws s in the monospace debug font.
	DebugText(s string, x, y float64, clr color.Color)
}

// Scene holds everything that stays fixed between frames.
type Scene struct {
	bars []float64
	barX float64
	top  float64
}

// NewScene precomputes the bar stack for the given thresholds count.
func NewScene(count int) *Scene {
	bars := layout.BarPositions(config.ScreenHeight, config.BaseOffset,
		config.BaseBarHeight, config.BarHeight, config.BarSpacing, count)
	return &Scene{
		bars: bars,
		barX: layout.BarX(config.ScreenWidth, config.BarWidth, config.BarMargin),
		top:  layout.Top(bars, config.ScreenHeight-config.BaseOffset),
	}
}

// Bars returns the precomputed y-coordinate of each bar.
func (sc *Scene) Bars() []float64 { return sc.bars }

// Draw renders one frame with the first revealed bars visible.
func (sc *Scene) Draw(c Canvas, revealed int) {
	c.Fill(config.BackgroundColor)
	sc.drawTitle(c)
	sc.drawSun(c)

	if revealed > len(sc.bars) {
		revealed = len(sc.bars)
	}
	for i := 0; i < revealed; i++ {
		sc.drawBar(c, i)
	}
}

func (sc *Scene) drawTitle(c Canvas) {
	h := c.LineHeight()
	c.FitText(config.Title,
		config.TitleMargin, sc.top-h-config.TitleGap,
		config.ScreenWidth-2*config.TitleMargin, config.BarColor)
}

func (sc *Scene) drawBar(c Canvas, i int) {
	h := float64(config.BarHeight)
	if i == 0 {
		h = config.BaseBarHeight
	}
	c.FillRoundedRect(sc.barX, sc.bars[i], config.BarWidth, h, config.BarRadius, config.BarColor)
}

// sunCenter places the sun left of the bars, level with the top of the stack.
func (sc *Scene) sunCenter() (float64, float64) {
	return sc.barX - config.SunOffsetX, sc.top + config.SunOffsetY
}

func (sc *Scene) drawSun(c Canvas) {
	cx, cy := sc.sunCenter()
	for i := 0; i < config.SunRays; i++ {
		angle := float64(i) * (2 * math.Pi / config.SunRays)
		cos, sin := math.Cos(angle), math.Sin(angle)
		c.StrokeLine(
			cx+config.SunRayInner*cos, cy+config.SunRayInner*sin,
			cx+config.SunRayOuter*cos, cy+config.SunRayOuter*sin,
			config.SunRayWidth, config.BarColor)
	}
	// The ring's outer edge sits on the core radius.
	c.StrokeCircle(cx, cy, config.SunCoreRadius-config.SunRingWidth/2.0, config.SunRingWidth, config.BarColor)
}
