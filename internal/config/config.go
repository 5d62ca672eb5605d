package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TPS          = 60

	WindowTitle = "Solar Charge Animation (Dev Mode)"

	// Bar dimensions
	BarWidth      = 500
	BarHeight     = 30
	BaseBarHeight = 50 // bottom bar is thicker than the rest
	BarSpacing    = 18
	BaseOffset    = 60 // base bar top, measured from the screen bottom
	BarMargin     = 40 // bars are right-aligned with this margin
	BarRadius     = 8

	// Title
	Title         = "SOLAR CHARGE LEVEL"
	TitleFontSize = 40
	TitleMargin   = 20
	TitleGap      = 30
	DebugFontSize = 14

	// Sun, anchored to the topmost bar
	SunOffsetX    = 140
	SunOffsetY    = BarHeight + 40
	SunCoreRadius = 28
	SunRayInner   = SunCoreRadius + 10
	SunRayOuter   = SunCoreRadius + 26
	SunRays       = 12
	SunRayWidth   = 7
	SunRingWidth  = 6

	AudioFile = "assets/sfx_solar_charging.mp3"
)

var (
	BackgroundColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	BarColor        = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	TextColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	DebugColor      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// BarTimes are the audio times, in seconds, at which each bar appears.
// Mark moments with Space while the clip plays and copy them here.
var BarTimes = []float64{1.48, 2.67, 3.35, 3.82, 4.34, 4.90, 5.35, 5.72, 6.09, 6.54}
