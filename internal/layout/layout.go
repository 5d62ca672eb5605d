// Package layout computes where the charge bars sit on screen.
package layout

// BarPositions returns the top y-coordinate of count bars, bottom-up.
// Index 0 is the base bar, which starts baseOffset above the bottom edge
// and is baseHeight tall; every other bar is barHeight tall and separated
// from its neighbour by spacing. Positions are not clipped to the screen.
func BarPositions(screenHeight, baseOffset, baseHeight, barHeight, spacing float64, count int) []float64 {
	if count <= 0 {
		return []float64{}
	}
	start := screenHeight - baseOffset
	ys := make([]float64, count)
	ys[0] = start
	for i := 1; i < count; i++ {
		ys[i] = start - baseHeight - spacing - float64(i-1)*(barHeight+spacing)
	}
	return ys
}

// BarX returns the left edge of bars right-aligned with margin.
func BarX(screenWidth, barWidth, margin float64) float64 {
	return screenWidth - barWidth - margin
}

// Top returns the topmost bar position, or fallback when there are no bars.
func Top(ys []float64, fallback float64) float64 {
	if len(ys) == 0 {
		return fallback
	}
	return ys[len(ys)-1]
}
