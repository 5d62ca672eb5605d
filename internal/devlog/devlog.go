// Package devlog prints the console lines used to recalibrate bar timings.
package devlog

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Logger writes timing lines to w. It never affects playback.
type Logger struct {
	w io.Writer

	header lipgloss.Style
	mark   lipgloss.Style
	reveal lipgloss.Style
	muted  lipgloss.Style
}

// New returns a Logger writing to w. Styles are only emitted when w is a
// color-capable terminal.
func New(w io.Writer) *Logger {
	r := lipgloss.NewRenderer(w)
	return &Logger{
		w:      w,
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00")),
		mark:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")),
		reveal: r.NewStyle().Foreground(lipgloss.Color("#FFD700")),
		muted:  r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"}),
	}
}

// Banner prints the usage header shown when the preview starts.
func (l *Logger) Banner(track string) {
	fmt.Fprintln(l.w, l.header.Render("=== Debug Mode Active ==="))
	if track != "" {
		fmt.Fprintln(l.w, l.muted.Render("Track: "+track))
	}
	fmt.Fprintln(l.w, "Press SPACE while listening to mark timestamps.")
	fmt.Fprintln(l.w, "Use these timestamps to update BarTimes.")
	fmt.Fprintln(l.w, l.muted.Render("R restarts the clip, ESC quits."))
	fmt.Fprintln(l.w)
}

// Marked prints a manually marked playback time.
func (l *Logger) Marked(seconds float64) {
	fmt.Fprintln(l.w, l.mark.Render(fmt.Sprintf("Timestamp marked: %.3fs", seconds)))
}

// Revealed prints a bar reveal; n is 1-based.
func (l *Logger) Revealed(n int, at, target float64) {
	fmt.Fprintln(l.w, l.reveal.Render(fmt.Sprintf("Bar %d revealed at audio time %.3fs (target %.3fs)", n, at, target)))
}

func (l *Logger) Restarting() {
	fmt.Fprintln(l.w)
	fmt.Fprintln(l.w, l.muted.Render("Restarting audio..."))
	fmt.Fprintln(l.w)
}
