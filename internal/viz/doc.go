// Package viz draws step responses in the terminal.
//
//   - [Canvas]: Braille dot canvas, 2x4 dots per cell
//   - [PlotCurve]: response curve with target line and playback cursor
//   - [Graph]: labelled asciigraph plot for non-interactive output
//   - [Player]: Bubble Tea model for editing and playing a spring
//
// # Key Bindings
//
//	←/→   - Duration ±50ms (200..1000)
//	↑/↓   - Bounce ±0.05 (-1..0.6)
//	Space - Play/Pause
//	R     - Rewind
//	P     - Next preset
//	T     - Cycle color themes
//	Q     - Quit
package viz
