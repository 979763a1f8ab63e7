// Package viz renders arrays and scenario traces for the terminal.
//
//   - [RenderState]: lipgloss panel with capacity, size, fill and slots
//   - [PlotGrowth]: asciigraph chart of capacity and size per step
//   - [Stepper]: Bubble Tea model that walks a scenario session
//
// # Key Bindings
//
//	n/Space - run the next step
//	a       - toggle autoplay
//	q       - quit
package viz
