// Package terminal hosts loops in a tcell screen
//
// The canvas is rasterized into a render.PixelBuffer and presented as half-block cells,
// two vertically stacked pixels per cell. The last screen row is reserved for the status line.
package terminal
