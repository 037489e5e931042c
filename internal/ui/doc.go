// Package ui owns the terminal presentation primitives shared by the
// pipeline's output code: ANSI color themes selected from the environment,
// accessor functions returning the active theme's escape codes, and the
// lipgloss styles for the completion summary box.
//
// Keeping these here lets the cli package format runs and errors without
// embedding escape sequences, and lets NO_COLOR switch everything off in one
// place.
package ui
