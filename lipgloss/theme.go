// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import "github.com/fwojciec/lineview"

// Compile-time interface verification.
var _ lineview.Theme = (*Theme)(nil)

// Theme implements lineview.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles lineview.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() lineview.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds
// (Catppuccin Mocha).
func DarkTheme() *Theme {
	return &Theme{
		styles: lineview.Styles{
			Added: lineview.ColorPair{
				Foreground: "#a6e3a1", // Green
				Background: "#004000", // Very dark green
			},
			Removed: lineview.ColorPair{
				Foreground: "#f38ba8", // Red
				Background: "#3f0001", // Very dark red
			},
			Context: lineview.ColorPair{
				Foreground: "#cdd6f4", // Default text
			},
			LineNumber: lineview.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			AddedGutter: lineview.ColorPair{
				Foreground: "#a6e3a1",
				Background: "#004000",
			},
			RemovedGutter: lineview.ColorPair{
				Foreground: "#f38ba8",
				Background: "#3f0001",
			},
			Placeholder: lineview.ColorPair{
				Background: "#181825", // Slightly darker than base
			},
			Fold: lineview.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			Highlight: lineview.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#f9e2af", // Yellow
			},
			Comment: lineview.ColorPair{
				Foreground: "#a6adc8",
				Background: "#313244", // Dark surface
			},
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds
// (Catppuccin Latte).
func LightTheme() *Theme {
	return &Theme{
		styles: lineview.Styles{
			Added: lineview.ColorPair{
				Foreground: "#40a02b", // Green
				Background: "#d4f4d4", // Subtle green background
			},
			Removed: lineview.ColorPair{
				Foreground: "#d20f39", // Red
				Background: "#f4d4d4", // Subtle red background
			},
			Context: lineview.ColorPair{
				Foreground: "#4c4f69", // Default text
			},
			LineNumber: lineview.ColorPair{
				Foreground: "#9ca0b0", // Muted gray
			},
			AddedGutter: lineview.ColorPair{
				Foreground: "#40a02b",
				Background: "#d4f4d4",
			},
			RemovedGutter: lineview.ColorPair{
				Foreground: "#d20f39",
				Background: "#f4d4d4",
			},
			Placeholder: lineview.ColorPair{
				Background: "#e6e9ef", // Light surface
			},
			Fold: lineview.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
			Highlight: lineview.ColorPair{
				Foreground: "#4c4f69",
				Background: "#df8e1d", // Yellow
			},
			Comment: lineview.ColorPair{
				Foreground: "#6c6f85",
				Background: "#e6e9ef", // Light surface
			},
		},
	}
}
