package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors
// defaults/breakout.yaml and is the last fallback when no file parses.
func DefaultConfig() Config {
	return Config{
		Surface: SurfaceConfig{
			MinWidth:     360,
			MaxWidth:     768,
			AspectWidth:  3,
			AspectHeight: 4,
		},
		Paddle: PaddleConfig{
			WidthRatio:   0.2,
			Height:       10,
			BottomMargin: 10,
		},
		Bricks: BricksConfig{
			Rows:    5,
			Columns: 8,
			Height:  20,
			Padding: 5,
		},
		Ball: BallConfig{
			Radius: 8,
			Speed:  7.5,
		},
		Render: RenderConfig{
			Color:      "#0095DD",
			Background: "#FFFFFF",
		},
		Terminal: TerminalConfig{
			TickRate:   60,
			CellWidth:  8,
			CellHeight: 16,
		},
		Window: WindowConfig{
			Title:  "Brickbreak",
			Width:  540,
			Height: 720,
			TPS:    60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
