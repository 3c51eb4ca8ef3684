package config

// Default configuration values.
const (
	DefaultSize            = 120.0
	DefaultWidth           = 12.0
	DefaultBackgroundColor = "#e6e6e6"

	// Gradient stops
	DefaultColor1 = "#00e0ff"
	DefaultColor2 = "#146eff"

	// Label
	DefaultLabelColor    = "#333333"
	DefaultLabelFontSize = "24"

	// Environment overrides
	EnvFill = "SVGPROGRESS_FILL"
	EnvSize = "SVGPROGRESS_SIZE"
)
