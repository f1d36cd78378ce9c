// Package config provides YAML-based configuration loading, partial updates and
// presets for the fireworks simulation.
package config

// Shape is the outline a star is drawn with.
type Shape string

const (
	ShapeSquare Shape = "square"
	ShapeCircle Shape = "circle"
	ShapeRandom Shape = "random" // Pick square or circle per star
)

// ColorRandom as StarColor gives every star its own random color.
const ColorRandom = "random"

// FireworksConfig is the flat set of tunable simulation parameters.
// Values are read at each use and never range-checked: out-of-range values
// produce whatever the formulas make of them.
type FireworksConfig struct {
	StarColor       string  `yaml:"star_color"`
	StarShape       Shape   `yaml:"star_shape"`
	StarSize        float64 `yaml:"star_size"`      // Initial side length in pixels
	ExpansionRate   float64 `yaml:"expansion_rate"` // Pixels of growth per second
	BackgroundColor string  `yaml:"background_color"`

	MaxAcceleration float64 `yaml:"max_acceleration"` // Pixels per second squared
	MinAcceleration float64 `yaml:"min_acceleration"`
	MaxVelocity     float64 `yaml:"max_velocity"`     // Pixels per second
	InheritVelocity float64 `yaml:"inherit_velocity"` // Fraction of pointer velocity given to new stars
	BiasSpread      float64 `yaml:"bias_spread"`      // Max deviation from pointer heading, degrees

	SpawnInterval float64 `yaml:"spawn_interval"` // Milliseconds between spawns
	MaxStarCount  int     `yaml:"max_star_count"`
	Lifespan      float64 `yaml:"lifespan"` // Seconds

	CellWidth  float64 `yaml:"cell_width"`  // Pixels per terminal column
	CellHeight float64 `yaml:"cell_height"` // Pixels per terminal row

	ToggleOnFocusBlur bool `yaml:"toggle_on_focus_blur"`
}

// Partial holds an optional value for each setting. Nil fields are left alone by Apply.
type Partial struct {
	StarColor       *string  `yaml:"star_color"`
	StarShape       *Shape   `yaml:"star_shape"`
	StarSize        *float64 `yaml:"star_size"`
	ExpansionRate   *float64 `yaml:"expansion_rate"`
	BackgroundColor *string  `yaml:"background_color"`

	MaxAcceleration *float64 `yaml:"max_acceleration"`
	MinAcceleration *float64 `yaml:"min_acceleration"`
	MaxVelocity     *float64 `yaml:"max_velocity"`
	InheritVelocity *float64 `yaml:"inherit_velocity"`
	BiasSpread      *float64 `yaml:"bias_spread"`

	SpawnInterval *float64 `yaml:"spawn_interval"`
	MaxStarCount  *int     `yaml:"max_star_count"`
	Lifespan      *float64 `yaml:"lifespan"`

	CellWidth  *float64 `yaml:"cell_width"`
	CellHeight *float64 `yaml:"cell_height"`

	ToggleOnFocusBlur *bool `yaml:"toggle_on_focus_blur"`
}

// Apply copies every set field of p into cfg.
func Apply(cfg *FireworksConfig, p Partial) {
	setIf(&cfg.StarColor, p.StarColor)
	setIf(&cfg.StarShape, p.StarShape)
	setIf(&cfg.StarSize, p.StarSize)
	setIf(&cfg.ExpansionRate, p.ExpansionRate)
	setIf(&cfg.BackgroundColor, p.BackgroundColor)

	setIf(&cfg.MaxAcceleration, p.MaxAcceleration)
	setIf(&cfg.MinAcceleration, p.MinAcceleration)
	setIf(&cfg.MaxVelocity, p.MaxVelocity)
	setIf(&cfg.InheritVelocity, p.InheritVelocity)
	setIf(&cfg.BiasSpread, p.BiasSpread)

	setIf(&cfg.SpawnInterval, p.SpawnInterval)
	setIf(&cfg.MaxStarCount, p.MaxStarCount)
	setIf(&cfg.Lifespan, p.Lifespan)

	setIf(&cfg.CellWidth, p.CellWidth)
	setIf(&cfg.CellHeight, p.CellHeight)

	setIf(&cfg.ToggleOnFocusBlur, p.ToggleOnFocusBlur)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
