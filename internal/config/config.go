// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	WindowTitle  = "Sky Sparks"
	TargetFPS    = 60
	MaxDeltaTime = 0.06

	OverlayOffsetX = 8
	OverlayOffsetY = 16

	// Terminal cells are rasterized as two square dots stacked vertically.
	TermDotSize = 6.0
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	SparkColor      = color.RGBA{135, 206, 235, 255} // skyblue
	TextLightColor  = color.RGBA{240, 240, 240, 255}
)

// ParticleOptions tunes the falling sparks.
type ParticleOptions struct {
	// Cap is the maximum number of particles. Zero derives it from the
	// surface height and Density.
	Cap             int     `toml:"cap"`
	Density         float64 `toml:"density"`
	BaseSize        float64 `toml:"base_size"`
	AddedSize       float64 `toml:"added_size"`
	SpeedMultiplier float64 `toml:"speed_multiplier"`
	BaseAngle       float64 `toml:"base_angle"`
	AddedAngle      float64 `toml:"added_angle"`
	SpawnChance     float64 `toml:"spawn_chance"`
}

// TrailOptions tunes the trails every spark leaves behind.
type TrailOptions struct {
	Cap             int     `toml:"cap"`
	BaseMultiplier  float64 `toml:"base_multiplier"`
	AddedMultiplier float64 `toml:"added_multiplier"`
	SpeedMultiplier float64 `toml:"speed_multiplier"`
	BaseAngle       float64 `toml:"base_angle"`
	AddedAngle      float64 `toml:"added_angle"`
	BaseLife        float64 `toml:"base_life"`
	AddedLife       float64 `toml:"added_life"`
	SpawnChance     float64 `toml:"spawn_chance"`
}

// Colors are hex strings, e.g. "#87ceeb".
type Colors struct {
	Background string `toml:"background"`
	Spark      string `toml:"spark"`
}

type Window struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`
}

// Options is the full tuning table. It is treated as immutable once a field
// has been built from it.
type Options struct {
	Seed      int64           `toml:"seed"`
	FPS       int             `toml:"fps"`
	Debug     bool            `toml:"debug"`
	LogLevel  string          `toml:"log_level"`
	Window    Window          `toml:"window"`
	Colors    Colors          `toml:"colors"`
	Particles ParticleOptions `toml:"particles"`
	Trails    TrailOptions    `toml:"trails"`
}

// Default returns the stock sky-spark tuning.
func Default() Options {
	return Options{
		FPS:      TargetFPS,
		LogLevel: "info",
		Window: Window{
			Width:     ScreenWidth,
			Height:    ScreenHeight,
			Title:     WindowTitle,
			Resizable: true,
		},
		Colors: Colors{
			Background: "#000000",
			Spark:      "#87ceeb",
		},
		Particles: ParticleOptions{
			Density:         50,
			BaseSize:        6,
			AddedSize:       9,
			SpeedMultiplier: 0.2,
			BaseAngle:       0.2,
			AddedAngle:      1,
			SpawnChance:     0.1,
		},
		Trails: TrailOptions{
			Cap:             20,
			BaseMultiplier:  0.6,
			AddedMultiplier: 0.2,
			SpeedMultiplier: 0.1,
			BaseAngle:       -1,
			AddedAngle:      2,
			BaseLife:        30,
			AddedLife:       30,
			SpawnChance:     0.1,
		},
	}
}

// ParticleCap resolves the particle cap for a surface of the given height.
func (o Options) ParticleCap(height int) int {
	if o.Particles.Cap > 0 {
		return o.Particles.Cap
	}
	if o.Particles.Density <= 0 || height <= 0 {
		return 0
	}
	return int(math.Ceil(float64(height) / o.Particles.Density))
}

// Palette parses the configured colours.
func (o Options) Palette() (background, spark color.RGBA, err error) {
	background, err = parseColor(o.Colors.Background, BackgroundColor)
	if err != nil {
		return background, spark, fmt.Errorf("background color: %w", err)
	}
	spark, err = parseColor(o.Colors.Spark, SparkColor)
	if err != nil {
		return background, spark, fmt.Errorf("spark color: %w", err)
	}
	return background, spark, nil
}

func parseColor(hex string, fallback color.RGBA) (color.RGBA, error) {
	if hex == "" {
		return fallback, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Validate reports every out-of-range option at once.
func (o Options) Validate() error {
	var errs []error
	if o.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", o.FPS))
	}
	if o.Window.Width < 0 || o.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window size must not be negative, got %dx%d", o.Window.Width, o.Window.Height))
	}
	p := o.Particles
	if p.Cap < 0 {
		errs = append(errs, fmt.Errorf("particles.cap must not be negative, got %d", p.Cap))
	}
	if p.Cap == 0 && p.Density <= 0 {
		errs = append(errs, errors.New("particles.density must be positive when particles.cap is 0"))
	}
	if p.BaseSize <= 0 {
		errs = append(errs, fmt.Errorf("particles.base_size must be positive, got %v", p.BaseSize))
	}
	if p.AddedSize < 0 {
		errs = append(errs, fmt.Errorf("particles.added_size must not be negative, got %v", p.AddedSize))
	}
	if err := checkChance("particles.spawn_chance", p.SpawnChance); err != nil {
		errs = append(errs, err)
	}
	t := o.Trails
	if t.Cap < 0 {
		errs = append(errs, fmt.Errorf("trails.cap must not be negative, got %d", t.Cap))
	}
	if t.BaseLife < 1 {
		errs = append(errs, fmt.Errorf("trails.base_life must be at least 1, got %v", t.BaseLife))
	}
	if t.AddedLife < 0 {
		errs = append(errs, fmt.Errorf("trails.added_life must not be negative, got %v", t.AddedLife))
	}
	if err := checkChance("trails.spawn_chance", t.SpawnChance); err != nil {
		errs = append(errs, err)
	}
	if _, _, err := o.Palette(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func checkChance(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s must be within [0, 1], got %v", name, v)
	}
	return nil
}
