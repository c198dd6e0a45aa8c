// Package config provides YAML-based game tuning and runtime settings
// for Ball Sort.
package config

import (
	"errors"
	"fmt"
)

// BallSortConfig contains all tuning for the Ball Sort game.
type BallSortConfig struct {
	Animation AnimationConfig `yaml:"animation"`
	Window    WindowConfig    `yaml:"window"`
	Terminal  TubeLayout      `yaml:"terminal"`
	Audio     AudioConfig     `yaml:"audio"`
}

// AnimationConfig controls the ball transfer animation.
type AnimationConfig struct {
	Step int `yaml:"step"` // Percent of the flight covered per tick (100 = instant)
}

// TubeLayout sizes the tubes and balls. Units are pixels for the window
// and cells for the terminal.
type TubeLayout struct {
	TubeWidth    float64 `yaml:"tube_width"`
	TubeHeight   float64 `yaml:"tube_height"`
	ItemRadius   float64 `yaml:"item_radius"`
	ItemSpacing  float64 `yaml:"item_spacing"`
	CornerRadius float64 `yaml:"corner_radius"`
	Gap          float64 `yaml:"gap"` // Distance between left edges of neighbouring tubes
}

// WindowConfig positions the board in the graphical window.
type WindowConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Left       float64    `yaml:"left"`
	Top        float64    `yaml:"top"`
	Layout     TubeLayout `yaml:",inline"`
	FontSize   float64    `yaml:"font_size"`
	SmallFont  float64    `yaml:"small_font_size"`
	Background string     `yaml:"background"` // Hex RGB, e.g. "#f0f0f0"
}

// AudioConfig locates sound assets and tunes the synthesized fallback tones.
type AudioConfig struct {
	SoundDir   string             `yaml:"sound_dir"`
	Music      []string           `yaml:"music"` // Tried in order, relative to SoundDir
	SampleRate int                `yaml:"sample_rate"`
	ToneMillis int                `yaml:"tone_ms"`
	Volume     float64            `yaml:"volume"` // 0..1 applied to every effect
	Tones      map[string]float64 `yaml:"tones"`  // Cue name to frequency in Hz
}

// Validate rejects values that would stall or break the game.
func (c BallSortConfig) Validate() error {
	var errs []error

	if c.Animation.Step <= 0 || c.Animation.Step > 100 {
		errs = append(errs, fmt.Errorf("animation.step must be in 1..100, got %d", c.Animation.Step))
	}
	if err := c.Window.Layout.validate("window"); err != nil {
		errs = append(errs, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if err := c.Terminal.validate("terminal"); err != nil {
		errs = append(errs, err)
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Audio.ToneMillis <= 0 {
		errs = append(errs, fmt.Errorf("audio.tone_ms must be positive, got %d", c.Audio.ToneMillis))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in 0..1, got %v", c.Audio.Volume))
	}

	return errors.Join(errs...)
}

func (l TubeLayout) validate(section string) error {
	if l.TubeWidth <= 0 || l.TubeHeight <= 0 || l.ItemRadius <= 0 {
		return fmt.Errorf("%s: tube and ball sizes must be positive", section)
	}
	if l.ItemSpacing < 0 || l.CornerRadius < 0 {
		return fmt.Errorf("%s: spacing and corner radius must not be negative", section)
	}
	if l.Gap < l.TubeWidth {
		return fmt.Errorf("%s: gap %.0f is narrower than a tube (%.0f)", section, l.Gap, l.TubeWidth)
	}
	return nil
}

// ToneFor returns the fallback frequency for a cue, or 0 if none is set.
func (a AudioConfig) ToneFor(name string) float64 {
	return a.Tones[name]
}
