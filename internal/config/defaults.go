package config

import (
	_ "embed"
)

//go:embed defaults/ballsort.yaml
var defaultBallSortYAML []byte

// DefaultBallSortConfig returns the built-in Ball Sort configuration.
func DefaultBallSortConfig() BallSortConfig {
	return BallSortConfig{
		Animation: AnimationConfig{
			Step: 5,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Left:   100,
			Top:    250,
			Layout: TubeLayout{
				TubeWidth:    80,
				TubeHeight:   200,
				ItemRadius:   30,
				ItemSpacing:  10,
				CornerRadius: 10,
				Gap:          120,
			},
			FontSize:   24,
			SmallFont:  16,
			Background: "#f0f0f0",
		},
		Terminal: TubeLayout{
			TubeWidth:    9,
			TubeHeight:   13,
			ItemRadius:   1,
			ItemSpacing:  1,
			CornerRadius: 1,
			Gap:          11,
		},
		Audio: AudioConfig{
			SoundDir:   "sound",
			Music:      []string{"background.ogg", "background.mp3"},
			SampleRate: 44100,
			ToneMillis: 100,
			Volume:     0.5,
			Tones: map[string]float64{
				"select": 800,
				"move":   400,
				"win":    1000,
				"error":  200,
			},
		},
	}
}
