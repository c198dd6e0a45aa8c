package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Setting keys. Each one is also a CLI flag and a BALLSORT_* variable.
const (
	KeyFPS    = "fps"
	KeySeed   = "seed"
	KeyDB     = "db"
	KeyLocale = "locale"
	KeySound  = "sound"
	KeyMusic  = "music"
	KeyDebug  = "debug"
	KeyConfig = "config"
)

const settingsName = "settings"

// Settings are the runtime options shared by every frontend.
type Settings struct {
	FPS        int
	Seed       int64
	DBPath     string
	Locale     string
	Sound      bool
	Music      bool
	Debug      bool
	ConfigPath string // Custom ballsort.yaml, empty for the search order
}

// NewViper returns a viper instance with defaults, BALLSORT_* environment
// binding and ~/.ballsort/settings.yaml as the optional settings file.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyFPS, 60)
	v.SetDefault(KeySeed, int64(0))
	v.SetDefault(KeyDB, "")
	v.SetDefault(KeyLocale, "en")
	v.SetDefault(KeySound, true)
	v.SetDefault(KeyMusic, true)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyConfig, "")

	v.SetEnvPrefix("BALLSORT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(settingsName)
	v.SetConfigType("yaml")
	if dir := HomeDir(); dir != "" {
		v.AddConfigPath(dir)
	}

	return v
}

// LoadSettings reads the optional settings file and resolves every key.
// A missing settings file is not an error.
func LoadSettings(v *viper.Viper) (Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	s := Settings{
		FPS:        v.GetInt(KeyFPS),
		Seed:       v.GetInt64(KeySeed),
		DBPath:     v.GetString(KeyDB),
		Locale:     v.GetString(KeyLocale),
		Sound:      v.GetBool(KeySound),
		Music:      v.GetBool(KeyMusic),
		Debug:      v.GetBool(KeyDebug),
		ConfigPath: v.GetString(KeyConfig),
	}

	if s.FPS <= 0 {
		return s, fmt.Errorf("fps must be positive, got %d", s.FPS)
	}
	if s.DBPath == "" {
		if dir := HomeDir(); dir != "" {
			s.DBPath = filepath.Join(dir, "records.db")
		}
	}
	return s, nil
}
