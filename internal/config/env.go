package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DotEnvFile is read from the working directory if present. Real
// environment variables win over its values.
const DotEnvFile = ".env"

// Settings holds process-level options read from the environment.
// The participant roster is not configurable here.
type Settings struct {
	Seed        int64   `env:"WHEEL_SEED"         envDefault:"0"`
	Lang        string  `env:"WHEEL_LANG"         envDefault:"de"    validate:"required,bcp47_language_tag"`
	Sound       bool    `env:"WHEEL_SOUND"        envDefault:"false"`
	WindowScale float64 `env:"WHEEL_WINDOW_SCALE" envDefault:"1"     validate:"gt=0,lte=4"`
	PprofAddr   string  `env:"WHEEL_PPROF_ADDR"                      validate:"omitempty,hostname_port"`
}

var validate = validator.New()

// LoadSettings parses Settings from .env and the process environment.
func LoadSettings() (Settings, error) {
	vars, err := readDotEnv(DotEnvFile)
	if err != nil {
		return Settings{}, err
	}
	for k, v := range env.ToMap(os.Environ()) {
		vars[k] = v
	}
	return parseSettings(env.Options{Environment: vars})
}

// readDotEnv returns the variables of a dotenv file; a missing file is empty.
func readDotEnv(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return vars, nil
}

func parseSettings(opts env.Options) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := validate.Struct(s); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// WindowSize returns the window size for the configured scale.
func (s Settings) WindowSize() (int, int) {
	return int(float64(ScreenWidth) * s.WindowScale), int(float64(ScreenHeight) * s.WindowScale)
}
