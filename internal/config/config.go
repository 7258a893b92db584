package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"SOS_LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	BoardSize int    `yaml:"board-size" env:"SOS_BOARD_SIZE" env-default:"3"`
	Mode      string `yaml:"mode" env:"SOS_MODE" env-default:"simple"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

// Load - reads the yaml file at path; when there is no such file only the environment is used.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Game.BoardSize < entity.MinBoardSize {
		return fmt.Errorf("%w: board-size must be >= %d", apperror.ErrInvalidConfiguration, entity.MinBoardSize)
	}

	if _, err := entity.ParseMode(that.Game.Mode); err != nil {
		return err
	}

	return nil
}

func (that *Game) GetMode() entity.Mode {
	mode, err := entity.ParseMode(that.Mode)
	if err != nil {
		return entity.SimpleMode
	}

	return mode
}
