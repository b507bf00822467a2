package flash

import (
	"errors"
	"maps"

	"github.com/dmitrymomot/flashbag/pkg/config"
)

// LoadConfig reads Config from the environment (see the env tags on Config)
// and merges the optional FLASH_VIEWS_FILE overrides.
// Without FLASH_VIEWS and without a views file the built-in overrides apply.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}

	views := make(map[string]string)
	if cfg.ViewsFile != "" {
		fileViews, err := config.LoadYAMLMap(cfg.ViewsFile)
		if err != nil {
			return Config{}, errors.Join(ErrLoadingViews, err)
		}
		maps.Copy(views, fileViews)
	}
	maps.Copy(views, cfg.Views)

	if len(views) == 0 {
		views = DefaultConfig().Views
	}
	cfg.Views = views

	return cfg, nil
}

// MustLoadConfig is like LoadConfig but panics on failure.
func MustLoadConfig() Config {
	cfg, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return cfg
}
