// Package config loads application configuration from the environment and
// from small YAML files.
//
// It wraps `github.com/joho/godotenv`, `github.com/caarlos0/env/v11` and
// `gopkg.in/yaml.v3`:
//
//   - LoadEnv loads one or more `.env` files (the default `.env` in the
//     working directory when called without arguments).
//   - Load parses the environment into any struct using `env` field tags and
//     caches the result per type for the lifetime of the process.
//   - LoadYAMLMap reads flat `key: value` YAML files, used for template
//     override tables that are awkward to express in a single env variable.
//
// # Usage
//
//	type FlashConfig struct {
//	    ViewShare string            `env:"FLASH_VIEW_SHARE" envDefault:"messages"`
//	    Views     map[string]string `env:"FLASH_VIEWS"`
//	}
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
//	var cfg FlashConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Subsequent calls to `config.Load(&cfg)` are served from the in-memory cache.
// A failed parse is not cached, so a later call can succeed once the
// environment is fixed.
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - ErrParsingConfig – failed to parse env vars into struct.
//   - ErrInvalidConfigType – target is not a struct.
//   - ErrConfigNotLoaded – requested config type has not been loaded yet.
//   - ErrNilPointer – nil pointer passed to Load/MustLoad.
//   - ErrLoadingEnvFile – a .env file could not be loaded.
//   - ErrReadingFile, ErrParsingYAML – YAML map loading failures.
//
// # Testing Helpers
//
// Use ResetCache to clear the cache between tests or ForceReloadConfig to
// re-parse a struct after the environment changes.
package config
