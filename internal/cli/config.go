package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/deckforge/deckforge/pkg/errors"
)

// Config holds settings read from the config file and environment. Command
// flags take precedence over both.
type Config struct {
	APIKey     string `toml:"api_key"`
	BaseURL    string `toml:"base_url"`
	Model      string `toml:"model"`
	ImageModel string `toml:"image_model"`
	ImageSize  string `toml:"image_size"`
	Theme      string `toml:"theme"`
	Author     string `toml:"author"`
	CacheDir   string `toml:"cache_dir"`
	RedisAddr  string `toml:"redis_addr"`
}

// configPath returns the default config file location, honoring
// XDG_CONFIG_HOME (~/.config/deckforge/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path (or the default location when path
// is empty) and applies environment overrides. A missing file is not an
// error; a file that fails to parse is.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		var err error
		path, err = configPath()
		if err != nil {
			applyEnv(&cfg)
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading config file %s", path)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overrides config file values with DECKFORGE_* environment
// variables.
func applyEnv(cfg *Config) {
	overrides := []struct {
		env string
		dst *string
	}{
		{"DECKFORGE_API_KEY", &cfg.APIKey},
		{"DECKFORGE_BASE_URL", &cfg.BaseURL},
		{"DECKFORGE_MODEL", &cfg.Model},
		{"DECKFORGE_IMAGE_MODEL", &cfg.ImageModel},
		{"DECKFORGE_IMAGE_SIZE", &cfg.ImageSize},
		{"DECKFORGE_THEME", &cfg.Theme},
		{"DECKFORGE_AUTHOR", &cfg.Author},
		{"DECKFORGE_CACHE_DIR", &cfg.CacheDir},
		{"DECKFORGE_REDIS_ADDR", &cfg.RedisAddr},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.dst = v
		}
	}

	// OPENAI_API_KEY works as a fallback so existing environments just work.
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}

// configKey is the context key for the loaded config.
const configKey ctxKey = 1

// withConfig returns a new context with the config attached.
func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the config from ctx, or a zero config when none
// was attached.
func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	return Config{}
}
