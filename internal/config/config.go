package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig
	Log LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen        bool   `mapstructure:"alt_screen"`
	Width            int    `mapstructure:"width"`
	Height           int    `mapstructure:"height"`
	NamePlaceholder  string `mapstructure:"name_placeholder"`
	EmailPlaceholder string `mapstructure:"email_placeholder"`
	CharLimit        int    `mapstructure:"char_limit"`
}

// LogConfig holds debug log settings. An empty File disables logging.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// LOGINFORM_. path wins over LOGINFORM_CONFIG, which wins over
// ~/.config/loginform/config.toml. A missing default file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.width", 80)
	v.SetDefault("ui.height", 24)
	v.SetDefault("ui.name_placeholder", "Ada Lovelace")
	v.SetDefault("ui.email_placeholder", "ada@example.com")
	v.SetDefault("ui.char_limit", 256)
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("LOGINFORM_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "loginform"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LOGINFORM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
