// Package config loads runtime settings from an optional YAML file and
// FARMAPLUS_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "FARMAPLUS_CONFIG_FILE"

// Config holds every runtime option for the admin server.
type Config struct {
	LogLevel    string `mapstructure:"log_level"`
	HTTPAddr    string `mapstructure:"http_addr"`
	BasePath    string `mapstructure:"base_path"`
	LoginPath   string `mapstructure:"login_path"`
	Environment string `mapstructure:"environment"`

	// APIBaseURL points at the backend REST API (e.g. http://localhost:5000/api).
	// When empty the server runs against the bundled dataset.
	APIBaseURL string `mapstructure:"api_base_url"`

	SessionHashKey  string `mapstructure:"session_hash_key"`
	SessionBlockKey string `mapstructure:"session_block_key"`
	CookieSecure    bool   `mapstructure:"cookie_secure"`
}

// Load reads the configuration. A missing config file is not an error; the
// defaults plus environment variables apply.
func Load() (Config, error) {
	vp := viper.New()
	vp.SetDefault("log_level", "info")
	vp.SetDefault("http_addr", ":8080")
	vp.SetDefault("base_path", "/admin")
	vp.SetDefault("login_path", "/login")
	vp.SetDefault("environment", "Development")
	vp.SetDefault("api_base_url", "")
	vp.SetDefault("session_hash_key", "")
	vp.SetDefault("session_block_key", "")
	vp.SetDefault("cookie_secure", false)

	vp.SetEnvPrefix("FARMAPLUS")
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if file := configFilepath(); file != "" {
		vp.SetConfigFile(file)
		if err := vp.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := vp.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

func configFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	if env, ok := os.LookupEnv(configFileEnvName); ok {
		return env
	}
	return *arg
}
