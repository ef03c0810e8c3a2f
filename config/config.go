package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Port            string
	Timezone        string
	SeedPaths       []string
	LogMode         string
	ShutdownTimeout time.Duration

	// EnvFile is the .env file that was applied, "" when there was none.
	EnvFile string
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"port":     "port",
	"seed":     "seed_paths",
	"log-mode": "log_mode",
}

// Load layers configuration as defaults < config file < environment (.env
// included) < flags. cfgFile may be empty, in which case ./farmtrack.yaml is
// used when present. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (AppConfig, error) {
	var cfg AppConfig
	// Load .env file if it exists
	if err := godotenv.Load(); err == nil {
		cfg.EnvFile = ".env"
	}

	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("tz", "Asia/Bangkok")
	v.SetDefault("seed_paths", []string{"data/crops.json"})
	v.SetDefault("log_mode", "dev")
	v.SetDefault("shutdown_timeout", "10s")
	v.AutomaticEnv()

	v.SetConfigType("yaml")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("farmtrack")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return cfg, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg.Port = strings.TrimSpace(v.GetString("port"))
	cfg.Timezone = strings.TrimSpace(v.GetString("tz"))
	cfg.SeedPaths = splitList(v.GetStringSlice("seed_paths"))
	cfg.LogMode = strings.ToLower(strings.TrimSpace(v.GetString("log_mode")))
	cfg.ShutdownTimeout = v.GetDuration("shutdown_timeout")
	return cfg, cfg.Validate()
}

func (c AppConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port must not be empty")
	}
	if len(c.SeedPaths) == 0 {
		return errors.New("at least one seed path is required")
	}
	switch c.LogMode {
	case "dev", "development", "prod", "production":
	default:
		return fmt.Errorf("unknown log mode %q", c.LogMode)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// Location resolves the configured time zone, falling back to UTC.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// splitList accepts both real lists and comma separated strings.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
