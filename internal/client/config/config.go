package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/skaewsombat/cookcli/internal/flagx"
)

// Config holds runtime settings for the recipe client.
//
// SessionCheckTimeout bounds the who-am-I call specifically so the UI can
// never hang in the "checking session" state; it is deliberately shorter
// than RequestTimeout. SessionStaleAfter controls how old a completed check
// may get before an interactive command triggers a best-effort re-check.
type Config struct {
	APIBaseURL          string        `yaml:"api_base_url" env:"COOKCLI_API_BASE_URL" env-default:"https://what-will-you-cook-backend.onrender.com/api"`
	RequestTimeout      time.Duration `yaml:"request_timeout" env:"COOKCLI_REQUEST_TIMEOUT" env-default:"15s"`
	SessionCheckTimeout time.Duration `yaml:"session_check_timeout" env:"COOKCLI_SESSION_CHECK_TIMEOUT" env-default:"8s"`
	SessionStaleAfter   time.Duration `yaml:"session_stale_after" env:"COOKCLI_SESSION_STALE_AFTER" env-default:"2m"`
	OnlineCheckInterval time.Duration `yaml:"online_check_interval" env:"COOKCLI_ONLINE_CHECK_INTERVAL" env-default:"30s"`
}

// LoadConfig builds the Config from, in order of increasing precedence:
// struct defaults, an optional config file (-c / -config), environment
// variables, and finally command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if path := flagx.ConfigFileFlag(); path != "" {
		// ReadConfig applies the file and then the environment on top.
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, err
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, err
		}
	}

	parseFlags(cfg)
	return cfg, nil
}
