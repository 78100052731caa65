package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
)

type (
	Config struct {
		App   App   `mapstructure:"app"`
		Redis Redis `mapstructure:"redis"`

		Ledger     HTTPConfiguration `mapstructure:"ledger" validate:"required"`
		Connector  HTTPConfiguration `mapstructure:"connector" validate:"required"`
		AdminUsers HTTPConfiguration `mapstructure:"adminusers" validate:"required"`
		Products   HTTPConfiguration `mapstructure:"products"`
		Zendesk    ZendeskConfig     `mapstructure:"zendesk"`

		GatewayAccountCacheTTL time.Duration `mapstructure:"gateway_account_cache_ttl"`
	}

	App struct {
		Env             string        `mapstructure:"env"`
		HTTPPort        int           `mapstructure:"http_port"`
		HTTPTimeout     time.Duration `mapstructure:"http_timeout"`
		GracefulTimeout time.Duration `mapstructure:"graceful_timeout"`
		Name            string        `mapstructure:"name"`
		LogLevel        string        `mapstructure:"log_level"`
	}

	Redis struct {
		Enabled  bool   `mapstructure:"enabled"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
		Db       int    `mapstructure:"db"`
	}

	HTTPConfiguration struct {
		BaseURL       string        `mapstructure:"base_url" validate:"required"`
		Timeout       time.Duration `mapstructure:"timeout"`
		RetryCount    int           `mapstructure:"retry_count"`
		RetryWaitTime int           `mapstructure:"retry_wait_time_ms"`
	}

	ZendeskConfig struct {
		BaseURL   string        `mapstructure:"base_url"`
		APIUser   string        `mapstructure:"api_user"`
		APIToken  string        `mapstructure:"api_token"`
		Timeout   time.Duration `mapstructure:"timeout"`
		GroupID   int64         `mapstructure:"group_id"`
		Subdomain string        `mapstructure:"subdomain"`
	}
)

// Load reads config.yaml from the given search paths and overlays
// SELFSERVICE_* environment variables.
func Load(searchPaths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}
	if len(searchPaths) == 0 {
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("SELFSERVICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// env-only configuration is valid; anything else is fatal
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "go-selfservice")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http_port", 9680)
	v.SetDefault("app.http_timeout", 30*time.Second)
	v.SetDefault("app.graceful_timeout", 10*time.Second)
	v.SetDefault("app.log_level", "info")
	v.SetDefault("gateway_account_cache_ttl", 2*time.Minute)
}
