package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	AlertSinkLog   = "log"
	AlertSinkRedis = "redis"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Scanner  ScannerConfig  `mapstructure:"scanner"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Alerts   AlertsConfig   `mapstructure:"alerts"`
	Redis    RedisConfig    `mapstructure:"redis"`
	History  HistoryConfig  `mapstructure:"history"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	ProxyPort    int           `mapstructure:"proxy_port"`
	APIPort      int           `mapstructure:"api_port"`
	MetricsPort  int           `mapstructure:"metrics_port"`
	BodyLimit    int           `mapstructure:"body_limit"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// ScannerConfig holds the injection toggle and the two script locations.
type ScannerConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	ScannerScriptPath string `mapstructure:"scanner_script_path"`
	UserScriptsDir    string `mapstructure:"user_scripts_dir"`
}

type UpstreamConfig struct {
	Timeout            time.Duration `mapstructure:"timeout"`
	MaxFailures        uint32        `mapstructure:"max_failures"`
	BreakerTimeout     time.Duration `mapstructure:"breaker_timeout"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify"`
	MaxRedirects       int           `mapstructure:"max_redirects"`
}

type AlertsConfig struct {
	Sink    string `mapstructure:"sink"`
	Channel string `mapstructure:"channel"`
	ListKey string `mapstructure:"list_key"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type HistoryConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// CORSConfig governs which page origins may post findings to the API.
type CORSConfig struct {
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	ExposeHeaders    []string `mapstructure:"expose_headers"`
	MaxAge           string   `mapstructure:"max_age"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

var globalConfig Config

func Load(configPath string) error {
	setViperDefaults()
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("could not load main config file: %w", err)
	}
	setDefaultValues(&globalConfig)
	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
		}
		// environment variables alone are enough to run
	}

	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := viper.Unmarshal(out, hooks); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

// setViperDefaults registers every key so AutomaticEnv can override it even
// when no config file is present.
func setViperDefaults() {
	viper.SetDefault("server.proxy_port", 8080)
	viper.SetDefault("server.api_port", 8090)
	viper.SetDefault("server.metrics_port", 9090)
	viper.SetDefault("server.body_limit", 32*1024*1024)
	viper.SetDefault("server.read_timeout", 60*time.Second)
	viper.SetDefault("server.write_timeout", 60*time.Second)
	viper.SetDefault("scanner.enabled", true)
	viper.SetDefault("scanner.scanner_script_path", "frontEndScanner/front-end-scanner.js")
	viper.SetDefault("scanner.user_scripts_dir", "scripts/scripts/front-end")
	viper.SetDefault("upstream.timeout", 60*time.Second)
	viper.SetDefault("upstream.max_failures", 5)
	viper.SetDefault("upstream.breaker_timeout", 30*time.Second)
	viper.SetDefault("upstream.insecure_skip_verify", false)
	viper.SetDefault("upstream.max_redirects", 0)
	viper.SetDefault("alerts.sink", AlertSinkLog)
	viper.SetDefault("alerts.channel", "frontend_scanner:alerts")
	viper.SetDefault("alerts.list_key", "frontend_scanner:alerts")
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("history.ttl", 30*time.Minute)
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("cors.allow_origins", []string{"*"})
	viper.SetDefault("cors.allow_methods", []string{"GET", "POST", "OPTIONS"})
	viper.SetDefault("cors.allow_headers", []string{"Content-Type"})
	viper.SetDefault("cors.allow_credentials", false)
	viper.SetDefault("cors.max_age", "600")
}

func setDefaultValues(cfg *Config) {
	if len(cfg.CORS.AllowMethods) == 0 {
		cfg.CORS.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if cfg.Server.BodyLimit <= 0 {
		cfg.Server.BodyLimit = 32 * 1024 * 1024
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 60 * time.Second
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 60 * time.Second
	}
	if cfg.Alerts.Sink == "" {
		cfg.Alerts.Sink = AlertSinkLog
	}
	if cfg.History.TTL <= 0 {
		cfg.History.TTL = 30 * time.Minute
	}
	if cfg.Upstream.Timeout <= 0 {
		cfg.Upstream.Timeout = 60 * time.Second
	}
	if cfg.Upstream.MaxFailures == 0 {
		cfg.Upstream.MaxFailures = 5
	}
}

func GetConfig() *Config {
	return &globalConfig
}
