package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Drive  DriveConfig  `yaml:"drive" mapstructure:"drive"`
	Images ImagesConfig `yaml:"images" mapstructure:"images"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Auth   AuthConfig   `yaml:"auth" mapstructure:"auth"`
	Bot    BotConfig    `yaml:"bot" mapstructure:"bot"`
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// DriveConfig locates the directory spreadsheet and image folders in Drive.
type DriveConfig struct {
	CredentialsPath string `yaml:"credentials_path" mapstructure:"credentials_path"`
	FolderName      string `yaml:"folder_name" mapstructure:"folder_name"`
	SheetName       string `yaml:"sheet_name" mapstructure:"sheet_name"`
}

// ImagesConfig paces the per-file Drive permission and URL work.
type ImagesConfig struct {
	RatePerSecond float64 `yaml:"rate_per_second" mapstructure:"rate_per_second"`
}

// ServerConfig configures the dashboard API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// AuthConfig configures dashboard JWT auth.
type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret" mapstructure:"jwt_secret"`
	TokenTTLHours int    `yaml:"token_ttl_hours" mapstructure:"token_ttl_hours"`
}

// BotConfig points at the automation bot's status API.
type BotConfig struct {
	BaseURL          string `yaml:"base_url" mapstructure:"base_url"`
	PollIntervalSecs int    `yaml:"poll_interval_secs" mapstructure:"poll_interval_secs"`
}

// StoreConfig configures the persistence backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	Path        string `yaml:"path" mapstructure:"path"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("DIRECTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("drive.credentials_path", "service-account.json")
	v.SetDefault("drive.folder_name", "Business Directory")
	v.SetDefault("drive.sheet_name", "businesses")
	v.SetDefault("images.rate_per_second", 2.0)
	v.SetDefault("server.port", 8080)
	v.SetDefault("auth.token_ttl_hours", 24)
	v.SetDefault("bot.base_url", "http://localhost:3001")
	v.SetDefault("bot.poll_interval_secs", 2)
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "directory.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
