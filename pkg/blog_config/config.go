package blogconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment override, e.g. AIBLOG_SERVER_PORT
const EnvPrefix = "AIBLOG"

// ConfigPathEnv names a YAML config file when --config is not given
const ConfigPathEnv = "AIBLOG_CONFIG"

const (
	LogLevelDebug   = "debug"
	LogLevelError   = "error"
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"

	LogTypeConsole = "console"
	LogTypeFile    = "file"

	SourceDir    = "dir"
	SourceGithub = "github"
)

type ServerSettings struct {
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	Port            int           `mapstructure:"port" validate:"required,min=1,max=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
}

type AISettings struct {
	APIKey    string        `mapstructure:"api_key"`
	BaseURL   string        `mapstructure:"base_url" validate:"omitempty,url"`
	MaxTokens int           `mapstructure:"max_tokens" validate:"min=1,max=64000"`
	Model     string        `mapstructure:"model"`
	Provider  string        `mapstructure:"provider" validate:"required,oneof=anthropic gemini"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"min=0"`
}

type ContentSettings struct {
	APIBaseURL    string        `mapstructure:"api_base_url" validate:"omitempty,url"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl" validate:"min=0"`
	Dir           string        `mapstructure:"dir" validate:"required_if=Source dir"`
	Owner         string        `mapstructure:"owner" validate:"required_if=Source github"`
	Ref           string        `mapstructure:"ref"`
	Repo          string        `mapstructure:"repo" validate:"required_if=Source github"`
	Source        string        `mapstructure:"source" validate:"required,oneof=github dir"`
	Token         string        `mapstructure:"token"`
	WebhookSecret string        `mapstructure:"webhook_secret" validate:"required_if=Source github"`
}

type DatabaseSettings struct {
	Path string `mapstructure:"path" validate:"required"`
}

// LoggerSettings selects console or rotating file logging
type LoggerSettings struct {
	FilePath   string `mapstructure:"file_path"`
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxSize    int    `mapstructure:"max_size"`
}

type ChatSettings struct {
	HistoryLimit int    `mapstructure:"history_limit" validate:"min=1,max=100"`
	Persona      string `mapstructure:"persona"`
}

type Config struct {
	AI       AISettings       `mapstructure:"ai"`
	Chat     ChatSettings     `mapstructure:"chat"`
	Content  ContentSettings  `mapstructure:"content"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Server   ServerSettings   `mapstructure:"server"`
}

var defaults = map[string]any{
	"ai.api_key":    "",
	"ai.base_url":   "",
	"ai.max_tokens": 2048,
	"ai.model":      "",
	"ai.provider":   "anthropic",
	"ai.timeout":    "60s",

	"chat.history_limit": 10,
	"chat.persona":       "",

	"content.api_base_url":   "",
	"content.cache_ttl":      "5m",
	"content.dir":            "content/posts",
	"content.owner":          "",
	"content.ref":            "",
	"content.repo":           "",
	"content.source":         SourceDir,
	"content.token":          "",
	"content.webhook_secret": "",

	"database.path": "data/aiblog.db",

	"logger.file_path":   "logs/aiblog.log",
	"logger.log_level":   LogLevelInfo,
	"logger.log_type":    LogTypeConsole,
	"logger.max_age":     28,
	"logger.max_backups": 3,
	"logger.max_size":    10,

	"server.allowed_origins":  []string{"*"},
	"server.port":             8080,
	"server.shutdown_timeout": "15s",
}

// plain variables used by the earlier bot deployment
var legacyEnv = map[string][]string{
	"ai.api_key":             {"AI_API_KEY"},
	"content.owner":          {"GITHUB_OWNER"},
	"content.repo":           {"GITHUB_REPO"},
	"content.token":          {"GITHUB_TOKEN"},
	"content.webhook_secret": {"GITHUB_WEBHOOK_SECRET"},
	"server.port":            {"PORT"},
}

var providerKeyEnv = map[string]string{
	"anthropic": "ANTHROPIC_API_KEY",
	"gemini":    "GEMINI_API_KEY",
}

// Load reads defaults, then the optional YAML file at path (or $AIBLOG_CONFIG),
// then environment overrides, and validates the result
func Load(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, names := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(append([]string{key, prefixed}, names...)...); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.AI.APIKey == "" {
		cfg.AI.APIKey = os.Getenv(providerKeyEnv[cfg.AI.Provider])
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every section of the config
func (cfg *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("validation failed for Config: %w", err)
	}

	return cfg.Logger.validateFile()
}

func (settings *LoggerSettings) validateFile() error {
	if settings.LogType != LogTypeFile {
		return nil
	}

	if settings.FilePath == "" {
		return errors.New("file path is required for file logger")
	}
	if settings.MaxSize < 1 || settings.MaxSize > 100 {
		return errors.New("max size must be between 1 and 100 MB")
	}
	if settings.MaxBackups < 1 || settings.MaxBackups > 10 {
		return errors.New("max backups must be between 1 and 10")
	}
	if settings.MaxAge < 1 || settings.MaxAge > 365 {
		return errors.New("max age must be between 1 and 365 days")
	}

	return nil
}
