package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"nl-task-parser/internal/model"
)

// Startup validation errors. Any of them aborts the process.
var (
	ErrMissingAPIKey        = errors.New("OPENAI_API_KEY environment variable is required")
	ErrInvalidAPIKey        = errors.New("invalid OpenAI API key format")
	ErrInvalidReferenceDate = errors.New("parser.reference_date must be YYYY-MM-DD")
	ErrInvalidTimezone      = errors.New("parser.timezone is not a known location")
	ErrInvalidGeneration    = errors.New("invalid generation settings")
)

const (
	apiKeyPrefix = "sk-"

	referenceDateLayout = "2006-01-02"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Completion upstream
	OpenAI OpenAIConfig

	// Parse pipeline
	Parser ParserConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// OpenAIConfig configures the OpenAI-compatible chat-completions upstream.
// Model and BaseURL fall back to the provider's preset when empty.
type OpenAIConfig struct {
	APIKey         string
	Model          string
	MaxTokens      int
	Temperature    float64
	Provider       string
	BaseURL        string
	JSONMode       bool
	RequestTimeout time.Duration
}

type ParserConfig struct {
	// ReferenceDate is the "today" embedded in prompts, YYYY-MM-DD.
	ReferenceDate string
	Timezone      string
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied first without overriding
// variables already set. Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvAliases(v)

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	if cfg.HTTPServer.Mode == "" {
		cfg.HTTPServer.Mode = modeForEnvironment(cfg.Environment.Name)
	}
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = stringList(v, "cors.allowed_origins")

	// Completion upstream
	cfg.OpenAI.APIKey = strings.TrimSpace(v.GetString("openai.api_key"))
	cfg.OpenAI.Model = v.GetString("openai.model")
	cfg.OpenAI.MaxTokens = v.GetInt("openai.max_tokens")
	cfg.OpenAI.Temperature = v.GetFloat64("openai.temperature")
	cfg.OpenAI.Provider = v.GetString("openai.provider")
	cfg.OpenAI.BaseURL = v.GetString("openai.base_url")
	cfg.OpenAI.JSONMode = v.GetBool("openai.json_mode")
	cfg.OpenAI.RequestTimeout = v.GetDuration("openai.request_timeout")

	// Parse pipeline
	cfg.Parser.ReferenceDate = v.GetString("parser.reference_date")
	cfg.Parser.Timezone = v.GetString("parser.timezone")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return ErrMissingAPIKey
	}
	if !strings.HasPrefix(c.OpenAI.APIKey, apiKeyPrefix) {
		return fmt.Errorf("%w: key must start with %q", ErrInvalidAPIKey, apiKeyPrefix)
	}
	if c.OpenAI.MaxTokens <= 0 {
		return fmt.Errorf("%w: openai.max_tokens must be positive, got %d", ErrInvalidGeneration, c.OpenAI.MaxTokens)
	}
	if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
		return fmt.Errorf("%w: openai.temperature must be within [0, 2], got %v", ErrInvalidGeneration, c.OpenAI.Temperature)
	}
	if _, err := time.Parse(referenceDateLayout, c.Parser.ReferenceDate); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidReferenceDate, c.Parser.ReferenceDate)
	}
	if c.Parser.Timezone != "" && c.Parser.Timezone != "Local" {
		if _, err := time.LoadLocation(c.Parser.Timezone); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimezone, c.Parser.Timezone)
		}
	}
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port out of range: %d", c.HTTPServer.Port)
	}
	return nil
}

// bindEnvAliases maps the short variable names used by deployments.
func bindEnvAliases(v *viper.Viper) {
	_ = v.BindEnv("environment.name", "ENVIRONMENT_NAME", "ENVIRONMENT")
	_ = v.BindEnv("http_server.host", "HTTP_SERVER_HOST", "HOST")
	_ = v.BindEnv("http_server.port", "HTTP_SERVER_PORT", "PORT")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.host", "0.0.0.0")
	v.SetDefault("http_server.port", 8000)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:5000"})

	// Completion defaults
	v.SetDefault("openai.max_tokens", 1000)
	v.SetDefault("openai.temperature", 0.1)
	v.SetDefault("openai.provider", "openai")
	v.SetDefault("openai.json_mode", true)
	v.SetDefault("openai.request_timeout", "0s")

	v.SetDefault("parser.reference_date", "2025-06-13")
	v.SetDefault("parser.timezone", "Local")
}

// modeForEnvironment picks gin's mode: debug while developing, release otherwise.
func modeForEnvironment(env string) string {
	if env == "" || env == string(model.EnvironmentDevelopment) {
		return "debug"
	}
	return "release"
}

// stringList reads a list that may come from YAML or a comma-separated env var.
func stringList(v *viper.Viper, key string) []string {
	var raw []string
	if s, ok := v.Get(key).(string); ok {
		raw = strings.Split(s, ",")
	} else {
		raw = v.GetStringSlice(key)
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
