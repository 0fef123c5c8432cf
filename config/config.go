package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Backend gateways
	Appwrite AppwriteConfig
	Gemini   GeminiConfig

	// Task domain tuning
	Task TaskConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type AppwriteConfig struct {
	Endpoint   string
	ProjectID  string
	APIKey     string
	DatabaseID string
	TableID    string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type TaskConfig struct {
	// GraceMs is the undo grace window in milliseconds.
	GraceMs int
	// Timezone is the IANA name used for "today" bucketing.
	Timezone string
	// AIRequestsPerMin caps LLM-assisted creation per user; 0 disables.
	AIRequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Appwrite
	cfg.Appwrite.Endpoint = viper.GetString("appwrite.endpoint")
	cfg.Appwrite.ProjectID = viper.GetString("appwrite.project_id")
	cfg.Appwrite.APIKey = viper.GetString("appwrite.api_key")
	cfg.Appwrite.DatabaseID = viper.GetString("appwrite.database_id")
	cfg.Appwrite.TableID = viper.GetString("appwrite.table_id")
	if key := viper.GetString("appwrite_api_key"); key != "" {
		cfg.Appwrite.APIKey = key
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	// Task domain
	cfg.Task.GraceMs = viper.GetInt("task.undo_grace_ms")
	cfg.Task.Timezone = viper.GetString("task.timezone")
	cfg.Task.AIRequestsPerMin = viper.GetInt("task.ai_requests_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Appwrite.Endpoint == "" {
		return fmt.Errorf("appwrite.endpoint is required")
	}
	if cfg.Appwrite.ProjectID == "" {
		return fmt.Errorf("appwrite.project_id is required")
	}
	if cfg.Appwrite.APIKey == "" {
		return fmt.Errorf("appwrite.api_key is required")
	}
	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("appwrite.endpoint", "https://cloud.appwrite.io/v1")
	viper.SetDefault("appwrite.database_id", "todo-db")
	viper.SetDefault("appwrite.table_id", "tasks")

	viper.SetDefault("gemini.model", "gemini-2.0-flash")

	viper.SetDefault("task.undo_grace_ms", 4000)
	viper.SetDefault("task.timezone", "UTC")
	viper.SetDefault("task.ai_requests_per_min", 30)
}
