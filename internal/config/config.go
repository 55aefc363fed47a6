package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/planetafiscal/docs-extractor/internal/common"
)

// PlaceholderAPIKey is the unedited sample value shipped in .env templates.
// It is rejected at startup exactly like a missing key.
const PlaceholderAPIKey = "sk-tu-api-key-aqui"

// Config holds all application configuration
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Output OutputConfig `mapstructure:"output"`
	LLM    LLMConfig    `mapstructure:"llm"`
	Log    LogConfig    `mapstructure:"log"`
}

// InputConfig holds input-directory configuration
type InputConfig struct {
	Dir string `mapstructure:"dir"`
}

// OutputConfig holds artifact-directory configuration
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// LLMConfig holds completion-API configuration
type LLMConfig struct {
	Model       string        `mapstructure:"model"`
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Temperature float32       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from defaults, an optional YAML file, and the
// environment. A .env file in the working directory is honored when present.
func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	v.SetDefault("input.dir", "datos_entrada")
	v.SetDefault("output.dir", "datos_salida")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.temperature", 0.1)
	v.SetDefault("llm.timeout", "60s")
	v.SetDefault("log.level", "info")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables explicitly for sensitive data
	v.BindEnv("input.dir", "INPUT_DIR")
	v.BindEnv("output.dir", "OUTPUT_DIR")
	v.BindEnv("llm.api_key", "OPENAI_API_KEY")
	v.BindEnv("llm.base_url", "OPENAI_BASE_URL")
	v.BindEnv("llm.model", "OPENAI_MODEL")
	v.BindEnv("llm.temperature", "OPENAI_TEMPERATURE")
	v.BindEnv("llm.timeout", "OPENAI_TIMEOUT")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the loaded configuration can support a batch run.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return common.NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", common.ErrConfiguration)
	}
	if c.LLM.APIKey == PlaceholderAPIKey {
		return common.NewAppError("CONFIG_ERROR", "OPENAI_API_KEY still holds the sample placeholder; set a real key", common.ErrConfiguration)
	}
	if c.Input.Dir == "" {
		return common.NewAppError("CONFIG_ERROR", "input directory is required", common.ErrConfiguration)
	}
	if c.Output.Dir == "" {
		return common.NewAppError("CONFIG_ERROR", "output directory is required", common.ErrConfiguration)
	}
	return nil
}
