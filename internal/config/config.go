package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	LLM        LLMConfig
	Redis      RedisConfig
	Logger     LoggerConfig
	Generation GenerationConfig
	Session    SessionConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string
}

// LLMConfig selects and configures the text-generation backend.
// Provider is one of "googleai", "ollama", "openai". ServerURL is the Ollama
// endpoint; BaseURL optionally points the openai provider at a compatible API.
type LLMConfig struct {
	Provider    string
	Model       string
	APIKey      string
	ServerURL   string
	BaseURL     string
	Timeout     time.Duration
	Temperature float64
}

// RedisConfig is optional; an empty Address keeps sessions in memory.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type LoggerConfig struct {
	Env   string
	Level string
}

type GenerationConfig struct {
	// StrictTopicCount rejects topic batches whose size differs from it. Zero disables.
	StrictTopicCount int
}

type SessionConfig struct {
	TTL         time.Duration
	CorrectCoin int64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.allow_origins", "*")

	v.SetDefault("llm.provider", "googleai")
	v.SetDefault("llm.model", "gemini-1.5-flash")
	v.SetDefault("llm.server", "http://localhost:11434")
	v.SetDefault("llm.timeout", 20)
	v.SetDefault("llm.temperature", 0.7)

	v.SetDefault("redis.db", 0)

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("generation.strict_topic_count", 0)

	v.SetDefault("session.ttl", 24*60*60)
	v.SetDefault("session.correct_coin", 10)
}

// LoadConfig reads config.yaml when present, then applies environment overrides.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			AllowOrigins: v.GetString("server.allow_origins"),
		},
		LLM: LLMConfig{
			Provider:    v.GetString("llm.provider"),
			Model:       v.GetString("llm.model"),
			APIKey:      v.GetString("llm.api_key"),
			ServerURL:   v.GetString("llm.server"),
			BaseURL:     v.GetString("llm.base_url"),
			Timeout:     time.Duration(v.GetInt("llm.timeout")) * time.Second,
			Temperature: v.GetFloat64("llm.temperature"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Generation: GenerationConfig{
			StrictTopicCount: v.GetInt("generation.strict_topic_count"),
		},
		Session: SessionConfig{
			TTL:         time.Duration(v.GetInt("session.ttl")) * time.Second,
			CorrectCoin: v.GetInt64("session.correct_coin"),
		},
	}

	// Keys are also read from SECTION_KEY variables (LLM_MODEL, REDIS_ADDRESS, ...)
	// through AutomaticEnv; these are the names that do not follow that scheme.
	// GOOGLE_API_KEY is the conventional credential for the Gemini API.
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = key
	}
	if env := os.Getenv("ENV"); env != "" {
		cfg.Logger.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logger.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late at request time.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "googleai", "openai":
		if c.LLM.APIKey == "" {
			return fmt.Errorf("LLM API key is required for provider %q (set GOOGLE_API_KEY or LLM_API_KEY)", c.LLM.Provider)
		}
	case "ollama":
		if c.LLM.ServerURL == "" {
			return fmt.Errorf("LLM server URL is required for the ollama provider")
		}
	default:
		return fmt.Errorf("unsupported LLM provider: %q", c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("LLM model name cannot be empty")
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM timeout must be positive")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server port must be positive")
	}
	return nil
}

// UseRedis reports whether sessions should be stored in Redis.
func (c *Config) UseRedis() bool {
	return c.Redis.Address != ""
}
