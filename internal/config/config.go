// Package config loads server configuration from defaults, an optional YAML
// file, .env files and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/classboard/internal/board"
	"github.com/mmynk/classboard/internal/models"
	"github.com/mmynk/classboard/pkg/logging"
)

// Config is the full server configuration.
type Config struct {
	Addr       string `yaml:"addr" validate:"required"`
	LogLevel   string `yaml:"log_level" validate:"oneof=debug info warn error"`
	StaticDir  string `yaml:"static_dir"`
	ProjectDir string `yaml:"project_dir" validate:"required"`

	Storage  StorageConfig  `yaml:"storage"`
	Board    BoardConfig    `yaml:"board"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

// StorageConfig selects where the board is saved.
type StorageConfig struct {
	Driver        string `yaml:"driver" validate:"oneof=sqlite redis"`
	SQLitePath    string `yaml:"sqlite_path" validate:"required_if=Driver sqlite"`
	RedisAddr     string `yaml:"redis_addr" validate:"required_if=Driver redis"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db" validate:"gte=0"`
	RedisPrefix   string `yaml:"redis_prefix"`
}

// BoardConfig bounds the board.
type BoardConfig struct {
	MinGroups            int            `yaml:"min_groups" validate:"gte=1"`
	MaxGroups            int            `yaml:"max_groups" validate:"gtefield=MinGroups"`
	DefaultGroups        int            `yaml:"default_groups" validate:"gte=1"`
	DefaultCapacityClass string         `yaml:"default_capacity_class" validate:"required"`
	Capacities           map[string]int `yaml:"capacities" validate:"required,min=1,dive,keys,required,endkeys,gt=0"`
	HistoryLimit         int            `yaml:"history_limit" validate:"gte=0"`
	Locale               string         `yaml:"locale" validate:"required"`
}

// AnalysisConfig selects the model backend. Provider "none" disables the
// remote call; requests then get a "not configured" message.
type AnalysisConfig struct {
	Provider string        `yaml:"provider" validate:"oneof=none openai gemini"`
	APIKey   string        `yaml:"api_key"`
	Model    string        `yaml:"model"`
	BaseURL  string        `yaml:"base_url" validate:"omitempty,url"`
	Timeout  time.Duration `yaml:"timeout" validate:"gt=0"`
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() Config {
	limits := board.DefaultLimits()
	caps := make(map[string]int, len(limits.Capacities))
	for class, n := range limits.Capacities {
		caps[string(class)] = n
	}
	return Config{
		Addr:       ":8080",
		LogLevel:   "info",
		StaticDir:  "./static",
		ProjectDir: "./data/projects",
		Storage: StorageConfig{
			Driver:      "sqlite",
			SQLitePath:  "./data/classboard.db",
			RedisPrefix: "classboard:",
		},
		Board: BoardConfig{
			MinGroups:            limits.MinGroups,
			MaxGroups:            limits.MaxGroups,
			DefaultGroups:        limits.DefaultGroups,
			DefaultCapacityClass: string(limits.DefaultCapacityClass),
			Capacities:           caps,
			HistoryLimit:         100,
			Locale:               "en",
		},
		Analysis: AnalysisConfig{
			Timeout: 60 * time.Second,
		},
	}
}

// Load builds the configuration. path may be empty to skip the YAML file.
// envFiles are loaded with godotenv when they exist and never override
// variables already set in the environment.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
		slog.Debug("Loaded env file", "path", f)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	resolveAnalysis(&cfg.Analysis)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints and cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	b := c.Board
	if b.DefaultGroups < b.MinGroups || b.DefaultGroups > b.MaxGroups {
		return fmt.Errorf("invalid config: default_groups %d outside [%d, %d]", b.DefaultGroups, b.MinGroups, b.MaxGroups)
	}
	if _, ok := b.Capacities[b.DefaultCapacityClass]; !ok {
		return fmt.Errorf("invalid config: default_capacity_class %q has no capacity", b.DefaultCapacityClass)
	}
	return nil
}

// Limits converts the board section for the board package.
func (c Config) Limits() board.Limits {
	caps := make(models.CapacityTable, len(c.Board.Capacities))
	for class, n := range c.Board.Capacities {
		caps[models.CapacityClass(class)] = n
	}
	return board.Limits{
		MinGroups:            c.Board.MinGroups,
		MaxGroups:            c.Board.MaxGroups,
		DefaultGroups:        c.Board.DefaultGroups,
		DefaultCapacityClass: models.CapacityClass(c.Board.DefaultCapacityClass),
		Capacities:           caps,
	}
}

// Level returns the slog level for LogLevel.
func (c Config) Level() slog.Level {
	return logging.ParseLevel(c.LogLevel)
}

func applyEnv(cfg *Config) error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	var errs []error
	num := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}

	str("CLASSBOARD_ADDR", &cfg.Addr)
	str("CLASSBOARD_STATIC_DIR", &cfg.StaticDir)
	str("CLASSBOARD_PROJECT_DIR", &cfg.ProjectDir)
	str("CLASSBOARD_STORAGE_DRIVER", &cfg.Storage.Driver)
	str("CLASSBOARD_SQLITE_PATH", &cfg.Storage.SQLitePath)
	str("CLASSBOARD_REDIS_ADDR", &cfg.Storage.RedisAddr)
	str("CLASSBOARD_REDIS_PASSWORD", &cfg.Storage.RedisPassword)
	num("CLASSBOARD_REDIS_DB", &cfg.Storage.RedisDB)
	num("CLASSBOARD_HISTORY_LIMIT", &cfg.Board.HistoryLimit)
	str("CLASSBOARD_LOCALE", &cfg.Board.Locale)
	str("CLASSBOARD_ANALYSIS_PROVIDER", &cfg.Analysis.Provider)
	str("CLASSBOARD_ANALYSIS_MODEL", &cfg.Analysis.Model)
	str("CLASSBOARD_ANALYSIS_BASE_URL", &cfg.Analysis.BaseURL)
	if v, ok := os.LookupEnv("CLASSBOARD_ANALYSIS_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("CLASSBOARD_ANALYSIS_TIMEOUT: %w", err))
		} else {
			cfg.Analysis.Timeout = d
		}
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	return nil
}

// resolveAnalysis fills the API key from the provider's usual variable and
// picks a provider from whichever key is present when none is set.
func resolveAnalysis(a *AnalysisConfig) {
	openaiKey := os.Getenv("OPENAI_API_KEY")
	geminiKey := os.Getenv("GEMINI_API_KEY")

	if a.Provider == "" {
		switch {
		case geminiKey != "":
			a.Provider = "gemini"
		case openaiKey != "":
			a.Provider = "openai"
		default:
			a.Provider = "none"
		}
	}
	if a.APIKey == "" {
		switch a.Provider {
		case "openai":
			a.APIKey = openaiKey
		case "gemini":
			a.APIKey = geminiKey
		}
	}
}
