package common

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Table   TableConfig
	Extract ExtractConfig
	History HistoryConfig
}

// TableConfig holds reference-table configuration
type TableConfig struct {
	Path         string
	NameColumn   string
	FactorColumn string
}

// ExtractConfig holds extraction and matching configuration
type ExtractConfig struct {
	MaxPages            int
	SimilarityThreshold float64
	Recursive           bool
}

// HistoryConfig holds the optional run-history store configuration
type HistoryConfig struct {
	DBPath string
}

// fileConfig mirrors the optional YAML config file. Every field is
// optional; unset fields keep their env/default values.
type fileConfig struct {
	Table struct {
		Path         string `yaml:"path"`
		NameColumn   string `yaml:"name_column"`
		FactorColumn string `yaml:"factor_column"`
	} `yaml:"table"`
	Extract struct {
		MaxPages            *int     `yaml:"max_pages"`
		SimilarityThreshold *float64 `yaml:"similarity_threshold"`
		Recursive           *bool    `yaml:"recursive"`
	} `yaml:"extract"`
	History struct {
		DBPath string `yaml:"db_path"`
	} `yaml:"history"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Table: TableConfig{
			Path:         getEnv("JOURNAL_TABLE_PATH", ""),
			NameColumn:   getEnv("JOURNAL_NAME_COLUMN", "Journal Name"),
			FactorColumn: getEnv("IMPACT_FACTOR_COLUMN", "JIF"),
		},
		Extract: ExtractConfig{
			MaxPages:            getEnvAsInt("MAX_PAGES_SCANNED", 2),
			SimilarityThreshold: getEnvAsFloat64("SIMILARITY_THRESHOLD", 0.85),
			Recursive:           getEnvAsBool("RECURSIVE_DISCOVERY", true),
		},
		History: HistoryConfig{
			DBPath: getEnv("HISTORY_DB_PATH", ""),
		},
	}
}

// ApplyFile overlays values from a YAML config file onto c. Missing file
// fields leave the existing values untouched.
func (c *Config) ApplyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return WrapError(err, "read config file")
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return WrapError(err, "parse config file")
	}
	if fc.Table.Path != "" {
		c.Table.Path = fc.Table.Path
	}
	if fc.Table.NameColumn != "" {
		c.Table.NameColumn = fc.Table.NameColumn
	}
	if fc.Table.FactorColumn != "" {
		c.Table.FactorColumn = fc.Table.FactorColumn
	}
	if fc.Extract.MaxPages != nil {
		c.Extract.MaxPages = *fc.Extract.MaxPages
	}
	if fc.Extract.SimilarityThreshold != nil {
		c.Extract.SimilarityThreshold = *fc.Extract.SimilarityThreshold
	}
	if fc.Extract.Recursive != nil {
		c.Extract.Recursive = *fc.Extract.Recursive
	}
	if fc.History.DBPath != "" {
		c.History.DBPath = fc.History.DBPath
	}
	return nil
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Table.Path == "" {
		return NewAppError("CONFIG_ERROR", "reference table path is required", ErrInvalidInput)
	}
	if c.Extract.SimilarityThreshold < 0 || c.Extract.SimilarityThreshold > 1 {
		return NewAppError("CONFIG_ERROR",
			fmt.Sprintf("similarity threshold %v outside [0,1]", c.Extract.SimilarityThreshold),
			ErrInvalidInput)
	}
	if c.Extract.MaxPages < 0 {
		return NewAppError("CONFIG_ERROR", "max pages must be >= 0", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
