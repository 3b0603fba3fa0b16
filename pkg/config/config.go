/*
Package config manages the TOML config for mnembus runs.

	[files]
	words = "English Words Top 5000.txt"
	pronunciations = "cmudict-0.7b"
	pronunciation_encoding = "latin1"
	batch = "input.txt"

	[search]
	max_rank = 5000
	max_words = 0
	tail_extension = true

	[server]
	max_digits = 32
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mnembus/mnembus/internal/utils"
)

const appDirName = "mnembus"

// Config holds the entire config structure
type Config struct {
	Files  FilesConfig  `toml:"files"`
	Search SearchConfig `toml:"search"`
	Server ServerConfig `toml:"server"`
}

// FilesConfig names the input files.
type FilesConfig struct {
	Words                 string `toml:"words"`
	Pronunciations        string `toml:"pronunciations"`
	PronunciationEncoding string `toml:"pronunciation_encoding"`
	Batch                 string `toml:"batch"`
}

// SearchConfig holds index and search options.
type SearchConfig struct {
	MaxRank       int  `toml:"max_rank"`
	MaxWords      int  `toml:"max_words"`
	TailExtension bool `toml:"tail_extension"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxDigits int `toml:"max_digits"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Files: FilesConfig{
			Words:                 "English Words Top 5000.txt",
			Pronunciations:        "cmudict-0.7b",
			PronunciationEncoding: "latin1",
			Batch:                 "input.txt",
		},
		Search: SearchConfig{
			MaxRank:       5000,
			MaxWords:      0,
			TailExtension: true,
		},
		Server: ServerConfig{
			MaxDigits: 32,
		},
	}
}

// Validate rejects values the engine cannot run with.
func (c *Config) Validate() error {
	if c.Search.MaxRank < 0 {
		return fmt.Errorf("search.max_rank must not be negative, got %d", c.Search.MaxRank)
	}
	if c.Search.MaxWords < 0 {
		return fmt.Errorf("search.max_words must not be negative, got %d", c.Search.MaxWords)
	}
	if c.Server.MaxDigits < 1 {
		return fmt.Errorf("server.max_digits must be at least 1, got %d", c.Server.MaxDigits)
	}
	return nil
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/mnembus
// 2. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", appDirName)
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for mnembus.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "mnembus.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: ~/.config/mnembus/mnembus.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file. Keys missing from the file keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", configPath, err)
	}
	return config, nil
}

// tryPartialParse salvages every well-typed key of a file that failed to decode
// into Config, section by section.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "files"); ok {
		extractFilesConfig(section, &config.Files)
	}
	if section, ok := utils.ExtractSection(tempConfig, "search"); ok {
		extractSearchConfig(section, &config.Search)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if err := config.Validate(); err != nil {
		log.Warnf("Recovered config from %s is invalid: %v. Using all defaults.", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

func extractFilesConfig(data map[string]any, files *FilesConfig) {
	if val, ok := utils.ExtractString(data, "words"); ok {
		files.Words = val
	}
	if val, ok := utils.ExtractString(data, "pronunciations"); ok {
		files.Pronunciations = val
	}
	if val, ok := utils.ExtractString(data, "pronunciation_encoding"); ok {
		files.PronunciationEncoding = val
	}
	if val, ok := utils.ExtractString(data, "batch"); ok {
		files.Batch = val
	}
}

func extractSearchConfig(data map[string]any, search *SearchConfig) {
	if val, ok := utils.ExtractInt64(data, "max_rank"); ok {
		search.MaxRank = val
	}
	if val, ok := utils.ExtractInt64(data, "max_words"); ok {
		search.MaxWords = val
	}
	if val, ok := utils.ExtractBool(data, "tail_extension"); ok {
		search.TailExtension = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_digits"); ok {
		server.MaxDigits = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the search values and saves to file
func (c *Config) Update(configPath string, maxRank, maxWords *int, tailExtension *bool) error {
	search := &c.Search
	if maxRank != nil {
		search.MaxRank = *maxRank
	}
	if maxWords != nil {
		search.MaxWords = *maxWords
	}
	if tailExtension != nil {
		search.TailExtension = *tailExtension
	}
	if err := c.Validate(); err != nil {
		return err
	}
	return SaveConfig(c, configPath)
}
