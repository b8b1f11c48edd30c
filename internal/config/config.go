// Package config provides configuration management for the math
// expression formatter.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/logger"
	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/types"
)

const (
	// DefaultConfigFileName is the default configuration file name
	DefaultConfigFileName = "math-expression-formatter.json"
	// DefaultHistorySize is the default number of remembered expressions
	DefaultHistorySize = 50
)

// ConfigManager manages the persisted application configuration.
type ConfigManager struct {
	configPath string
	mu         sync.RWMutex
	config     *types.Config
}

// NewConfigManager creates a ConfigManager with the specified config
// path. If configPath is empty, it uses the default path in the user's
// config directory.
func NewConfigManager(configPath string) (*ConfigManager, error) {
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, types.NewAppError(types.ErrConfig, "failed to get user home directory", err)
		}
		configPath = filepath.Join(homeDir, ".config", "math-expression-formatter", DefaultConfigFileName)
	}

	logger.Info("ConfigManager initialized", logger.String("configPath", configPath))
	return &ConfigManager{
		configPath: configPath,
		config:     defaultConfig(),
	}, nil
}

func defaultConfig() *types.Config {
	return &types.Config{
		DarkMode:        false,
		ExportDirectory: "",
		HistorySize:     DefaultHistorySize,
		ConsoleLogging:  false,
	}
}

// Load loads configuration from the config file. A missing file is not
// an error; defaults remain in effect.
func (m *ConfigManager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("config file not found, using defaults",
				logger.String("path", m.configPath))
			return nil
		}
		return types.NewAppError(types.ErrConfig, "failed to read config file", err)
	}

	cfg := defaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return types.NewAppError(types.ErrConfig, "failed to parse config file", err)
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultHistorySize
	}
	m.config = cfg

	logger.Info("configuration loaded", logger.String("path", m.configPath))
	return nil
}

// Save writes the current configuration to the config file, creating the
// parent directory if necessary.
func (m *ConfigManager) Save() error {
	m.mu.RLock()
	data, err := json.MarshalIndent(m.config, "", "  ")
	m.mu.RUnlock()
	if err != nil {
		return types.NewAppError(types.ErrConfig, "failed to encode config", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0755); err != nil {
		return types.NewAppError(types.ErrConfig, "failed to create config directory", err)
	}
	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return types.NewAppError(types.ErrConfig, "failed to write config file", err)
	}

	logger.Debug("configuration saved", logger.String("path", m.configPath))
	return nil
}

// GetConfigPath returns the path of the config file.
func (m *ConfigManager) GetConfigPath() string {
	return m.configPath
}

// GetConfig returns a copy of the current configuration.
func (m *ConfigManager) GetConfig() types.Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return *m.config
}

// GetDarkMode reports whether the dark preview theme is enabled.
func (m *ConfigManager) GetDarkMode() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.DarkMode
}

// SetDarkMode updates the dark mode flag.
func (m *ConfigManager) SetDarkMode(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config.DarkMode = enabled
}

// GetExportDirectory returns the configured export directory, or the
// user's home directory when unset.
func (m *ConfigManager) GetExportDirectory() string {
	m.mu.RLock()
	dir := m.config.ExportDirectory
	m.mu.RUnlock()
	if dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return homeDir
}

// SetExportDirectory updates the export directory.
func (m *ConfigManager) SetExportDirectory(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config.ExportDirectory = dir
}

// GetHistorySize returns the configured history size.
func (m *ConfigManager) GetHistorySize() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.HistorySize
}

// GetLastInput returns the last formatted expression.
func (m *ConfigManager) GetLastInput() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.LastInput
}

// SetLastInput records the last formatted expression.
func (m *ConfigManager) SetLastInput(input string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config.LastInput = input
}

// GetConsoleLogging reports whether log output is mirrored to stdout.
func (m *ConfigManager) GetConsoleLogging() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.ConsoleLogging
}
