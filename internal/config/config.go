// Package config provides configuration management for the fmtlatex application.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/goerz/fmtlatex/internal/logger"
	"github.com/goerz/fmtlatex/internal/types"
)

const (
	// DefaultConfigFileName is the default configuration file name
	DefaultConfigFileName = "fmtlatex-config.json"
	// DefaultWidth is the default wrap width for reflowed prose
	DefaultWidth = 80
)

// ConfigManager manages application configuration
type ConfigManager struct {
	configPath string
	config     *types.Config
}

// NewConfigManager creates a new ConfigManager with the specified config path.
// If configPath is empty, it uses the default path in the user's home directory.
func NewConfigManager(configPath string) (*ConfigManager, error) {
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			logger.Error("failed to get user home directory", err)
			return nil, types.NewAppError(types.ErrConfig, "failed to get user home directory", err)
		}
		configPath = filepath.Join(homeDir, ".config", "fmtlatex", DefaultConfigFileName)
	}

	logger.Debug("ConfigManager initialized", logger.String("configPath", configPath))
	return &ConfigManager{
		configPath: configPath,
		config:     defaultConfig(),
	}, nil
}

// defaultConfig returns a Config with default values
func defaultConfig() *types.Config {
	return &types.Config{
		Width:         DefaultWidth,
		DebugLogging:  false,
		BackupEnabled: true,
		LogFilePath:   "",
	}
}

// Load loads configuration from the config file.
// A missing file is not an error: defaults are used. Invalid JSON also
// falls back to defaults with a warning.
func (m *ConfigManager) Load() error {
	logger.Debug("loading configuration", logger.String("path", m.configPath))

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("config file not found, using defaults", logger.String("path", m.configPath))
			m.config = defaultConfig()
		} else {
			logger.Error("failed to read config file", err, logger.String("path", m.configPath))
			return types.NewAppError(types.ErrConfig, "failed to read config file", err)
		}
	} else {
		cfg := &types.Config{}
		if err := json.Unmarshal(data, cfg); err != nil {
			logger.Warn("invalid config file format, using defaults",
				logger.String("path", m.configPath), logger.Err(err))
			m.config = defaultConfig()
		} else {
			logger.Debug("configuration loaded",
				logger.String("path", m.configPath),
				logger.Int("width", cfg.Width))
			m.config = cfg
		}
	}

	// Apply defaults for unset fields
	if m.config.Width <= 0 {
		m.config.Width = DefaultWidth
	}

	return nil
}

// Save saves the current configuration to the config file.
func (m *ConfigManager) Save() error {
	logger.Debug("saving configuration", logger.String("path", m.configPath))

	dir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Error("failed to create config directory", err, logger.String("dir", dir))
		return types.NewAppError(types.ErrConfig, "failed to create config directory", err)
	}

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		logger.Error("failed to marshal config", err)
		return types.NewAppError(types.ErrConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(m.configPath, data, 0600); err != nil {
		logger.Error("failed to write config file", err, logger.String("path", m.configPath))
		return types.NewAppError(types.ErrConfig, "failed to write config file", err)
	}

	return nil
}

// GetConfig returns the current configuration.
func (m *ConfigManager) GetConfig() *types.Config {
	if m.config == nil {
		return defaultConfig()
	}
	return m.config
}

// SetConfig sets the entire configuration.
func (m *ConfigManager) SetConfig(cfg *types.Config) {
	m.config = cfg
}

// GetConfigPath returns the path to the config file.
func (m *ConfigManager) GetConfigPath() string {
	return m.configPath
}

// GetWidth returns the configured wrap width.
func (m *ConfigManager) GetWidth() int {
	if m.config != nil && m.config.Width > 0 {
		return m.config.Width
	}
	return DefaultWidth
}

// SetWidth sets the wrap width and saves the configuration.
func (m *ConfigManager) SetWidth(width int) error {
	if width <= 0 {
		return types.NewAppError(types.ErrInvalidInput, "width must be positive", nil)
	}
	if m.config == nil {
		m.config = defaultConfig()
	}
	m.config.Width = width
	return m.Save()
}

// IsBackupEnabled reports whether in-place formatting should keep a backup.
func (m *ConfigManager) IsBackupEnabled() bool {
	if m.config == nil {
		return true
	}
	return m.config.BackupEnabled
}

// IsDebugLogging reports whether debug logging is enabled in the config.
func (m *ConfigManager) IsDebugLogging() bool {
	return m.config != nil && m.config.DebugLogging
}

// GetLogFilePath returns the configured log file path, or empty for the default.
func (m *ConfigManager) GetLogFilePath() string {
	if m.config != nil {
		return m.config.LogFilePath
	}
	return ""
}
