package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/bnema/dumbwm/internal/application/usecase"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	userConfig *usecase.UserConfig
	viper      *viper.Viper
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a manager reading config.toml from the dumbwm config
// directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return newManager(configDir)
}

// NewManagerForFile creates a manager bound to an explicit config file.
func NewManagerForFile(path string) (*Manager, error) {
	m, err := newManager(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	m.viper.SetConfigFile(path)
	return m, nil
}

func newManager(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// DUMBWM_GENERAL_CURSOR_JUMP, DUMBWM_GAPS_INNER, ...
	v.SetEnvPrefix("DUMBWM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "DUMBWM_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBWM_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DUMBWM_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBWM_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v}, nil
}

// Load reads the configuration file and environment. A missing file is
// not an error: defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.apply()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configFile = "config.toml"
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := m.viper.Unmarshal(config, hook); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// apply decodes, validates and compiles the viper state. Must be called
// with m.mu held for write.
func (m *Manager) apply() error {
	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	userConfig, err := config.UserConfig()
	if err != nil {
		return err
	}

	m.config = config
	m.userConfig = userConfig
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}
	for i := range config.WindowRules {
		for j, on := range config.WindowRules[i].On {
			config.WindowRules[i].On[j] = strings.TrimSpace(on)
		}
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// UserConfig returns the compiled configuration the window manager
// consumes.
func (m *Manager) UserConfig() *usecase.UserConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.userConfig == nil {
		return usecase.DefaultUserConfig()
	}
	return m.userConfig
}

// Source exposes the manager as a usecase.ConfigSource. Reloads are
// visible to the next event.
func (m *Manager) Source() usecase.ConfigSource {
	return m.UserConfig
}

// ConfigFile returns the path of the file that was read, if any.
func (m *Manager) ConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// setDefaults registers defaults in their string form so the decode hooks
// parse them the same way as file values.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("general.cursor_jump", defaults.General.CursorJump)
	m.viper.SetDefault("general.resize_step", defaults.General.ResizeStep.String())
	m.viper.SetDefault("gaps.inner", defaults.Gaps.Inner.String())
	m.viper.SetDefault("gaps.outer", defaults.Gaps.Outer.String())
}
