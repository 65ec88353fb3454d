package config

import (
	"github.com/bnema/dumbwm/internal/domain/value"
)

// Config represents the complete configuration file for dumbwm.
type Config struct {
	// Logging controls log verbosity and output format.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// General holds window manager behaviour that is not tied to a window.
	General GeneralConfig `mapstructure:"general" yaml:"general" toml:"general" json:"general"`
	// Gaps sets the spacing between tiling windows and around workspaces.
	Gaps GapsConfig `mapstructure:"gaps" yaml:"gaps" toml:"gaps" json:"gaps"`
	// WindowRules run commands against windows when they are managed,
	// focused or retitled.
	WindowRules []WindowRuleConfig `mapstructure:"window_rules" yaml:"window_rules" toml:"window_rules" json:"window_rules"`
	// BindingModes lists the keybinding modes that can be enabled.
	BindingModes []BindingModeConfig `mapstructure:"binding_modes" yaml:"binding_modes" toml:"binding_modes" json:"binding_modes"`
}

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// GeneralConfig holds general window manager settings.
type GeneralConfig struct {
	// CursorJump moves the cursor to the focused window after focus changes.
	CursorJump bool `mapstructure:"cursor_jump" yaml:"cursor_jump" toml:"cursor_jump" json:"cursor_jump"`
	// ResizeStep is the default amount a resize command changes a window by.
	ResizeStep value.LengthDelta `mapstructure:"resize_step" yaml:"resize_step" toml:"resize_step" json:"resize_step"`
}

// GapsConfig holds the inner and outer gap lengths.
type GapsConfig struct {
	Inner value.LengthValue `mapstructure:"inner" yaml:"inner" toml:"inner" json:"inner"`
	Outer value.LengthValue `mapstructure:"outer" yaml:"outer" toml:"outer" json:"outer"`
}

// WindowRuleConfig is a window rule as written in the config file.
type WindowRuleConfig struct {
	Name     string      `mapstructure:"name" yaml:"name" toml:"name" json:"name"`
	On       []string    `mapstructure:"on" yaml:"on" toml:"on" json:"on"`
	Commands []string    `mapstructure:"commands" yaml:"commands" toml:"commands" json:"commands"`
	RunOnce  bool        `mapstructure:"run_once" yaml:"run_once" toml:"run_once" json:"run_once,omitempty"`
	Match    MatchConfig `mapstructure:"match" yaml:"match" toml:"match" json:"match"`
}

// MatchConfig selects windows by native properties. Values wrapped in
// slashes are regular expressions.
type MatchConfig struct {
	Class   string `mapstructure:"class" yaml:"class" toml:"class,omitempty" json:"class,omitempty"`
	Title   string `mapstructure:"title" yaml:"title" toml:"title,omitempty" json:"title,omitempty"`
	Process string `mapstructure:"process" yaml:"process" toml:"process,omitempty" json:"process,omitempty"`
}

// BindingModeConfig declares a keybinding mode.
type BindingModeConfig struct {
	Name        string `mapstructure:"name" yaml:"name" toml:"name" json:"name"`
	DisplayName string `mapstructure:"display_name" yaml:"display_name" toml:"display_name,omitempty" json:"display_name,omitempty"`
}
