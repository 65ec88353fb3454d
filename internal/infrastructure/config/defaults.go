package config

import (
	"github.com/bnema/dumbwm/internal/domain/value"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		General: GeneralConfig{
			CursorJump: true,
			ResizeStep: value.LengthDelta{Inner: value.FromPercent(5)},
		},
		Gaps: GapsConfig{
			Inner: value.FromPx(10),
			Outer: value.FromPx(10),
		},
		WindowRules: []WindowRuleConfig{
			{
				Name:     "ignore-tooltips",
				On:       []string{"manage"},
				Commands: []string{"ignore"},
				Match:    MatchConfig{Class: "/[Tt]ooltip/"},
			},
			{
				Name:     "float-dialogs",
				On:       []string{"manage"},
				Commands: []string{"set-floating"},
				RunOnce:  true,
				Match:    MatchConfig{Title: "/^(Open|Save)( File)?/"},
			},
		},
		BindingModes: []BindingModeConfig{
			{Name: "resize", DisplayName: "Resize"},
			{Name: "pause", DisplayName: "Paused"},
		},
	}
}
