package usecase

import (
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/domain/value"
)

// UserConfig is the parsed configuration the core consumes. Loading and
// validating it is the configuration layer's job.
type UserConfig struct {
	WindowRules  []entity.WindowRule
	BindingModes []entity.BindingMode
	Gaps         entity.Gaps
	ResizeStep   value.LengthDelta
	CursorJump   bool
}

// DefaultUserConfig returns a configuration with no rules and no gaps.
func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Gaps: entity.Gaps{
			Inner: value.FromPx(0),
			Outer: value.FromPx(0),
		},
		ResizeStep: value.LengthDelta{Inner: value.FromPercent(5)},
		CursorJump: true,
	}
}

// PendingWindowRules returns the rules to run for a window on event, in
// configuration order.
func (c *UserConfig) PendingWindowRules(window entity.WindowContainer, event entity.WindowRuleEvent) []entity.WindowRule {
	var pending []entity.WindowRule
	for _, rule := range c.WindowRules {
		if rule.Pending(window, event) {
			pending = append(pending, rule)
		}
	}
	return pending
}

// BindingModeByName looks up a configured binding mode.
func (c *UserConfig) BindingModeByName(name string) (entity.BindingMode, bool) {
	for _, mode := range c.BindingModes {
		if mode.Name == name {
			return mode, true
		}
	}
	return entity.BindingMode{}, false
}

// ConfigSource returns the configuration currently in effect.
type ConfigSource func() *UserConfig

// StaticConfig wraps a fixed configuration.
func StaticConfig(cfg *UserConfig) ConfigSource {
	return func() *UserConfig { return cfg }
}
