package config

import (
	"fmt"

	"github.com/bnema/dumbwm/internal/application/usecase"
	"github.com/bnema/dumbwm/internal/domain/entity"
)

// UserConfig compiles the file representation into the parsed form the
// window manager consumes.
func (c *Config) UserConfig() (*usecase.UserConfig, error) {
	rules := make([]entity.WindowRule, 0, len(c.WindowRules))
	for _, raw := range c.WindowRules {
		rule, err := raw.compile()
		if err != nil {
			return nil, fmt.Errorf("window rule %q: %w", raw.Name, err)
		}
		rules = append(rules, rule)
	}

	modes := make([]entity.BindingMode, 0, len(c.BindingModes))
	for _, mode := range c.BindingModes {
		modes = append(modes, entity.BindingMode{Name: mode.Name, DisplayName: mode.DisplayName})
	}

	return &usecase.UserConfig{
		WindowRules:  rules,
		BindingModes: modes,
		Gaps: entity.Gaps{
			Inner: c.Gaps.Inner,
			Outer: c.Gaps.Outer,
		},
		ResizeStep: c.General.ResizeStep,
		CursorJump: c.General.CursorJump,
	}, nil
}

func (r WindowRuleConfig) compile() (entity.WindowRule, error) {
	on := make([]entity.WindowRuleEvent, 0, len(r.On))
	for _, raw := range r.On {
		event, err := entity.ParseWindowRuleEvent(raw)
		if err != nil {
			return entity.WindowRule{}, err
		}
		on = append(on, event)
	}

	match, err := r.Match.compile()
	if err != nil {
		return entity.WindowRule{}, err
	}

	return entity.WindowRule{
		Name:     r.Name,
		On:       on,
		Commands: append([]string(nil), r.Commands...),
		RunOnce:  r.RunOnce,
		Match:    match,
	}, nil
}

func (m MatchConfig) compile() (entity.WindowMatch, error) {
	class, err := entity.NewStringMatcher(m.Class)
	if err != nil {
		return entity.WindowMatch{}, err
	}
	title, err := entity.NewStringMatcher(m.Title)
	if err != nil {
		return entity.WindowMatch{}, err
	}
	process, err := entity.NewStringMatcher(m.Process)
	if err != nil {
		return entity.WindowMatch{}, err
	}
	return entity.WindowMatch{Class: class, Title: title, Process: process}, nil
}
