package config

import (
	"fmt"
	"strings"

	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateGeneral(config)...)
	validationErrors = append(validationErrors, validateGaps(config)...)
	validationErrors = append(validationErrors, validateWindowRules(config)...)
	validationErrors = append(validationErrors, validateBindingModes(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a valid level", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be console or json, got %q", config.Logging.Format))
	}
	return validationErrors
}

func validateGeneral(config *Config) []string {
	step := config.General.ResizeStep
	if step.Inner.Amount == 0 {
		return []string{"general.resize_step must not be zero"}
	}
	return nil
}

func validateGaps(config *Config) []string {
	var validationErrors []string
	if config.Gaps.Inner.Amount < 0 {
		validationErrors = append(validationErrors, "gaps.inner must be non-negative")
	}
	if config.Gaps.Outer.Amount < 0 {
		validationErrors = append(validationErrors, "gaps.outer must be non-negative")
	}
	return validationErrors
}

func validateWindowRules(config *Config) []string {
	var validationErrors []string
	seen := make(map[string]bool, len(config.WindowRules))

	for i, rule := range config.WindowRules {
		key := fmt.Sprintf("window_rules[%d]", i)
		if rule.Name == "" {
			validationErrors = append(validationErrors, key+".name is required")
		} else {
			if seen[rule.Name] {
				validationErrors = append(validationErrors, fmt.Sprintf("%s.name %q is declared twice", key, rule.Name))
			}
			seen[rule.Name] = true
		}

		if len(rule.On) == 0 {
			validationErrors = append(validationErrors, key+".on needs at least one event")
		}
		for _, on := range rule.On {
			if _, err := entity.ParseWindowRuleEvent(on); err != nil {
				validationErrors = append(validationErrors, fmt.Sprintf("%s.on: %v", key, err))
			}
		}

		if len(rule.Commands) == 0 {
			validationErrors = append(validationErrors, key+".commands needs at least one command")
		}
		for _, command := range rule.Commands {
			if strings.TrimSpace(command) == "" {
				validationErrors = append(validationErrors, key+".commands contains an empty command")
			}
		}

		if _, err := rule.Match.compile(); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.match: %v", key, err))
		}
	}
	return validationErrors
}

func validateBindingModes(config *Config) []string {
	var validationErrors []string
	seen := make(map[string]bool, len(config.BindingModes))

	for i, mode := range config.BindingModes {
		switch {
		case mode.Name == "":
			validationErrors = append(validationErrors, fmt.Sprintf("binding_modes[%d].name is required", i))
		case seen[mode.Name]:
			validationErrors = append(validationErrors, fmt.Sprintf("binding_modes[%d].name %q is declared twice", i, mode.Name))
		}
		seen[mode.Name] = true
	}
	return validationErrors
}

// Validate reports every problem in cfg.
func Validate(cfg *Config) error {
	return validateConfig(cfg)
}
