package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

// RuleOutcome is the result of running the window rules for one event.
// Window is the container now representing the native window. Gone is set
// when a command removed the window from the tree entirely.
type RuleOutcome struct {
	Window entity.WindowContainer
	Gone   bool
}

// RunWindowRulesUseCase applies the configured window rules to a window.
type RunWindowRulesUseCase struct {
	executor port.CommandExecutor
}

// NewRunWindowRulesUseCase creates a rule pipeline dispatching commands to
// executor.
func NewRunWindowRulesUseCase(executor port.CommandExecutor) *RunWindowRulesUseCase {
	return &RunWindowRulesUseCase{executor: executor}
}

// Execute runs every pending rule for window on event, in configuration
// order. Commands that replace the window's container are followed by
// re-resolving the window from its native handle so later commands act on
// the live container. When the window can no longer be found the remaining
// commands are skipped.
func (uc *RunWindowRulesUseCase) Execute(
	ctx context.Context,
	window entity.WindowContainer,
	event entity.WindowRuleEvent,
	state *entity.WmState,
	cfg *UserConfig,
) (RuleOutcome, error) {
	ctx = logging.WithWindow(ctx, uint64(window.Native.Handle), window.Native.ClassName)
	log := logging.FromContext(ctx)

	rules := cfg.PendingWindowRules(window, event)
	if len(rules) == 0 {
		return RuleOutcome{Window: window}, nil
	}

	handle := window.Native.Handle
	subject := window

	for _, rule := range rules {
		log.Debug().
			Str("rule", rule.Name).
			Str("event", string(event)).
			Int("commands", len(rule.Commands)).
			Msg("running window rule")

		for _, command := range rule.Commands {
			if err := uc.executor.Execute(ctx, command, subject.ID, state); err != nil {
				return RuleOutcome{Window: subject}, fmt.Errorf("window rule %q: %w", rule.Name, err)
			}

			if !subject.IsDetached() {
				continue
			}
			resolved, ok := state.WindowFromNative(handle)
			if !ok {
				log.Debug().
					Str("rule", rule.Name).
					Str("command", command).
					Msg("window removed by rule")
				return RuleOutcome{Window: subject, Gone: true}, nil
			}
			subject = resolved
		}

		if rule.RunOnce {
			subject.MarkRuleDone(rule.Name)
		}
	}

	return RuleOutcome{Window: subject}, nil
}
