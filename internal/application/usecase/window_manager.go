// Package usecase holds the window manager operations and the event loop
// that drives them.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

// WindowManager is the event loop core. Each event runs its command batch
// against the state and ends with exactly one flush.
type WindowManager struct {
	mu sync.Mutex

	state      *entity.WmState
	config     ConfigSource
	containers *ManageContainersUseCase
	rules      *RunWindowRulesUseCase
	commands   *CommandRunner
	sync       *SyncUseCase
}

// NewWindowManager wires the use cases around a state.
func NewWindowManager(
	state *entity.WmState,
	config ConfigSource,
	native port.NativeWindowSystem,
	publisher port.EventPublisher,
) *WindowManager {
	commands := NewCommandRunner(config)
	return &WindowManager{
		state:      state,
		config:     config,
		containers: NewManageContainersUseCase(),
		rules:      NewRunWindowRulesUseCase(commands),
		commands:   commands,
		sync:       NewSyncUseCase(native, publisher),
	}
}

// HandleEvent processes one native event. The flush runs even when
// processing fails, so effects queued before the failure are not lost.
func (m *WindowManager) HandleEvent(ctx context.Context, event entity.NativeEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := event.Validate(); err != nil {
		return err
	}

	cfg := m.config()
	if event.Window.Handle != 0 {
		ctx = logging.WithWindow(ctx, uint64(event.Window.Handle), event.Window.ClassName)
	}
	logging.FromContext(ctx).Debug().
		Str("event", string(event.Type)).
		Msg("handling native event")

	processErr := m.process(ctx, event, cfg)
	flushErr := m.sync.Flush(ctx, m.state, cfg)
	return errors.Join(processErr, flushErr)
}

func (m *WindowManager) process(ctx context.Context, event entity.NativeEvent, cfg *UserConfig) error {
	state := m.state

	switch event.Type {
	case entity.NativeWindowManaged:
		if _, ok := state.WindowFromNative(event.Window.Handle); ok {
			logging.FromContext(ctx).Debug().Msg("window already managed")
			return nil
		}
		window, err := m.containers.ManageWindow(ctx, state, event.Window)
		if err != nil {
			return err
		}
		outcome, err := m.rules.Execute(ctx, window, entity.RuleEventManage, state, cfg)
		if err != nil || outcome.Gone {
			return err
		}
		if err := state.Tree.SetFocusedDescendant(outcome.Window.ID, ""); err != nil {
			return err
		}
		state.PendingSync.QueueFocusChange()
		return nil

	case entity.NativeWindowFocused:
		window, ok := state.WindowFromNative(event.Window.Handle)
		if !ok {
			return nil
		}
		if focused, ok := state.FocusedContainer(); ok && focused.ID == window.ID {
			return nil
		}
		if err := state.Tree.SetFocusedDescendant(window.ID, ""); err != nil {
			return err
		}
		dto, err := state.Tree.Snapshot(window.ID)
		if err != nil {
			return err
		}
		state.PendingSync.QueueEvent(entity.FocusChanged(dto))
		_, err = m.rules.Execute(ctx, window, entity.RuleEventFocus, state, cfg)
		return err

	case entity.NativeWindowTitleChanged:
		window, ok := state.WindowFromNative(event.Window.Handle)
		if !ok {
			return nil
		}
		window.Native.Title = event.Window.Title
		_, err := m.rules.Execute(ctx, window, entity.RuleEventTitleChange, state, cfg)
		return err

	case entity.NativeWindowDestroyed:
		window, ok := state.WindowFromNative(event.Window.Handle)
		if !ok {
			return nil
		}
		return m.containers.UnmanageWindow(ctx, state, window.ID)

	case entity.NativeCommand:
		subject, ok := state.FocusedContainer()
		if !ok {
			return fmt.Errorf("command %q: nothing is focused", event.Command)
		}
		return m.commands.Execute(ctx, event.Command, subject.ID, state)
	}

	return nil
}

// Snapshot returns the serialisable view of the whole tree.
func (m *WindowManager) Snapshot() (entity.ContainerDTO, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Tree.Snapshot(m.state.Tree.Root().ID)
}

// BindingModes returns the active binding modes, most recent first.
func (m *WindowManager) BindingModes() []entity.BindingMode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entity.BindingMode{}, m.state.BindingModes...)
}

// Focused returns the ID of the container at the end of the focus chain.
func (m *WindowManager) Focused() (entity.ContainerID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	focused, ok := m.state.FocusedContainer()
	if !ok {
		return "", false
	}
	return focused.ID, true
}
