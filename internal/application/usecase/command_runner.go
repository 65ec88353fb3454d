package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/domain/value"
	"github.com/bnema/dumbwm/internal/logging"
)

// ErrUnknownCommand is returned for a command name the runner does not know.
var ErrUnknownCommand = errors.New("unknown command")

// Command names understood by CommandRunner.
const (
	CmdFocus                 = "focus"
	CmdSetFloating           = "set-floating"
	CmdSetTiling             = "set-tiling"
	CmdSetFullscreen         = "set-fullscreen"
	CmdSetMinimized          = "set-minimized"
	CmdToggleFloating        = "toggle-floating"
	CmdToggleTilingDirection = "toggle-tiling-direction"
	CmdSplit                 = "split"
	CmdResize                = "resize"
	CmdEnableBindingMode     = "wm-enable-binding-mode"
	CmdDisableBindingMode    = "wm-disable-binding-mode"
	CmdIgnore                = "ignore"
)

// CommandRunner parses command strings and dispatches them to the use cases.
type CommandRunner struct {
	config       ConfigSource
	containers   *ManageContainersUseCase
	bindingModes *BindingModesUseCase
}

var _ port.CommandExecutor = (*CommandRunner)(nil)

// NewCommandRunner creates a command runner reading settings from config.
func NewCommandRunner(config ConfigSource) *CommandRunner {
	return &CommandRunner{
		config:       config,
		containers:   NewManageContainersUseCase(),
		bindingModes: NewBindingModesUseCase(),
	}
}

// Execute runs a single command against subject.
func (r *CommandRunner) Execute(
	ctx context.Context,
	command string,
	subject entity.ContainerID,
	state *entity.WmState,
) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("%w: empty command", ErrUnknownCommand)
	}
	name, args := args[0], args[1:]
	cfg := r.config()

	logging.FromContext(ctx).Debug().
		Str("command", command).
		Str("subject_id", string(subject)).
		Msg("executing command")

	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	switch name {
	case CmdFocus:
		direction := flags.String("direction", "", "direction to move focus in")
		workspace := flags.String("workspace", "", "workspace to focus")
		if err := parseFlags(flags, args); err != nil {
			return err
		}
		return r.focus(ctx, state, subject, *direction, *workspace)

	case CmdSetFloating:
		return r.setState(ctx, state, cfg, subject, flags, args, entity.WindowStateFloating)
	case CmdSetTiling:
		return r.setState(ctx, state, cfg, subject, flags, args, entity.WindowStateTiling)
	case CmdSetFullscreen:
		return r.setState(ctx, state, cfg, subject, flags, args, entity.WindowStateFullscreen)
	case CmdSetMinimized:
		return r.setState(ctx, state, cfg, subject, flags, args, entity.WindowStateMinimized)

	case CmdToggleFloating:
		if err := parseFlags(flags, args); err != nil {
			return err
		}
		window, err := windowSubject(state, subject)
		if err != nil {
			return err
		}
		target := entity.WindowStateFloating
		if window.HasState(entity.WindowStateFloating) {
			target = entity.WindowStateTiling
		}
		_, err = r.containers.SetWindowState(ctx, state, cfg.Gaps, subject, target)
		return err

	case CmdToggleTilingDirection:
		if err := parseFlags(flags, args); err != nil {
			return err
		}
		return r.containers.ToggleTilingDirection(ctx, state, subject)

	case CmdSplit:
		direction := flags.String("direction", "", "tiling direction of the new split")
		if err := parseFlags(flags, args); err != nil {
			return err
		}
		dir, err := entity.ParseTilingDirection(*direction)
		if err != nil {
			return fmt.Errorf("%s: %w", CmdSplit, err)
		}
		_, err = r.containers.SplitContainer(ctx, state, subject, dir)
		return err

	case CmdResize:
		width := flags.String("width", "", "width delta, e.g. +5% or -20px; defaults to general.resize_step")
		height := flags.String("height", "", "height delta, e.g. +5% or -20px; defaults to general.resize_step")
		if err := parseFlags(flags, withResizeStep(args, cfg.ResizeStep)); err != nil {
			return err
		}
		return r.resize(ctx, state, cfg, subject, *width, *height)

	case CmdEnableBindingMode, CmdDisableBindingMode:
		modeName := flags.String("name", "", "binding mode name")
		if err := parseFlags(flags, args); err != nil {
			return err
		}
		if *modeName == "" {
			return fmt.Errorf("%s: --name is required", name)
		}
		if name == CmdEnableBindingMode {
			return r.bindingModes.Enable(ctx, state, cfg, *modeName)
		}
		return r.bindingModes.Disable(ctx, state, *modeName)

	case CmdIgnore:
		if err := parseFlags(flags, args); err != nil {
			return err
		}
		if _, err := windowSubject(state, subject); err != nil {
			return err
		}
		return r.containers.UnmanageWindow(ctx, state, subject)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
}

func parseFlags(flags *pflag.FlagSet, args []string) error {
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", flags.Name(), err)
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("%s: unexpected argument %q", flags.Name(), flags.Arg(0))
	}
	return nil
}

func windowSubject(state *entity.WmState, subject entity.ContainerID) (entity.WindowContainer, error) {
	c, ok := state.Tree.Get(subject)
	if !ok {
		return entity.WindowContainer{}, fmt.Errorf("%w: %s", entity.ErrContainerNotFound, subject)
	}
	window, ok := c.AsWindow()
	if !ok {
		return entity.WindowContainer{}, fmt.Errorf("command on %s: %w", c.Kind, entity.ErrUnsupportedOperation)
	}
	return window, nil
}

func (r *CommandRunner) focus(
	ctx context.Context,
	state *entity.WmState,
	subject entity.ContainerID,
	direction, workspace string,
) error {
	switch {
	case direction != "" && workspace != "":
		return fmt.Errorf("%s: --direction and --workspace are mutually exclusive", CmdFocus)
	case workspace != "":
		_, err := r.containers.FocusWorkspace(ctx, state, workspace)
		return err
	case direction != "":
		dir, err := entity.ParseDirection(direction)
		if err != nil {
			return fmt.Errorf("%s: %w", CmdFocus, err)
		}
		_, err = r.containers.FocusInDirection(ctx, state, subject, dir)
		return err
	default:
		return fmt.Errorf("%s: one of --direction or --workspace is required", CmdFocus)
	}
}

func (r *CommandRunner) setState(
	ctx context.Context,
	state *entity.WmState,
	cfg *UserConfig,
	subject entity.ContainerID,
	flags *pflag.FlagSet,
	args []string,
	target entity.WindowState,
) error {
	if err := parseFlags(flags, args); err != nil {
		return err
	}
	if _, err := windowSubject(state, subject); err != nil {
		return err
	}
	_, err := r.containers.SetWindowState(ctx, state, cfg.Gaps, subject, target)
	return err
}

// withResizeStep expands a bare --width or --height into --width=<step>.
// A flag is bare when it is the last argument or the next one is another
// long flag; single-dash values such as -10% stay values.
func withResizeStep(args []string, step value.LengthDelta) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--width" || arg == "--height" {
			if i+1 == len(args) || strings.HasPrefix(args[i+1], "--") {
				arg += "=" + step.String()
			}
		}
		out = append(out, arg)
	}
	return out
}

func (r *CommandRunner) resize(
	ctx context.Context,
	state *entity.WmState,
	cfg *UserConfig,
	subject entity.ContainerID,
	width, height string,
) error {
	if width == "" && height == "" {
		return fmt.Errorf("%s: one of --width or --height is required", CmdResize)
	}

	for _, change := range []struct {
		dimension ResizeDimension
		raw       string
	}{
		{ResizeWidth, width},
		{ResizeHeight, height},
	} {
		if change.raw == "" {
			continue
		}
		delta, err := value.ParseLengthDelta(change.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", CmdResize, err)
		}
		err = r.containers.Resize(ctx, state, cfg.Gaps, subject, change.dimension, delta)
		if errors.Is(err, ErrNothingToResize) {
			logging.FromContext(ctx).Debug().
				Str("dimension", string(change.dimension)).
				Msg("nothing to resize")
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
