package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/application/usecase"
	"github.com/bnema/dumbwm/internal/cli/styles"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/infrastructure/eventbus"
	"github.com/bnema/dumbwm/internal/infrastructure/native"
	"github.com/bnema/dumbwm/internal/infrastructure/scenario"
	"github.com/bnema/dumbwm/internal/logging"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var (
	replayOutput   string
	replayFailFast bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <scenario.yaml>",
	Short: "Run a recorded scenario through the window manager",
	Long: `Build the monitors and workspaces of a scenario file, feed its events
through the window manager and print the resulting container tree, the
last placement of every window and the published events.

No window system is touched: placements are recorded, not applied.

Examples:
  dumbwm replay session.yaml
  dumbwm replay session.yaml --output json
  dumbwm replay session.yaml --fail-fast`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVarP(&replayOutput, "output", "o", outputText, "Output format: text, json, yaml")
	replayCmd.Flags().BoolVar(&replayFailFast, "fail-fast", false, "Stop at the first event that fails")
}

// replayFailure is an event the window manager rejected.
type replayFailure struct {
	Index int                `json:"index" yaml:"index"`
	Event entity.NativeEvent `json:"event" yaml:"event"`
	Error string             `json:"error" yaml:"error"`
}

// replayResult is the state left behind by a scenario.
type replayResult struct {
	Name         string                  `json:"name,omitempty" yaml:"name,omitempty"`
	Tree         entity.ContainerDTO     `json:"tree" yaml:"tree"`
	Focused      entity.ContainerID      `json:"focused,omitempty" yaml:"focused,omitempty"`
	BindingModes []entity.BindingMode    `json:"binding_modes" yaml:"binding_modes"`
	Placements   []port.WindowPlacement  `json:"placements" yaml:"placements"`
	Events       []entity.WmEvent        `json:"events" yaml:"events"`
	Calls        map[native.CallKind]int `json:"calls" yaml:"calls"`
	Failures     []replayFailure         `json:"failures,omitempty" yaml:"failures,omitempty"`
}

func runReplay(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if a.ConfigErr != nil {
		return a.ConfigErr
	}
	if err := checkOutputFormat(replayOutput); err != nil {
		return err
	}

	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	ctx := logging.With(logging.WithComponent(a.Ctx(), "replay"), map[string]any{
		"scenario": sc.Name,
		"file":     args[0],
	})
	result, err := replayScenario(ctx, sc, a.Config.Source(), replayFailFast)
	if err != nil {
		return err
	}
	return writeReplayResult(cmd.OutOrStdout(), a.Theme, result, replayOutput)
}

func checkOutputFormat(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output %q (use: text, json, yaml)", format)
	}
}

// replayScenario feeds every event of sc to a fresh window manager wired
// to a recording window system.
func replayScenario(
	ctx context.Context,
	sc *scenario.Scenario,
	source usecase.ConfigSource,
	failFast bool,
) (*replayResult, error) {
	state, err := sc.Build()
	if err != nil {
		return nil, err
	}

	bus := eventbus.New()
	collector := &eventbus.Collector{}
	bus.Subscribe(collector.Handle)
	bus.Subscribe(eventbus.LogHandler)

	recorder := native.NewRecorder()
	manager := usecase.NewWindowManager(state, source, recorder, bus)
	log := logging.FromContext(ctx)

	result := &replayResult{Name: sc.Name}
	for i, event := range sc.Events {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := manager.HandleEvent(ctx, event); err != nil {
			if failFast {
				return nil, fmt.Errorf("event %d (%s): %w", i+1, event.Type, err)
			}
			log.Warn().Err(err).Int("index", i+1).Str("event", string(event.Type)).Msg("event failed")
			result.Failures = append(result.Failures, replayFailure{Index: i + 1, Event: event, Error: err.Error()})
		}

		if event.Type == entity.NativeWindowDestroyed {
			recorder.Forget(event.Window.Handle)
		}
	}

	if result.Tree, err = manager.Snapshot(); err != nil {
		return nil, err
	}
	result.Focused, _ = manager.Focused()
	result.BindingModes = manager.BindingModes()
	result.Placements = recorder.Placements()
	result.Events = collector.Events()
	result.Calls = recorder.CountByKind()

	log.Info().
		Int("events", len(sc.Events)).
		Int("failures", len(result.Failures)).
		Int("windows", len(result.Placements)).
		Msg("scenario replayed")

	return result, nil
}

func writeReplayResult(w io.Writer, theme *styles.Theme, result *replayResult, format string) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	}

	var sb strings.Builder
	if result.Name != "" {
		sb.WriteString(theme.Title.Render(result.Name))
		sb.WriteString("\n\n")
	}
	sb.WriteString(styles.NewTreeRenderer(theme).Render(result.Tree, result.Focused))
	sb.WriteString("\n\n")

	if len(result.BindingModes) > 0 {
		names := make([]string, 0, len(result.BindingModes))
		for _, m := range result.BindingModes {
			names = append(names, theme.AccentBadge(m.Name))
		}
		sb.WriteString(theme.Subtitle.Render("Binding modes") + " " + strings.Join(names, " "))
		sb.WriteString("\n\n")
	}

	tables := styles.NewTableRenderer(theme)
	sb.WriteString(theme.Subtitle.Render("Placements"))
	sb.WriteString("\n")
	sb.WriteString(tables.RenderPlacements(result.Placements))
	sb.WriteString("\n\n")
	sb.WriteString(theme.Subtitle.Render("Events"))
	sb.WriteString("\n")
	sb.WriteString(tables.RenderEvents(result.Events))
	sb.WriteString("\n")

	for _, f := range result.Failures {
		sb.WriteString(fmt.Sprintf("%s event %d (%s): %s\n",
			theme.ErrorStyle.Render(styles.IconX), f.Index, f.Event.Type, f.Error))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
