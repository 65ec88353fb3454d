package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/dumbwm/internal/application/usecase"
	"github.com/bnema/dumbwm/internal/cli/styles"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/infrastructure/eventbus"
	"github.com/bnema/dumbwm/internal/infrastructure/native"
	"github.com/bnema/dumbwm/internal/infrastructure/scenario"
	"github.com/bnema/dumbwm/internal/infrastructure/snapshot"
	"github.com/bnema/dumbwm/internal/infrastructure/xdg"
	"github.com/bnema/dumbwm/internal/logging"
)

var (
	runInput        string
	runScenario     string
	runWatchConfig  bool
	runPrintTree    bool
	runSaveTree     bool
	runSaveInterval time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process native events from a stream",
	Long: `Read native events as newline-delimited JSON and process them one at a
time. Every published window manager event is written to stdout as one
JSON line.

The starting layout comes from --scenario (its events are processed
first) or defaults to a single 1920x1080 monitor with workspace "1".

Input lines look like:
  {"type":"window_managed","window":{"handle":1,"title":"foot","class_name":"foot"}}
  {"type":"command","command":"focus --direction left"}

Lines starting with '#' are ignored. The stream ends at EOF, SIGINT or
SIGTERM.

With --save-tree the container tree is kept up to date in
$XDG_STATE_HOME/dumbwm/tree.json.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	flags := runCmd.Flags()
	flags.StringVarP(&runInput, "input", "i", "-", "Event stream to read, '-' for stdin")
	flags.StringVarP(&runScenario, "scenario", "s", "", "Scenario file providing the starting layout")
	flags.BoolVarP(&runWatchConfig, "watch", "w", false, "Reload the config file when it changes")
	flags.BoolVar(&runPrintTree, "print-tree", false, "Print the final container tree to stderr")
	flags.BoolVar(&runSaveTree, "save-tree", false, "Keep the container tree in the state directory")
	flags.DurationVar(&runSaveInterval, "save-interval", 500*time.Millisecond, "Debounce delay for --save-tree")
}

func runRun(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if a.ConfigErr != nil {
		return a.ConfigErr
	}

	sc := scenario.Default()
	if runScenario != "" {
		if sc, err = scenario.Load(runScenario); err != nil {
			return err
		}
	}

	in := cmd.InOrStdin()
	if runInput != "" && runInput != "-" {
		f, err := os.Open(runInput)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	ctx, stop := signal.NotifyContext(logging.WithComponent(a.Ctx(), "run"), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if runWatchConfig {
		if err := a.Config.Watch(ctx); err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
	}

	session, err := newEventSession(ctx, sc, a.Config.Source(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var saver *snapshot.Service
	if runSaveTree {
		store := snapshot.NewFileStore(xdg.New())
		saver = snapshot.NewService(usecase.NewSaveTreeUseCase(store), session.manager, runSaveInterval)
		saver.Start(ctx)
		saver.MarkDirty()
		session.bus.Subscribe(func(context.Context, entity.WmEvent) { saver.MarkDirty() })
	}

	serveErr := session.serve(ctx, sc.Events, in)

	if saver != nil {
		if err := saver.Stop(context.WithoutCancel(ctx)); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to save final tree")
		}
	}
	if serveErr != nil {
		return serveErr
	}

	if runPrintTree {
		tree, err := session.manager.Snapshot()
		if err != nil {
			return err
		}
		focused, _ := session.manager.Focused()
		fmt.Fprintln(cmd.ErrOrStderr(), styles.NewTreeRenderer(a.Theme).Render(tree, focused))
	}
	return nil
}

// eventSession is a window manager fed from a stream. Published events
// are written to out as JSON lines.
type eventSession struct {
	manager *usecase.WindowManager
	bus     *eventbus.Bus
}

func newEventSession(
	ctx context.Context,
	sc *scenario.Scenario,
	source usecase.ConfigSource,
	out io.Writer,
) (*eventSession, error) {
	state, err := sc.Build()
	if err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx)

	var mu sync.Mutex
	enc := json.NewEncoder(out)
	bus := eventbus.New()
	bus.Subscribe(eventbus.LogHandler)
	bus.Subscribe(func(_ context.Context, event entity.WmEvent) {
		mu.Lock()
		defer mu.Unlock()
		if err := enc.Encode(event); err != nil {
			log.Error().Err(err).Str("event", string(event.Type)).Msg("failed to write event")
		}
	})

	return &eventSession{
		manager: usecase.NewWindowManager(state, source, native.NewRecorder(), bus),
		bus:     bus,
	}, nil
}

// serve processes initial, then every event read from in. Cancellation
// of ctx ends the stream without error.
func (s *eventSession) serve(ctx context.Context, initial []entity.NativeEvent, in io.Reader) error {
	log := logging.FromContext(ctx)

	handle := func(ctx context.Context, event entity.NativeEvent) {
		if err := s.manager.HandleEvent(ctx, event); err != nil {
			log.Warn().Err(err).Str("event", string(event.Type)).Msg("event failed")
		}
	}

	for _, event := range initial {
		handle(ctx, event)
	}

	// A blocked read only notices cancellation once the reader is closed.
	if closer, ok := in.(io.Closer); ok {
		stopClose := context.AfterFunc(ctx, func() { _ = closer.Close() })
		defer stopClose()
	}

	events := make(chan entity.NativeEvent)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return scenario.StreamEvents(gctx, in, events)
	})
	g.Go(func() error {
		count := 0
		for event := range events {
			handle(gctx, event)
			count++
		}
		log.Info().Int("events", count).Msg("event stream closed")
		return nil
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
