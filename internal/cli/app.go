// Package cli holds the dependencies shared by the dumbwm commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bnema/dumbwm/internal/cli/styles"
	"github.com/bnema/dumbwm/internal/domain/build"
	"github.com/bnema/dumbwm/internal/infrastructure/config"
	"github.com/bnema/dumbwm/internal/logging"
)

// Options are the global flags that shape the App.
type Options struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	LogOutput  io.Writer
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// ConfigErr is set when the config file exists but could not be
	// loaded. Defaults apply in that case.
	ConfigErr error

	ctx context.Context
}

// NewApp loads the configuration and builds the logger from it. Flag
// values win over the config file and DUMBWM_LOG_* variables.
func NewApp(opts Options) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if opts.ConfigFile != "" {
		mgr, err = config.NewManagerForFile(opts.ConfigFile)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}

	loadErr := mgr.Load()
	cfg := mgr.Get()

	logCfg := logging.DefaultConfig().Apply(cfg.Logging.Level, cfg.Logging.Format)
	logCfg = logging.ConfigFromEnv(logCfg).Apply(opts.LogLevel, opts.LogFormat)
	logCfg.TimeFormat = time.TimeOnly
	logCfg.Output = opts.LogOutput
	if logCfg.Output == nil {
		logCfg.Output = os.Stderr
	}

	logger := logging.New(logCfg)
	ctx := logging.WithContext(context.Background(), logger)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("config not loaded, using defaults")
	}

	return &App{
		Config:    mgr,
		Theme:     styles.NewTheme(),
		ConfigErr: loadErr,
		ctx:       ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

