package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbwm/internal/application/usecase"
	"github.com/bnema/dumbwm/internal/cli/styles"
	"github.com/bnema/dumbwm/internal/infrastructure/config"
)

var (
	configInitForce   bool
	configSchemaWrite bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage the configuration file",
	Long: `Inspect and manage the dumbwm configuration file.

The file lives at $XDG_CONFIG_HOME/dumbwm/config.toml unless --config
points elsewhere. Every key can also be set from the environment with
the DUMBWM_ prefix, e.g. DUMBWM_GAPS_INNER=8px or DUMBWM_LOG_LEVEL=debug.`,
	RunE: runConfigPath,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Long: `Write the default configuration to the config file location.

An existing file is left untouched unless --force is given.`,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a configuration file",
	Long: `Load a configuration file and report every problem found.

Without an argument the active config file is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigValidate,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the configuration",
	Long: `Print the JSON schema of the configuration file.

With --write the schema is stored next to the config file as
config.schema.json, for editors that validate TOML against a schema.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configInitCmd, configValidateCmd, configSchemaCmd)

	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing config file")
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "Write the schema next to the config file")
}

func activeConfigFile() (string, error) {
	if rootOpts.ConfigFile != "" {
		return rootOpts.ConfigFile, nil
	}
	return config.GetConfigFile()
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	path, err := activeConfigFile()
	if err != nil {
		return err
	}
	return printConfigPath(cmd.OutOrStdout(), a.Theme, path)
}

func printConfigPath(w io.Writer, theme *styles.Theme, path string) error {
	_, statErr := os.Stat(path)
	if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, statErr)
	}

	renderer := styles.NewConfigRenderer(theme)
	fmt.Fprint(w, renderer.RenderPath(path, statErr == nil))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	path, err := activeConfigFile()
	if err != nil {
		return err
	}
	return initConfig(cmd.OutOrStdout(), a.Theme, path, configInitForce)
}

func initConfig(w io.Writer, theme *styles.Theme, path string, force bool) error {
	renderer := styles.NewConfigRenderer(theme)

	err := config.WriteDefault(path, force)
	if errors.Is(err, config.ErrConfigExists) {
		fmt.Fprint(w, renderer.RenderExists(path))
		return nil
	}
	if err != nil {
		fmt.Fprint(w, renderer.RenderError(err))
		return err
	}

	fmt.Fprint(w, renderer.RenderCreated(path))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	} else if path, err = activeConfigFile(); err != nil {
		return err
	}
	return validateConfig(cmd.OutOrStdout(), a.Theme, path)
}

func validateConfig(w io.Writer, theme *styles.Theme, path string) error {
	renderer := styles.NewConfigRenderer(theme)

	user, err := loadConfigFile(path)
	if err != nil {
		fmt.Fprint(w, renderer.RenderError(err))
		return errors.New("config is invalid")
	}

	fmt.Fprint(w, renderer.RenderValid(path, len(user.WindowRules), len(user.BindingModes)))
	return nil
}

// loadConfigFile loads and compiles one config file. Unlike the manager
// used at startup, a missing file is reported.
func loadConfigFile(path string) (*usecase.UserConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	mgr, err := config.NewManagerForFile(path)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	return mgr.UserConfig(), nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if configSchemaWrite {
		path, err := config.GenerateSchemaFile()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(a.Theme).RenderSchemaWritten(path))
		return nil
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	out, err := uc.Execute(a.Ctx())
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(append(out.Schema, '\n'))
	return err
}
