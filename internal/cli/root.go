package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/famish99/doomhal/internal/config"
	"github.com/famish99/doomhal/internal/cvar"
	"github.com/famish99/doomhal/internal/engine"
	"github.com/famish99/doomhal/internal/logging"
	"github.com/famish99/doomhal/internal/platform"
)

var (
	Version = "dev"
	Commit  = "none"
)

type options struct {
	configPath string
	logLevel   string
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "doomhal",
		Short:        "Exercise the CD audio and joystick drivers of the Doom platform layer",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigPath(), "Path to configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level override (trace|debug|info|warn|error|critical|off)")

	cmd.AddCommand(
		selfTestCmd(opts),
		consoleCmd(opts),
		framesCmd(opts),
		configCmd(opts),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "doomhal %s (commit=%s, platform=%s)\n", Version, Commit, platform.Name())
		},
	}
}

// session bundles what every subcommand needs to drive the engine
type session struct {
	cfg     *config.Config
	loggers *logging.Loggers
	engine  *engine.Engine
}

func newSession(opts *options, logOut io.Writer) (*session, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	loggers, err := logging.New(logOut, level)
	if err != nil {
		return nil, err
	}

	loggers.Logger(logging.SubHAL).Debugf("Selected %s drivers", platform.Name())

	reg := cvar.NewRegistry()
	music := platform.NewMusicDevice(loggers.Logger(logging.SubCDMus))
	joy := platform.NewJoystick(loggers.Logger(logging.SubJoy), reg)
	e := engine.New(cfg, loggers.Logger(logging.SubEngine), music, joy, reg)

	return &session{cfg: cfg, loggers: loggers, engine: e}, nil
}

func defaultConfigPath() string {
	// Check common locations
	locations := []string{
		"./doomhal.yaml",
		filepath.Join(os.Getenv("HOME"), ".config", "doomhal", "config.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	// Default to first location if none exist
	return locations[0]
}
