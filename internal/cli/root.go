// Package cli exposes the composer, scanner and runner as cobra commands.
// The root command without a subcommand opens the window.
package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pyinstaller-builder/internal/command"
	"pyinstaller-builder/internal/config"
	"pyinstaller-builder/internal/imports"
	"pyinstaller-builder/internal/logger"
)

const Version = "1.0.0"

// Launcher starts the graphical front-end
type Launcher func(cfg *config.Config, log logger.Logger) error

// ExitError carries the exit status a failed build should end the process with
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

type session struct {
	v   *viper.Viper
	cfg *config.Config
	log logger.Logger
}

func (s *session) load() error {
	cfg, err := config.Load(s.v)
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}
	s.cfg = cfg
	s.log = logger.New(cfg.LogLevel, cfg.JSONLogs)
	return nil
}

// RootCmd creates the root command and its subcommands
func RootCmd(launch Launcher) *cobra.Command {
	s := &session{v: config.New()}

	cmd := &cobra.Command{
		Use:   "pyinstaller-builder",
		Short: "Compose and run PyInstaller builds",
		Long: `PyInstaller Builder assembles a PyInstaller command line from a main script,
an icon, an output folder and extra data files, then runs it and streams its output.

Run without a subcommand to open the window.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if launch == nil {
				return errors.New("no graphical front-end available")
			}
			return launch(s.cfg, s.log)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("tool", command.DefaultTool, "packaging tool executable")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("json-logs", false, "write logs as JSON")
	flags.String("dist-dir", "dist", "default output folder")
	flags.Duration("scan-timeout", imports.DefaultTimeout, "import scan parse timeout")

	bind := map[string]string{
		config.KeyTool:        "tool",
		config.KeyLogLevel:    "log-level",
		config.KeyJSONLogs:    "json-logs",
		config.KeyDistDir:     "dist-dir",
		config.KeyScanTimeout: "scan-timeout",
	}
	for key, name := range bind {
		_ = s.v.BindPFlag(key, flags.Lookup(name))
	}

	cmd.AddCommand(composeCmd(s))
	cmd.AddCommand(scanCmd(s))
	cmd.AddCommand(buildCmd(s))

	return cmd
}
