package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pyinstaller-builder/internal/command"
	"pyinstaller-builder/internal/models"
)

// optionFlags mirrors BuildOptions on the command line
type optionFlags struct {
	icon      string
	distPath  string
	oneFile   bool
	noConsole bool
	collect   []string
	addData   []string
}

func (o *optionFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.icon, "icon", "", "icon file (.ico)")
	f.StringVar(&o.distPath, "distpath", "", "output folder (defaults to the configured dist dir)")
	f.BoolVar(&o.oneFile, "onefile", false, "bundle into a single executable")
	f.BoolVar(&o.noConsole, "noconsole", false, "hide the console window")
	f.StringSliceVar(&o.collect, "collect-all", nil, "module to collect entirely (repeatable)")
	f.StringArrayVar(&o.addData, "add-data", nil, "extra file bundled at the root (repeatable)")
}

func (o *optionFlags) options(script, defaultDist string) models.BuildOptions {
	dist := o.distPath
	if dist == "" {
		dist = defaultDist
	}
	form := models.NewForm(dist)
	form.MainScript = script
	form.Icon = o.icon
	form.OneFile = o.oneFile
	form.NoConsole = o.noConsole
	form.AddExtraFiles(o.addData...)
	if len(o.collect) > 0 {
		form.CollectAll = true
		form.SetSelectedModules(o.collect)
	}
	return form.Options()
}

func composeCmd(s *session) *cobra.Command {
	flags := &optionFlags{}

	cmd := &cobra.Command{
		Use:   "compose <script.py>",
		Short: "Print the PyInstaller command for a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options(args[0], s.cfg.DistDir)
			fmt.Fprintln(cmd.OutOrStdout(), command.NewComposer(s.cfg.Tool).Compose(opts))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
