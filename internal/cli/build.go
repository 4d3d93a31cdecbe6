package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"pyinstaller-builder/internal/build"
	"pyinstaller-builder/internal/command"
	"pyinstaller-builder/internal/models"
)

func buildCmd(s *session) *cobra.Command {
	flags := &optionFlags{}
	var raw string

	cmd := &cobra.Command{
		Use:   "build <script.py>",
		Short: "Compose and run a build, streaming its output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := filepath.Abs(args[0])
			if err != nil {
				return errors.Wrap(err, "resolve script path")
			}
			if info, err := os.Stat(script); err != nil || !info.Mode().IsRegular() {
				return errors.Errorf("not a valid .py file: %s", args[0])
			}

			line := raw
			if line == "" {
				line = command.NewComposer(s.cfg.Tool).Compose(flags.options(script, s.cfg.DistDir))
			}

			out := cmd.OutOrStdout()
			printCommand(out, line)

			outcome, err := runBuild(line, filepath.Dir(script), s, func(l string) {
				fmt.Fprintln(out, l)
			})
			if err != nil {
				return err
			}

			printStep(out, fmt.Sprintf("build %s finished in %s", outcome.ID, outcome.Duration.Round(time.Millisecond)))
			if outcome.Succeeded {
				printSuccess(out, outcome.Message)
				return nil
			}

			printError(out, outcome.Message)
			code := outcome.ExitCode
			if code <= 0 {
				code = 1
			}
			return &ExitError{Code: code, Message: outcome.Message}
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&raw, "command", "", "run this command line instead of the composed one")
	return cmd
}

// runBuild blocks until the runner reports the outcome. Callbacks run on the
// runner goroutine, which keeps the lines in order.
func runBuild(line, dir string, s *session, onLine func(string)) (models.BuildOutcome, error) {
	runner := build.NewRunner(&build.Options{Logger: s.log})
	defer runner.Shutdown()

	done := make(chan models.BuildOutcome, 1)
	if err := runner.Run(line, dir, onLine, func(o models.BuildOutcome) { done <- o }); err != nil {
		return models.BuildOutcome{}, err
	}

	outcome := <-done
	runner.Wait()
	return outcome, nil
}
