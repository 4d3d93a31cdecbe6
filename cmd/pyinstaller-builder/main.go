package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"pyinstaller-builder/internal/app"
	"pyinstaller-builder/internal/cli"
	"pyinstaller-builder/internal/config"
	"pyinstaller-builder/internal/logger"
)

func main() {
	rootCmd := cli.RootCmd(runGUI)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runGUI(cfg *config.Config, log logger.Logger) error {
	application, err := app.NewApplication(cfg, log)
	if err != nil {
		return errors.Wrap(err, "application initialization failed")
	}
	return application.Run()
}
