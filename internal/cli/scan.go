package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pyinstaller-builder/internal/imports"
)

func scanCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <script.py>",
		Short: "List the top-level modules a script imports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner := imports.NewScanner(s.cfg.ScanTimeout, s.log)
			for _, m := range scanner.Scan(cmd.Context(), args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
}
