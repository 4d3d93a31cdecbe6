// Package command turns build options into a PyInstaller command line.
package command

import (
	"os"
	"strings"

	"pyinstaller-builder/internal/models"
)

const (
	DefaultTool = "pyinstaller"

	FlagOneFile    = "--onefile"
	FlagNoConsole  = "--noconsole"
	FlagCollectAll = "--collect-all"
	FlagIcon       = "--icon"
	FlagDistPath   = "--distpath"
	FlagAddData    = "--add-data"

	// BundleRoot is the --add-data destination for the top of the bundle
	BundleRoot = "."
)

// Composer builds command strings for a given tool executable.
// Paths are wrapped in double quotes and never escaped.
type Composer struct {
	Tool          string
	DataSeparator string
}

// NewComposer uses the host's PyInstaller --add-data separator
func NewComposer(tool string) Composer {
	if tool == "" {
		tool = DefaultTool
	}
	return Composer{Tool: tool, DataSeparator: string(os.PathListSeparator)}
}

var defaultComposer = NewComposer(DefaultTool)

// Compose renders opts with the default tool name
func Compose(opts models.BuildOptions) string {
	return defaultComposer.Compose(opts)
}

// Compose returns "" when no main script is set.
func (c Composer) Compose(opts models.BuildOptions) string {
	if opts.MainScript == "" {
		return ""
	}

	parts := []string{c.Tool}
	if opts.OneFile {
		parts = append(parts, FlagOneFile)
	}
	if opts.NoConsole {
		parts = append(parts, FlagNoConsole)
	}
	for _, mod := range opts.ForcedModules {
		parts = append(parts, FlagCollectAll+" "+mod)
	}
	if opts.Icon != "" {
		parts = append(parts, FlagIcon+"="+quote(opts.Icon))
	}
	if opts.OutputDir != "" {
		parts = append(parts, FlagDistPath+" "+quote(opts.OutputDir))
	}
	for _, f := range opts.ExtraFiles {
		parts = append(parts, FlagAddData+" "+quote(f+c.separator()+BundleRoot))
	}
	parts = append(parts, quote(opts.MainScript))

	return strings.Join(parts, " ")
}

func (c Composer) separator() string {
	if c.DataSeparator == "" {
		return string(os.PathListSeparator)
	}
	return c.DataSeparator
}

func quote(s string) string {
	return `"` + s + `"`
}
