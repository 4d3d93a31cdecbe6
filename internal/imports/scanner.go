// Package imports lists the top-level modules a Python script imports.
//
// Results feed the --collect-all module picker and are advisory only: any
// failure to read or parse a script degrades to an empty list.
package imports

import (
	"context"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"pyinstaller-builder/internal/logger"
)

const DefaultTimeout = 500 * time.Millisecond

var ErrSyntax = errors.New("python source has syntax errors")

// python2Statements parse without error nodes but are invalid Python 3
var python2Statements = map[string]bool{
	"print_statement": true,
	"exec_statement":  true,
}

// Scanner parses Python sources with tree-sitter
type Scanner struct {
	Timeout time.Duration
	Logger  logger.Logger
}

func NewScanner(timeout time.Duration, log logger.Logger) *Scanner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Scanner{Timeout: timeout, Logger: log}
}

var defaultScanner = NewScanner(DefaultTimeout, nil)

// Scan reads scriptPath with the default scanner
func Scan(ctx context.Context, scriptPath string) []string {
	return defaultScanner.Scan(ctx, scriptPath)
}

// Scan never fails; unreadable or invalid scripts yield an empty list.
func (s *Scanner) Scan(ctx context.Context, scriptPath string) []string {
	src, err := os.ReadFile(scriptPath)
	if err != nil {
		s.Logger.Debug("ImportScanner", "script unreadable", map[string]interface{}{
			"path":  scriptPath,
			"error": err.Error(),
		})
		return []string{}
	}

	modules, err := s.Modules(ctx, src)
	if err != nil {
		s.Logger.Debug("ImportScanner", "scan degraded to empty result", map[string]interface{}{
			"path":  scriptPath,
			"error": err.Error(),
		})
		return []string{}
	}
	return modules
}

// ScanSource is Scan for in-memory sources
func (s *Scanner) ScanSource(ctx context.Context, src []byte) []string {
	modules, err := s.Modules(ctx, src)
	if err != nil {
		return []string{}
	}
	return modules
}

// Modules returns the sorted, de-duplicated root module names imported by src.
func (s *Scanner) Modules(ctx context.Context, src []byte) ([]string, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, errors.Wrap(err, "parse python source")
	}
	if tree == nil {
		return nil, errors.New("parse python source: no tree")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, ErrSyntax
	}

	seen := make(map[string]struct{})
	legacy := false
	visitNodes(root, func(n *sitter.Node) {
		if python2Statements[n.Type()] {
			legacy = true
		}
		for _, name := range importedNames(n, src) {
			if head := rootSegment(name); head != "" {
				seen[head] = struct{}{}
			}
		}
	})

	if legacy {
		return nil, ErrSyntax
	}

	modules := make([]string, 0, len(seen))
	for m := range seen {
		modules = append(modules, m)
	}
	sort.Strings(modules)
	return modules, nil
}

// importedNames extracts the dotted module names an import node refers to.
// For "from X import ..." only X counts, not the imported members.
func importedNames(n *sitter.Node, src []byte) []string {
	switch n.Type() {
	case "import_statement":
		var names []string
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			switch child.Type() {
			case "dotted_name":
				names = append(names, child.Content(src))
			case "aliased_import":
				if name := child.ChildByFieldName("name"); name != nil {
					names = append(names, name.Content(src))
				}
			}
		}
		return names

	case "import_from_statement":
		module := n.ChildByFieldName("module_name")
		if module == nil {
			return nil
		}
		if module.Type() == "relative_import" {
			// "from . import x" names no module; "from .pkg import x" names pkg
			for i := 0; i < int(module.NamedChildCount()); i++ {
				if child := module.NamedChild(i); child.Type() == "dotted_name" {
					return []string{child.Content(src)}
				}
			}
			return nil
		}
		return []string{module.Content(src)}

	case "future_import_statement":
		return []string{"__future__"}
	}
	return nil
}

func rootSegment(name string) string {
	head, _, _ := strings.Cut(strings.TrimSpace(name), ".")
	return strings.TrimSpace(head)
}

func visitNodes(n *sitter.Node, f func(node *sitter.Node)) {
	f(n)
	for i := 0; i < int(n.ChildCount()); i++ {
		visitNodes(n.Child(i), f)
	}
}
