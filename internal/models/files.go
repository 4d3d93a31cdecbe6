package models

import (
	"path/filepath"
	"strings"
)

// FileKind is how a dropped or picked file feeds the form
type FileKind int

const (
	KindExtra FileKind = iota
	KindScript
	KindIcon
)

const (
	ScriptExtension = ".py"
	IconExtension   = ".ico"
)

func (k FileKind) String() string {
	switch k {
	case KindScript:
		return "script"
	case KindIcon:
		return "icon"
	default:
		return "extra"
	}
}

// ClassifyFile decides by lower-cased extension
func ClassifyFile(path string) FileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ScriptExtension:
		return KindScript
	case IconExtension:
		return KindIcon
	default:
		return KindExtra
	}
}
