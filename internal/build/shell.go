package build

import (
	"path/filepath"
	"strings"
)

// shellBuiltins are first words that resolve inside the shell, not on PATH:
// POSIX reserved words and builtins, plus cmd.exe internal commands.
var shellBuiltins = map[string]bool{
	// POSIX reserved words
	"!": true, "{": true, "}": true, "case": true, "do": true, "done": true,
	"elif": true, "else": true, "esac": true, "fi": true, "for": true,
	"function": true, "if": true, "in": true, "select": true, "then": true,
	"time": true, "until": true, "while": true,

	// POSIX special and regular builtins
	".": true, ":": true, "alias": true, "bg": true, "break": true,
	"builtin": true, "cd": true, "command": true, "continue": true,
	"declare": true, "echo": true, "eval": true, "exec": true, "exit": true,
	"export": true, "false": true, "fc": true, "fg": true, "getopts": true,
	"hash": true, "jobs": true, "kill": true, "let": true, "local": true,
	"printf": true, "pwd": true, "read": true, "readonly": true,
	"return": true, "set": true, "shift": true, "source": true, "test": true,
	"times": true, "trap": true, "true": true, "type": true, "typeset": true,
	"ulimit": true, "umask": true, "unalias": true, "unset": true,
	"wait": true,

	// cmd.exe internal commands
	"assoc": true, "call": true, "chdir": true, "cls": true, "color": true,
	"copy": true, "date": true, "del": true, "dir": true, "endlocal": true,
	"erase": true, "ftype": true, "goto": true, "md": true, "mkdir": true,
	"mklink": true, "move": true, "path": true, "pause": true, "popd": true,
	"prompt": true, "pushd": true, "rd": true, "rem": true, "ren": true,
	"rename": true, "rmdir": true, "setlocal": true,
	"start": true, "title": true, "ver": true, "verify": true, "vol": true,
}

// controlSyntax marks commands whose first word is not necessarily the
// program the shell runs: lists, pipelines, substitutions and redirects.
const controlSyntax = ";&|`\n<>()"

// executableName returns the program the shell would run first, or "" when
// the command starts with something the shell resolves itself.
func executableName(command string) string {
	command = strings.TrimSpace(command)
	if command == "" || strings.ContainsAny(command, controlSyntax) || strings.Contains(command, "$(") {
		return ""
	}

	var word string
	if q := command[0]; q == '"' || q == '\'' {
		end := strings.IndexByte(command[1:], q)
		if end < 0 {
			return ""
		}
		word = command[1 : end+1]
	} else {
		word = command
		if i := strings.IndexAny(command, " \t"); i >= 0 {
			word = command[:i]
		}
		if strings.ContainsAny(word, "=$*?~!{}[]%") {
			return ""
		}
	}

	if word == "" || shellBuiltins[strings.ToLower(strings.TrimSuffix(word, ".exe"))] {
		return ""
	}
	return word
}

// resolveRelative anchors a relative program path to the build directory,
// where the shell will look for it.
func resolveRelative(exe, dir string) string {
	if filepath.IsAbs(exe) || !strings.ContainsAny(exe, `/\`) {
		return exe
	}
	return filepath.Join(dir, exe)
}
