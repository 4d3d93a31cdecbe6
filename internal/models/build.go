package models

import "time"

// BuildOptions is the form state the command is composed from
type BuildOptions struct {
	MainScript    string
	Icon          string
	OutputDir     string
	OneFile       bool
	NoConsole     bool
	ExtraFiles    []string
	ForcedModules []string
}

// BuildState tracks a runner through one invocation
type BuildState int

const (
	StateIdle BuildState = iota
	StateRunning
	StateSucceeded
	StateFailed
)

func (s BuildState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends an invocation
func (s BuildState) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}

// BuildOutcome is delivered exactly once per build invocation.
// ExitCode is -1 when the process never ran or its status is unknown.
type BuildOutcome struct {
	ID        string
	Succeeded bool
	Message   string
	ExitCode  int
	Duration  time.Duration
}

func (o BuildOutcome) State() BuildState {
	if o.Succeeded {
		return StateSucceeded
	}
	return StateFailed
}
