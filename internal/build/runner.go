// Package build runs a composed command line as a child process and relays
// its console output line by line.
package build

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"pyinstaller-builder/internal/logger"
	"pyinstaller-builder/internal/models"
)

const (
	MessageSucceeded = "Build completed successfully."
	MessageFailed    = "Build error. Check logs for details."
)

var (
	ErrBuildInProgress = errors.New("a build is already running")
	ErrRunnerClosed    = errors.New("build runner is shut down")
)

// Dispatcher hands a callback to the goroutine that owns the observer.
// Implementations must run callbacks in the order they were dispatched.
type Dispatcher func(func())

// Options configures a Runner
type Options struct {
	Dispatch Dispatcher
	Logger   logger.Logger
}

// Runner executes one build at a time.
type Runner struct {
	mu     sync.Mutex
	state  models.BuildState
	closed bool
	wg     sync.WaitGroup

	dispatch Dispatcher
	logger   logger.Logger

	// For mocking in tests
	commandFunc func(command, dir string) *exec.Cmd
	lookPath    func(file string) (string, error)
}

func NewRunner(opts *Options) *Runner {
	if opts == nil {
		opts = &Options{}
	}

	r := &Runner{
		state:       models.StateIdle,
		dispatch:    opts.Dispatch,
		logger:      opts.Logger,
		commandFunc: shellCommand,
		lookPath:    exec.LookPath,
	}
	if r.dispatch == nil {
		r.dispatch = func(f func()) { f() }
	}
	if r.logger == nil {
		r.logger = logger.NoOpLogger{}
	}
	return r
}

func (r *Runner) State() models.BuildState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Run starts command through the platform shell in workingDir and returns
// immediately. onLine receives every output line in emission order, then
// onDone receives the outcome exactly once; both go through the Dispatcher.
// Run refuses to start while a previous invocation has not delivered onDone.
func (r *Runner) Run(command, workingDir string, onLine func(string), onDone func(models.BuildOutcome)) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrRunnerClosed
	}
	if r.state == models.StateRunning {
		r.mu.Unlock()
		return ErrBuildInProgress
	}
	r.state = models.StateRunning
	r.mu.Unlock()

	if onLine == nil {
		onLine = func(string) {}
	}
	if onDone == nil {
		onDone = func(models.BuildOutcome) {}
	}

	inv := &invocation{
		id:      uuid.NewString(),
		command: command,
		dir:     workingDir,
		started: time.Now(),
		onLine:  onLine,
		onDone:  onDone,
		runner:  r,
	}

	r.logger.Info("BuildRunner", "build started", map[string]interface{}{
		"build_id":    inv.id,
		"command":     command,
		"working_dir": workingDir,
	})

	r.wg.Add(1)
	go r.execute(inv)
	return nil
}

// Wait blocks until every started worker has finished reading and reaping
// its process. Outcomes may still be queued in the Dispatcher.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// Shutdown stops new builds from starting. A running build is left to finish.
func (r *Runner) Shutdown() {
	r.mu.Lock()
	r.closed = true
	running := r.state == models.StateRunning
	r.mu.Unlock()

	if running {
		r.logger.Warning("BuildRunner", "shutdown while a build is running", nil)
	}
}

func (r *Runner) execute(inv *invocation) {
	defer r.wg.Done()

	var cmd *exec.Cmd
	defer func() {
		if p := recover(); p != nil {
			if cmd != nil && cmd.Process != nil {
				_ = cmd.Process.Kill()
				_ = cmd.Wait()
			}
			r.logger.Error("BuildRunner", fmt.Errorf("panic: %v", p), map[string]interface{}{
				"build_id": inv.id,
			})
			inv.finish(inv.failure(fmt.Sprintf("Error: %v", p), -1))
		}
	}()

	cmd, output, err := r.launch(inv.command, inv.dir)
	if err != nil {
		r.logger.Error("BuildRunner", err, map[string]interface{}{
			"build_id": inv.id,
			"stage":    "launch",
		})
		inv.finish(inv.failure("Error: "+err.Error(), -1))
		return
	}

	readErr := readLines(output, inv.emit)
	if readErr != nil {
		_ = cmd.Process.Kill()
	}
	waitErr := cmd.Wait()

	switch {
	case readErr != nil:
		inv.finish(inv.failure("Error: "+errors.Wrap(readErr, "read build output").Error(), -1))
	case waitErr == nil:
		inv.finish(inv.success())
	default:
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			inv.finish(inv.failure(MessageFailed, exitErr.ExitCode()))
		} else {
			inv.finish(inv.failure("Error: "+waitErr.Error(), -1))
		}
	}
}

// launch validates the working directory and the invoked executable before
// starting the shell, so that launch problems never produce output lines.
func (r *Runner) launch(command, dir string) (*exec.Cmd, io.Reader, error) {
	if strings.TrimSpace(command) == "" {
		return nil, nil, errors.New("empty command")
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "working directory %q", dir)
	}
	if !info.IsDir() {
		return nil, nil, errors.Errorf("working directory %q is not a directory", dir)
	}

	if exe := executableName(command); exe != "" {
		if _, err := r.lookPath(resolveRelative(exe, dir)); err != nil {
			return nil, nil, errors.Wrapf(err, "command %q not found", exe)
		}
	}

	cmd := r.commandFunc(command, dir)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, errors.Wrap(err, "create output pipe")
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return nil, nil, errors.Wrap(err, "start build process")
	}
	return cmd, stdout, nil
}

// readLines delivers each newline-terminated line without its terminator,
// plus a final unterminated line. Lines have no length limit.
func readLines(r io.Reader, emit func(string)) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			emit(strings.ToValidUTF8(line, "\uFFFD"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
