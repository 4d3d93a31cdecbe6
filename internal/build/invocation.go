package build

import (
	"fmt"
	"sync"
	"time"

	"pyinstaller-builder/internal/models"
)

// invocation carries the observer of one Run call. Callbacks run through the
// runner's Dispatcher; a panicking callback turns the outcome into a failure
// and silences the remaining lines.
type invocation struct {
	id      string
	command string
	dir     string
	started time.Time
	onLine  func(string)
	onDone  func(models.BuildOutcome)
	runner  *Runner

	mu       sync.Mutex
	panicMsg string
	lines    int

	finishOnce sync.Once
}

func (inv *invocation) emit(line string) {
	inv.runner.dispatch(func() {
		if inv.broken() != "" {
			return
		}
		defer inv.recoverCallback()
		inv.onLine(line)

		inv.mu.Lock()
		inv.lines++
		inv.mu.Unlock()
	})
}

// finish queues the single terminal callback. The runner leaves Running only
// when it is delivered, so a new build cannot overtake queued lines.
func (inv *invocation) finish(outcome models.BuildOutcome) {
	inv.finishOnce.Do(func() {
		inv.runner.dispatch(func() {
			if msg := inv.broken(); msg != "" {
				outcome = inv.failure("Error: "+msg, outcome.ExitCode)
			}

			inv.runner.mu.Lock()
			inv.runner.state = outcome.State()
			inv.runner.mu.Unlock()

			inv.mu.Lock()
			lines := inv.lines
			inv.mu.Unlock()

			inv.runner.logger.Info("BuildRunner", "build finished", map[string]interface{}{
				"build_id":    inv.id,
				"succeeded":   outcome.Succeeded,
				"exit_code":   outcome.ExitCode,
				"duration_ms": outcome.Duration.Milliseconds(),
				"lines":       lines,
			})

			defer func() {
				if p := recover(); p != nil {
					inv.runner.logger.Error("BuildRunner", fmt.Errorf("done callback panic: %v", p), map[string]interface{}{
						"build_id": inv.id,
					})
				}
			}()
			inv.onDone(outcome)
		})
	})
}

func (inv *invocation) recoverCallback() {
	if p := recover(); p != nil {
		inv.mu.Lock()
		if inv.panicMsg == "" {
			inv.panicMsg = fmt.Sprint(p)
		}
		inv.mu.Unlock()
	}
}

func (inv *invocation) broken() string {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.panicMsg
}

func (inv *invocation) success() models.BuildOutcome {
	return models.BuildOutcome{
		ID:        inv.id,
		Succeeded: true,
		Message:   MessageSucceeded,
		ExitCode:  0,
		Duration:  time.Since(inv.started),
	}
}

func (inv *invocation) failure(message string, exitCode int) models.BuildOutcome {
	return models.BuildOutcome{
		ID:       inv.id,
		Message:  message,
		ExitCode: exitCode,
		Duration: time.Since(inv.started),
	}
}
