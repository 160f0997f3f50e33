package execute

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"kubedeploy/pkg/logging"

	"github.com/google/uuid"
)

// Result is the outcome of one external command invocation: exit status,
// captured output, and a success flag. A non-zero exit is data, not an
// error; escalation policy belongs to the caller.
type Result struct {
	// Command is the full command line that was run.
	Command string

	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// ExitCode is the process exit status. -1 means the process could not
	// be started at all (binary missing, permission denied).
	ExitCode int
}

// Success reports whether the command exited zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Output returns stdout if non-empty, otherwise stderr, trimmed.
// Convenient for log and error messages.
func (r Result) Output() string {
	if s := strings.TrimSpace(r.Stdout); s != "" {
		return s
	}
	return strings.TrimSpace(r.Stderr)
}

// Options controls a single invocation.
type Options struct {
	// Input is text piped to the command's stdin, if non-empty.
	Input string

	// Dir is the working directory for the command. Empty means inherit.
	Dir string

	// Fatal treats a non-zero exit as an error returned to the caller,
	// rather than a Result the caller inspects.
	Fatal bool
}

// CommandFailedError is returned when Options.Fatal is set and the command
// exited non-zero.
type CommandFailedError struct {
	Result Result
}

func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("command %q failed with exit code %d: %s",
		e.Result.Command, e.Result.ExitCode, e.Result.Output())
}

// Runner runs external commands. The shell-backed implementation below is
// the only component of kubedeploy that touches the outside world; tests
// substitute in-memory runners.
type Runner interface {
	Run(ctx context.Context, opts Options, name string, args ...string) (Result, error)
}

// Executor is the process-spawning Runner. Every invocation is recorded
// verbatim (command line, output, exit code) to the audit sink, tagged with
// a run ID that is unique per Executor instance.
type Executor struct {
	audit AuditSink
	runID string
}

// NewExecutor creates an Executor recording to the given audit sink.
// A nil sink disables auditing.
func NewExecutor(audit AuditSink) *Executor {
	return &Executor{
		audit: audit,
		runID: uuid.NewString(),
	}
}

// RunID returns the identifier tagging this executor's audit entries.
func (e *Executor) RunID() string {
	return e.runID
}

// Run executes the command and captures its output. The returned error is
// non-nil only for Fatal-mode non-zero exits; spawn failures are folded into
// the Result with ExitCode -1 so callers see one uniform shape.
func (e *Executor) Run(ctx context.Context, opts Options, name string, args ...string) (Result, error) {
	cmdLine := name
	if len(args) > 0 {
		cmdLine = name + " " + strings.Join(args, " ")
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	if opts.Input != "" {
		cmd.Stdin = strings.NewReader(opts.Input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := Result{Command: cmdLine}
	err := cmd.Run()
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	switch {
	case err == nil:
		result.ExitCode = 0
	default:
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
			if result.Stderr == "" {
				result.Stderr = err.Error()
			}
		}
	}

	e.record(result)
	logging.Debug("Executor", "%s (exit %d)", cmdLine, result.ExitCode)

	if opts.Fatal && !result.Success() {
		return result, &CommandFailedError{Result: result}
	}
	return result, nil
}

func (e *Executor) record(result Result) {
	if e.audit == nil {
		return
	}
	e.audit.Record(AuditEntry{
		Time:     time.Now(),
		RunID:    e.runID,
		Command:  result.Command,
		Output:   result.Output(),
		ExitCode: result.ExitCode,
	})
}
