package reconcile

import (
	"fmt"
	"strings"
	"time"

	"kubedeploy/internal/cluster"
)

// The error taxonomy below is terminal for the current run: nothing is
// retried automatically except the readiness waiter's internal poll. Each
// error carries enough context to tell the operator exactly what state the
// namespace was left in.

// IdentityMismatchError indicates the running OS user differs from the
// configured principal.
type IdentityMismatchError struct {
	Expected string
	Actual   string
}

func (e *IdentityMismatchError) Error() string {
	return fmt.Sprintf("this deployment must be run by %q, current user is %q", e.Expected, e.Actual)
}

// ClusterUnavailableError indicates the cluster control plane is not
// reporting a running state.
type ClusterUnavailableError struct {
	Detail string
}

func (e *ClusterUnavailableError) Error() string {
	msg := "cluster is not running; start it before deploying"
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// ArtifactFetchFailedError indicates required files are still absent after
// the fetch attempt (or no fetch source is configured).
type ArtifactFetchFailedError struct {
	Missing []string
	Source  string
	Reason  error
}

func (e *ArtifactFetchFailedError) Error() string {
	msg := fmt.Sprintf("required artifacts missing: %s", strings.Join(e.Missing, ", "))
	if e.Source != "" {
		msg += fmt.Sprintf(" (fetch from %s failed)", e.Source)
	}
	if e.Reason != nil {
		msg += ": " + e.Reason.Error()
	}
	return msg
}

func (e *ArtifactFetchFailedError) Unwrap() error { return e.Reason }

// NamespaceCreateFailedError indicates the namespace create (or recreate)
// command itself errored.
type NamespaceCreateFailedError struct {
	Namespace string
	Reason    error
}

func (e *NamespaceCreateFailedError) Error() string {
	return fmt.Sprintf("could not create namespace %q: %v", e.Namespace, e.Reason)
}

func (e *NamespaceCreateFailedError) Unwrap() error { return e.Reason }

// ApplyFailedError identifies the manifest that failed and carries the
// captured command output. Earlier manifests of the same target may already
// be applied; partial application is reported, not rolled back.
type ApplyFailedError struct {
	Manifest  string
	Namespace string
	Reason    error
}

func (e *ApplyFailedError) Error() string {
	return fmt.Sprintf("apply of %s to namespace %q failed: %v", e.Manifest, e.Namespace, e.Reason)
}

func (e *ApplyFailedError) Unwrap() error { return e.Reason }

// ReadinessTimeoutError indicates a workload never became ready within the
// configured timeout. The deployment is left in place.
type ReadinessTimeoutError struct {
	Workload string
	Elapsed  time.Duration
	Snapshot cluster.Snapshot
}

func (e *ReadinessTimeoutError) Error() string {
	return fmt.Sprintf("workload %q did not become ready within %s", e.Workload, e.Elapsed)
}

// UserAbortedError indicates the operator chose to abort at the conflict
// prompt. Nothing was mutated.
type UserAbortedError struct {
	Snapshot cluster.Snapshot
}

func (e *UserAbortedError) Error() string {
	return "deployment aborted by operator; namespace left untouched"
}

// InvalidUserInputError indicates the operator never gave a recognized
// answer within the allowed attempts.
type InvalidUserInputError struct {
	Attempts int
	Last     string
}

func (e *InvalidUserInputError) Error() string {
	return fmt.Sprintf("no recognized answer after %d attempts (last input %q)", e.Attempts, e.Last)
}
