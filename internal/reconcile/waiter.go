package reconcile

import (
	"context"
	"time"

	"kubedeploy/internal/cluster"
	"kubedeploy/pkg/logging"
)

// Progress lets the CLI show activity during a wait. Optional; nil means
// silent waiting.
type Progress interface {
	Start(message string)
	Stop()
}

// Waiter polls a workload's pods until all report ready or the timeout
// elapses. Two states exist: polling and terminal. Terminal is absorbing;
// once an outcome is returned the waiter is done.
//
// Polling was chosen over a watch subscription deliberately: the tool holds
// no long-lived connection to the cluster, and a stateless poll loop can be
// restarted from scratch at any time.
type Waiter struct {
	client   cluster.Client
	interval time.Duration
	timeout  time.Duration

	// sleep is injected by tests to avoid real delays.
	sleep func(time.Duration)

	// progress, when set, runs a spinner-style indicator for the duration
	// of the wait.
	progress Progress
}

// NewWaiter creates a waiter with the given poll interval and timeout.
func NewWaiter(client cluster.Client, interval, timeout time.Duration) *Waiter {
	return &Waiter{
		client:   client,
		interval: interval,
		timeout:  timeout,
		sleep:    time.Sleep,
	}
}

// WithProgress attaches a progress indicator and returns the waiter.
func (w *Waiter) WithProgress(p Progress) *Waiter {
	w.progress = p
	return w
}

// Wait polls the pods matching selector in the namespace. It retries only
// the observation: a failed listing counts as a not-ready poll, never as a
// terminal error. The returned outcome always carries the last snapshot.
func (w *Waiter) Wait(ctx context.Context, namespace, selector string) (ReadinessOutcome, error) {
	if w.progress != nil {
		w.progress.Start("Waiting for pods matching " + selector + " in " + namespace)
		defer w.progress.Stop()
	}

	var last cluster.Snapshot
	elapsed := time.Duration(0)
	polls := 0
	for {
		if err := ctx.Err(); err != nil {
			return ReadinessOutcome{State: ReadinessTimedOut, Snapshot: last, Polls: polls, Elapsed: elapsed}, err
		}

		snap, err := w.client.ListPods(ctx, namespace, selector)
		polls++
		if err != nil {
			logging.Warn("Waiter", "Pod listing failed (%v); will retry", err)
		} else {
			last = snap
			if allReady(snap) {
				logging.Info("Waiter", "All pods matching %q in %q are ready after %d polls", selector, namespace, polls)
				return ReadinessOutcome{State: ReadinessReady, Snapshot: snap, Polls: polls, Elapsed: elapsed}, nil
			}
		}

		elapsed += w.interval
		if elapsed >= w.timeout {
			logging.Error("Waiter", nil, "Timeout reached waiting for pods matching %q in %q", selector, namespace)
			return ReadinessOutcome{State: ReadinessTimedOut, Snapshot: last, Polls: polls, Elapsed: elapsed}, nil
		}
		w.sleep(w.interval)
	}
}

// allReady reports whether the snapshot shows at least one pod and every
// pod's ready-container count equals its total.
func allReady(snap cluster.Snapshot) bool {
	if snap.Empty() {
		return false
	}
	for _, res := range snap.Resources {
		if res.Ready == nil || !res.Ready.AllReady() {
			return false
		}
	}
	return true
}
