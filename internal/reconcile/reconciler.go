package reconcile

import (
	"context"
	"fmt"
	"time"

	"kubedeploy/internal/artifacts"
	"kubedeploy/internal/cluster"
	"kubedeploy/internal/config"
	"kubedeploy/pkg/logging"
)

// Options wires the reconciler's collaborators and policy knobs.
type Options struct {
	// Client is the cluster capability. Required.
	Client cluster.Client

	// Fetcher retrieves missing artifacts. Nil disables fetching.
	Fetcher artifacts.Fetcher

	// Prompter obtains conflict decisions from the operator. Required for
	// deploys that can hit a Mixed namespace.
	Prompter Prompter

	// Identity reports the running principal. Nil means the current OS user.
	Identity IdentityFunc

	// Principal is the expected principal name.
	Principal string

	// PollInterval and PollTimeout govern the readiness waiter.
	PollInterval time.Duration
	PollTimeout  time.Duration

	// DeleteInterval and DeleteAttempts bound the wait for namespace
	// deletion to finish, on the recreate path and during uninstall.
	DeleteInterval time.Duration
	DeleteAttempts int

	// Progress, when set, shows activity during readiness waits.
	Progress Progress
}

// Reconciler composes the precondition checker, namespace inspector,
// conflict resolver, apply engine, and readiness waiter into the full
// deploy and uninstall workflows. One reconciliation run per call; no
// coordination exists for concurrent runs against the same namespace.
type Reconciler struct {
	client         cluster.Client
	pre            *Preconditions
	inspector      *Inspector
	resolver       *Resolver
	applier        *ApplyEngine
	waiter         *Waiter
	principal      string
	deleteInterval time.Duration
	deleteAttempts int

	// sleep is injected by tests; also used by the deletion poll.
	sleep func(time.Duration)
}

// New creates a reconciler from the given options, filling policy defaults
// (2s delete poll, 30 attempts).
func New(opts Options) *Reconciler {
	if opts.DeleteInterval <= 0 {
		opts.DeleteInterval = 2 * time.Second
	}
	if opts.DeleteAttempts <= 0 {
		opts.DeleteAttempts = 30
	}
	waiter := NewWaiter(opts.Client, opts.PollInterval, opts.PollTimeout)
	if opts.Progress != nil {
		waiter.WithProgress(opts.Progress)
	}
	return &Reconciler{
		client:         opts.Client,
		pre:            NewPreconditions(opts.Client, opts.Fetcher, opts.Identity),
		inspector:      NewInspector(opts.Client),
		resolver:       NewResolver(opts.Prompter),
		applier:        NewApplyEngine(opts.Client),
		waiter:         waiter,
		principal:      opts.Principal,
		deleteInterval: opts.DeleteInterval,
		deleteAttempts: opts.DeleteAttempts,
		sleep:          time.Sleep,
	}
}

// Deploy runs the full deployment workflow for one target.
//
// Preconditions run first; nothing touches the cluster until identity,
// cluster availability, and artifacts have all checked out. The namespace
// is then classified: AllOwned terminates successfully without reapplying,
// Mixed routes through the conflict resolver, Empty proceeds directly.
// After apply, every workload is waited on in order; a timeout leaves the
// partial deployment in place and reports it.
func (r *Reconciler) Deploy(ctx context.Context, name string, target config.Target, workDir string) (Report, error) {
	report := Report{Target: name, Namespace: target.Namespace}

	if err := r.pre.VerifyIdentity(r.principal); err != nil {
		return report, err
	}
	if err := r.pre.VerifyCluster(ctx); err != nil {
		return report, err
	}
	if err := r.pre.VerifyArtifacts(ctx, target.Required(), target.ArtifactSource, workDir); err != nil {
		return report, err
	}
	if err := r.pre.EnsureNamespace(ctx, target.Namespace); err != nil {
		return report, err
	}

	snap, err := r.inspector.Snapshot(ctx, target.Namespace)
	if err != nil {
		return report, err
	}
	ownership := NewOwnership(target.OwnedPrefixes)

	switch Classify(snap, ownership) {
	case ClassAllOwned:
		logging.Info("Reconciler", "Namespace %q already holds the expected resources; nothing to do", target.Namespace)
		report.Outcome = OutcomeAlreadyDeployed
		report.Snapshot = snap
		return report, nil

	case ClassMixed:
		decision, err := r.resolver.Resolve(snap)
		if err != nil {
			return report, err
		}
		switch decision {
		case DecisionAbort:
			return report, &UserAbortedError{Snapshot: snap}
		case DecisionRecreate:
			if err := r.recreateNamespace(ctx, target.Namespace); err != nil {
				return report, err
			}
		case DecisionContinue:
			logging.Info("Reconciler", "Continuing deployment over existing resources in %q", target.Namespace)
		}

	case ClassEmpty:
		// Proceed directly to apply.
	}

	if err := r.applier.Apply(ctx, target.Namespace, target.Manifests); err != nil {
		return report, err
	}

	for _, workload := range target.Workloads {
		outcome, err := r.waiter.Wait(ctx, target.Namespace, workload.Selector)
		if err != nil {
			return report, err
		}
		if outcome.State == ReadinessTimedOut {
			return report, &ReadinessTimeoutError{
				Workload: workload.Name,
				Elapsed:  outcome.Elapsed,
				Snapshot: outcome.Snapshot,
			}
		}
	}

	final, err := r.inspector.Snapshot(ctx, target.Namespace)
	if err != nil {
		return report, err
	}
	report.Outcome = OutcomeDeployed
	report.Snapshot = final
	logging.Info("Reconciler", "Deployment of %q completed successfully", name)
	return report, nil
}

// Uninstall removes a target's namespace. An absent namespace is a
// reported no-op. Deletion is awaited to completion with the same bounded
// poll as the recreate path.
func (r *Reconciler) Uninstall(ctx context.Context, name string, target config.Target) (Report, error) {
	report := Report{Target: name, Namespace: target.Namespace}

	if err := r.pre.VerifyIdentity(r.principal); err != nil {
		return report, err
	}

	exists, err := r.client.NamespaceExists(ctx, target.Namespace)
	if err != nil {
		return report, err
	}
	if !exists {
		logging.Info("Reconciler", "Namespace %q does not exist; nothing to remove", target.Namespace)
		report.Outcome = OutcomeNamespaceAbsent
		return report, nil
	}

	if err := r.client.DeleteNamespace(ctx, target.Namespace); err != nil {
		return report, err
	}
	if err := r.awaitNamespaceGone(ctx, target.Namespace); err != nil {
		return report, err
	}
	logging.Info("Reconciler", "Namespace %q removed", target.Namespace)
	report.Outcome = OutcomeRemoved
	return report, nil
}

// recreateNamespace deletes the namespace, waits for the deletion to
// finish, and creates it again. The post-condition is a namespace with
// zero resources; apply never starts against a half-deleted namespace.
func (r *Reconciler) recreateNamespace(ctx context.Context, namespace string) error {
	logging.Info("Reconciler", "Recreating namespace %q for a fresh deployment", namespace)
	if err := r.client.DeleteNamespace(ctx, namespace); err != nil {
		return err
	}
	if err := r.awaitNamespaceGone(ctx, namespace); err != nil {
		return err
	}
	if err := r.client.CreateNamespace(ctx, namespace); err != nil {
		return &NamespaceCreateFailedError{Namespace: namespace, Reason: err}
	}
	return nil
}

// awaitNamespaceGone polls until the namespace no longer exists, bounded by
// deleteAttempts checks at deleteInterval spacing.
func (r *Reconciler) awaitNamespaceGone(ctx context.Context, namespace string) error {
	for attempt := 0; attempt < r.deleteAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		exists, err := r.client.NamespaceExists(ctx, namespace)
		if err != nil {
			return err
		}
		if !exists {
			logging.Debug("Reconciler", "Namespace %q deleted after %d checks", namespace, attempt+1)
			return nil
		}
		r.sleep(r.deleteInterval)
	}
	return fmt.Errorf("namespace %q still present after %d checks; deletion did not complete", namespace, r.deleteAttempts)
}
