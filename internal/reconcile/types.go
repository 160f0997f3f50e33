package reconcile

import (
	"time"

	"kubedeploy/internal/cluster"
)

// Classification is the verdict on a namespace's current contents, judged
// against a target's ownership predicate.
type Classification string

const (
	// ClassEmpty means the namespace holds no resources.
	ClassEmpty Classification = "Empty"

	// ClassAllOwned means every resource satisfies the ownership predicate.
	ClassAllOwned Classification = "AllOwned"

	// ClassMixed means at least one resource does not satisfy the
	// ownership predicate.
	ClassMixed Classification = "Mixed"
)

// ConflictDecision is the operator's answer when a namespace holds foreign
// resources.
type ConflictDecision string

const (
	// DecisionContinue deploys on top of the existing resources.
	DecisionContinue ConflictDecision = "continue"

	// DecisionRecreate deletes and recreates the namespace first.
	DecisionRecreate ConflictDecision = "recreate"

	// DecisionAbort terminates the run without mutating the cluster.
	DecisionAbort ConflictDecision = "abort"
)

// ReadinessState is the terminal state of one readiness wait.
type ReadinessState string

const (
	// ReadinessReady means every watched pod reported all containers ready.
	ReadinessReady ReadinessState = "Ready"

	// ReadinessTimedOut means the timeout elapsed first.
	ReadinessTimedOut ReadinessState = "TimedOut"
)

// ReadinessOutcome is the result of one readiness wait, with the last
// observed snapshot attached for diagnostics.
type ReadinessOutcome struct {
	State    ReadinessState
	Snapshot cluster.Snapshot
	Polls    int
	Elapsed  time.Duration
}

// Outcome summarizes how a reconciliation run ended.
type Outcome string

const (
	// OutcomeDeployed means manifests were applied and all workloads
	// became ready.
	OutcomeDeployed Outcome = "Deployed"

	// OutcomeAlreadyDeployed means the namespace already held exactly the
	// expected resources; nothing was applied.
	OutcomeAlreadyDeployed Outcome = "AlreadyDeployed"

	// OutcomeRemoved means the namespace was deleted.
	OutcomeRemoved Outcome = "Removed"

	// OutcomeNamespaceAbsent means uninstall found nothing to remove.
	OutcomeNamespaceAbsent Outcome = "NamespaceAbsent"
)

// Report is the final state handed back to the operator after a run.
type Report struct {
	Target    string
	Namespace string
	Outcome   Outcome

	// Snapshot is the final namespace listing, where one was taken.
	Snapshot cluster.Snapshot
}
