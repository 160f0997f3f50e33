// Package reconcile implements the idempotent namespace-deployment
// reconciler shared by every kubedeploy target.
//
// Given the current state of a namespace, the reconciler decides whether to
// deploy, skip, or destroy-and-redeploy, and waits for the resulting
// workloads to become healthy within a bounded time. The workflow is:
//
//	preconditions -> inspect -> classify -> (conflict prompt) -> apply -> wait -> report
//
// Classification is deterministic: Empty (no resources), AllOwned (every
// resource matches the target's ownership predicate), or Mixed. AllOwned
// terminates successfully without reapplying anything, which is what makes
// a second deploy against a healthy namespace a no-op. Mixed puts the
// operator in the loop: continue on top, recreate the namespace, or abort.
//
// Everything that touches the cluster goes through the cluster.Client
// capability, and every interactive decision goes through the Prompter
// capability, so the whole package runs against in-memory doubles in tests.
//
// One reconciliation run per invocation, single-threaded. Two concurrent
// runs against the same namespace are unsupported; no lock is taken.
package reconcile
