package cluster

import "context"

// Client is the capability interface the reconciler depends on for every
// cluster interaction. The kubectl-backed implementation shells out through
// the command executor; tests provide an in-memory implementation with the
// same state transitions.
type Client interface {
	// ClusterRunning reports whether the cluster control plane is up.
	ClusterRunning(ctx context.Context) (bool, error)

	// NamespaceExists reports whether the named namespace exists.
	NamespaceExists(ctx context.Context, name string) (bool, error)

	// CreateNamespace creates the named namespace. An already-exists
	// condition is treated as success; the create is idempotent.
	CreateNamespace(ctx context.Context, name string) error

	// DeleteNamespace requests deletion of the named namespace. Deletion is
	// asynchronous on the cluster side; callers that need the namespace
	// gone poll NamespaceExists afterwards.
	DeleteNamespace(ctx context.Context, name string) error

	// ListResources lists every resource in the namespace. An empty
	// snapshot is a normal result, not an error.
	ListResources(ctx context.Context, namespace string) (Snapshot, error)

	// ListPods lists pods in the namespace matching the label selector.
	ListPods(ctx context.Context, namespace, selector string) (Snapshot, error)

	// Apply submits one manifest file to the namespace. A failed apply is
	// reported through the error, carrying the captured command output.
	Apply(ctx context.Context, namespace, manifestPath string) error
}
