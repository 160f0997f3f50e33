package reconcile

import (
	"context"
	"strings"

	"kubedeploy/internal/cluster"
	"kubedeploy/pkg/logging"
)

// Ownership is the predicate deciding whether an existing resource was
// created by a prior run of the same target. Matching is by naming
// convention (case-insensitive substring on the kind-qualified name), not
// by cluster ownership metadata: the point is idempotent detection across
// independent runs, and a stable name prefix survives where object-graph
// ownership does not.
type Ownership struct {
	prefixes []string
}

// NewOwnership builds the predicate from a target's owned prefixes.
func NewOwnership(prefixes []string) Ownership {
	lowered := make([]string, len(prefixes))
	for i, p := range prefixes {
		lowered[i] = strings.ToLower(p)
	}
	return Ownership{prefixes: lowered}
}

// Owns reports whether the resource name satisfies the predicate.
func (o Ownership) Owns(name string) bool {
	lower := strings.ToLower(name)
	for _, p := range o.prefixes {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// Inspector queries a namespace and classifies its contents.
type Inspector struct {
	client cluster.Client
}

// NewInspector creates an inspector over the given cluster client.
func NewInspector(client cluster.Client) *Inspector {
	return &Inspector{client: client}
}

// Snapshot lists every resource in the namespace. An empty namespace yields
// an empty snapshot, not an error.
func (i *Inspector) Snapshot(ctx context.Context, namespace string) (cluster.Snapshot, error) {
	snap, err := i.client.ListResources(ctx, namespace)
	if err != nil {
		return cluster.Snapshot{}, err
	}
	logging.Debug("Inspector", "Namespace %q holds %d resources", namespace, len(snap.Resources))
	return snap, nil
}

// Classify derives the namespace verdict from a snapshot and the ownership
// predicate. Deterministic: Empty for zero entries, AllOwned when every
// entry matches, Mixed otherwise.
func Classify(snap cluster.Snapshot, ownership Ownership) Classification {
	if snap.Empty() {
		return ClassEmpty
	}
	for _, res := range snap.Resources {
		if !ownership.Owns(res.Name) {
			return ClassMixed
		}
	}
	return ClassAllOwned
}
