package reconcile

import (
	"context"

	"kubedeploy/internal/cluster"
	"kubedeploy/pkg/logging"
)

// ApplyEngine submits a target's manifests to the cluster.
type ApplyEngine struct {
	client cluster.Client
}

// NewApplyEngine creates an apply engine over the given cluster client.
func NewApplyEngine(client cluster.Client) *ApplyEngine {
	return &ApplyEngine{client: client}
}

// Apply submits each manifest in the order given, stopping at the first
// failure. Application is not transactional: manifests applied before the
// failure stay applied, and the error names the manifest that failed.
func (a *ApplyEngine) Apply(ctx context.Context, namespace string, manifests []string) error {
	for _, manifest := range manifests {
		logging.Info("Apply", "Applying %s to namespace %q", manifest, namespace)
		if err := a.client.Apply(ctx, namespace, manifest); err != nil {
			return &ApplyFailedError{
				Manifest:  manifest,
				Namespace: namespace,
				Reason:    err,
			}
		}
	}
	return nil
}
