package reconcile

import (
	"context"
	"os/user"

	"kubedeploy/internal/artifacts"
	"kubedeploy/internal/cluster"
	"kubedeploy/pkg/logging"
)

// IdentityFunc reports the name of the running principal. The production
// wiring uses the current OS user; tests substitute fixed values.
type IdentityFunc func() (string, error)

// CurrentUser is the production IdentityFunc.
func CurrentUser() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// Preconditions verifies everything a deployment needs before the cluster
// is touched. Each check fails fast with its taxonomy error.
type Preconditions struct {
	client   cluster.Client
	fetcher  artifacts.Fetcher
	identity IdentityFunc
}

// NewPreconditions creates the checker. fetcher may be nil, in which case
// missing artifacts fail immediately without a fetch attempt.
func NewPreconditions(client cluster.Client, fetcher artifacts.Fetcher, identity IdentityFunc) *Preconditions {
	if identity == nil {
		identity = CurrentUser
	}
	return &Preconditions{
		client:   client,
		fetcher:  fetcher,
		identity: identity,
	}
}

// VerifyIdentity fails with IdentityMismatchError unless the running
// principal matches the expected one.
func (p *Preconditions) VerifyIdentity(expected string) error {
	actual, err := p.identity()
	if err != nil {
		return err
	}
	if actual != expected {
		return &IdentityMismatchError{Expected: expected, Actual: actual}
	}
	logging.Debug("Preconditions", "Running as expected principal %q", expected)
	return nil
}

// VerifyCluster fails with ClusterUnavailableError unless the control plane
// reports a running state.
func (p *Preconditions) VerifyCluster(ctx context.Context) error {
	running, err := p.client.ClusterRunning(ctx)
	if err != nil {
		return &ClusterUnavailableError{Detail: err.Error()}
	}
	if !running {
		return &ClusterUnavailableError{}
	}
	return nil
}

// VerifyArtifacts ensures every required file exists in the working
// directory, fetching the artifact set from source when any is missing.
// The required set is re-verified after the fetch; a file still absent
// fails with ArtifactFetchFailedError. No partial fetch counts as success.
func (p *Preconditions) VerifyArtifacts(ctx context.Context, required []string, source, dir string) error {
	missing := artifacts.Missing(dir, required)
	if len(missing) == 0 {
		return nil
	}
	if source == "" || p.fetcher == nil {
		return &ArtifactFetchFailedError{Missing: missing}
	}

	logging.Info("Preconditions", "Missing files: %v. Fetching from %s...", missing, source)
	if err := p.fetcher.Fetch(ctx, source, dir); err != nil {
		return &ArtifactFetchFailedError{Missing: missing, Source: source, Reason: err}
	}

	if still := artifacts.Missing(dir, required); len(still) > 0 {
		return &ArtifactFetchFailedError{Missing: still, Source: source}
	}
	return nil
}

// EnsureNamespace creates the namespace if absent. The create itself is
// idempotent (an already-exists race counts as success), so only a real
// create failure surfaces, as NamespaceCreateFailedError.
func (p *Preconditions) EnsureNamespace(ctx context.Context, name string) error {
	exists, err := p.client.NamespaceExists(ctx, name)
	if err != nil {
		return &NamespaceCreateFailedError{Namespace: name, Reason: err}
	}
	if exists {
		logging.Debug("Preconditions", "Namespace %q already exists", name)
		return nil
	}
	if err := p.client.CreateNamespace(ctx, name); err != nil {
		return &NamespaceCreateFailedError{Namespace: name, Reason: err}
	}
	logging.Info("Preconditions", "Created namespace %q", name)
	return nil
}
