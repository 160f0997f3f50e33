package config

import (
	"path/filepath"
	"time"
)

// Config is the top-level configuration structure for kubedeploy.
type Config struct {
	// BaseDir is the root directory holding per-namespace manifest
	// directories (default /opt/minikube).
	BaseDir string `yaml:"baseDir,omitempty"`

	// Principal is the OS user expected to run deployments (default muser).
	Principal string `yaml:"principal,omitempty"`

	// PollIntervalSeconds is the readiness poll interval (default 10).
	PollIntervalSeconds int `yaml:"pollIntervalSeconds,omitempty"`

	// PollTimeoutSeconds is the readiness wait ceiling (default 300).
	PollTimeoutSeconds int `yaml:"pollTimeoutSeconds,omitempty"`

	// Targets maps target name to its deployment definition. Entries merge
	// over the built-in catalog; a user entry with a known name replaces
	// the built-in one wholesale.
	Targets map[string]Target `yaml:"targets,omitempty"`
}

// Target identifies one reconciliation unit: a namespace, the manifests to
// apply in order, how to recognize our own resources, and how to tell the
// resulting workloads are healthy. Immutable for the duration of a run.
type Target struct {
	// Namespace is the cluster namespace this target owns.
	Namespace string `yaml:"namespace"`

	// Manifests are the manifest file names to apply, in dependency order.
	Manifests []string `yaml:"manifests"`

	// OwnedPrefixes is the ownership predicate: a resource whose
	// kind-qualified name contains any of these (case-insensitive)
	// substrings is considered ours.
	OwnedPrefixes []string `yaml:"ownedPrefixes"`

	// Workloads are the units whose pods must become ready after apply,
	// waited on in order.
	Workloads []Workload `yaml:"workloads"`

	// RequiredFiles are the artifacts that must exist in the working
	// directory before apply. Defaults to Manifests when empty.
	RequiredFiles []string `yaml:"requiredFiles,omitempty"`

	// ArtifactSource is the git repository missing artifacts are fetched
	// from. Empty disables fetching: missing files fail immediately.
	ArtifactSource string `yaml:"artifactSource,omitempty"`
}

// Workload is one unit the readiness waiter watches.
type Workload struct {
	// Name identifies the workload in reports and errors.
	Name string `yaml:"name"`

	// Selector is the pod label selector, e.g. "app=mysql".
	Selector string `yaml:"selector"`
}

// Required returns the artifact list, falling back to the manifest list.
func (t Target) Required() []string {
	if len(t.RequiredFiles) > 0 {
		return t.RequiredFiles
	}
	return t.Manifests
}

// WorkDir returns the working directory for a target's namespace under the
// configured base directory.
func (c Config) WorkDir(t Target) string {
	return filepath.Join(c.BaseDir, "namespaces", t.Namespace)
}

// PollInterval returns the poll interval as a duration.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// PollTimeout returns the poll timeout as a duration.
func (c Config) PollTimeout() time.Duration {
	return time.Duration(c.PollTimeoutSeconds) * time.Second
}
