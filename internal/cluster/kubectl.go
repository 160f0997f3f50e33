package cluster

import (
	"context"
	"fmt"
	"strings"

	"kubedeploy/internal/execute"
	"kubedeploy/pkg/logging"
)

// KubectlClient implements Client by driving kubectl and minikube through
// the command executor.
type KubectlClient struct {
	runner execute.Runner

	// workDir is the directory manifest paths are resolved against.
	workDir string
}

// NewKubectlClient creates a kubectl-backed client. workDir may be empty,
// in which case manifest paths are resolved against the process directory.
func NewKubectlClient(runner execute.Runner, workDir string) *KubectlClient {
	return &KubectlClient{
		runner:  runner,
		workDir: workDir,
	}
}

// ClusterRunning checks `minikube status` for a running control plane.
func (c *KubectlClient) ClusterRunning(ctx context.Context) (bool, error) {
	result, err := c.runner.Run(ctx, execute.Options{}, "minikube", "status")
	if err != nil {
		return false, err
	}
	// minikube exits non-zero when components are stopped; the stdout
	// content is still the authoritative signal.
	return strings.Contains(result.Stdout, "Running"), nil
}

// NamespaceExists checks for the namespace via `kubectl get namespace`.
// Only a NotFound failure counts as absence; any other non-zero exit (a
// refused connection, an auth failure) is an error, not a verdict.
func (c *KubectlClient) NamespaceExists(ctx context.Context, name string) (bool, error) {
	result, err := c.runner.Run(ctx, execute.Options{}, "kubectl", "get", "namespace", name)
	if err != nil {
		return false, err
	}
	if result.Success() {
		return true, nil
	}
	if strings.Contains(result.Stderr, "NotFound") || strings.Contains(result.Stderr, "not found") {
		return false, nil
	}
	return false, fmt.Errorf("get namespace %q: %s", name, result.Output())
}

// CreateNamespace creates the namespace, treating already-exists as success.
func (c *KubectlClient) CreateNamespace(ctx context.Context, name string) error {
	result, err := c.runner.Run(ctx, execute.Options{}, "kubectl", "create", "namespace", name)
	if err != nil {
		return err
	}
	if !result.Success() {
		if strings.Contains(result.Stderr, "AlreadyExists") || strings.Contains(result.Stderr, "already exists") {
			logging.Debug("Cluster", "Namespace %q already exists", name)
			return nil
		}
		return fmt.Errorf("create namespace %q: %s", name, result.Output())
	}
	return nil
}

// DeleteNamespace issues the delete without waiting for finalization, so the
// caller controls how long to poll for absence.
func (c *KubectlClient) DeleteNamespace(ctx context.Context, name string) error {
	result, err := c.runner.Run(ctx, execute.Options{}, "kubectl", "delete", "namespace", name, "--wait=false")
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("delete namespace %q: %s", name, result.Output())
	}
	return nil
}

// ListResources lists everything in the namespace via `kubectl get all`.
func (c *KubectlClient) ListResources(ctx context.Context, namespace string) (Snapshot, error) {
	result, err := c.runner.Run(ctx, execute.Options{}, "kubectl", "get", "all", "-n", namespace)
	if err != nil {
		return Snapshot{}, err
	}
	if !result.Success() {
		// "No resources found" lands on stderr with exit 0 on current
		// kubectl; an actual non-zero exit is an inspector failure.
		return Snapshot{}, fmt.Errorf("list resources in %q: %s", namespace, result.Output())
	}
	return ParseListing(namespace, result.Stdout), nil
}

// ListPods lists pods matching the selector via `kubectl get pods -l`.
func (c *KubectlClient) ListPods(ctx context.Context, namespace, selector string) (Snapshot, error) {
	args := []string{"get", "pods", "-n", namespace}
	if selector != "" {
		args = append(args, "-l", selector)
	}
	result, err := c.runner.Run(ctx, execute.Options{}, "kubectl", args...)
	if err != nil {
		return Snapshot{}, err
	}
	if !result.Success() {
		return Snapshot{}, fmt.Errorf("list pods in %q: %s", namespace, result.Output())
	}
	return ParseListing(namespace, result.Stdout), nil
}

// Apply submits one manifest file to the namespace.
func (c *KubectlClient) Apply(ctx context.Context, namespace, manifestPath string) error {
	opts := execute.Options{Dir: c.workDir}
	result, err := c.runner.Run(ctx, opts, "kubectl", "apply", "-f", manifestPath, "-n", namespace)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("apply %s to %q: %s", manifestPath, namespace, result.Output())
	}
	logging.Debug("Cluster", "Applied %s to namespace %q", manifestPath, namespace)
	return nil
}
