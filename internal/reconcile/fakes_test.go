package reconcile

import (
	"context"
	"fmt"
	"time"

	"kubedeploy/internal/cluster"
)

// fakeCluster is an in-memory cluster.Client with real state transitions:
// namespaces exist or not, applies add resources, deletes can linger for a
// configurable number of existence checks to model asynchronous namespace
// finalization.
type fakeCluster struct {
	running    bool
	namespaces map[string]bool
	resources  map[string][]cluster.Resource

	// applyProduces maps manifest name to the resources an apply of that
	// manifest creates in the namespace.
	applyProduces map[string][]cluster.Resource

	// applyErrs maps manifest name to a forced apply failure.
	applyErrs map[string]error

	// podQueues holds scripted pod listings per "namespace|selector" key,
	// consumed one per poll. When a queue is exhausted (or absent) the
	// listing is derived from the namespace's pod-like resources.
	podQueues map[string][]cluster.Snapshot

	// deleteLag is how many existence checks a deleted namespace still
	// appears for before it is finalized.
	deleteLag      int
	pendingDeletes map[string]int

	// existsErr forces NamespaceExists to fail, modeling an unreachable
	// API server.
	existsErr error

	// call records, for asserting ordering and absence of mutations.
	applied          []string
	deleted          []string
	created          []string
	resourcesAtApply []int
}

func newFakeCluster() *fakeCluster {
	return &fakeCluster{
		running:        true,
		namespaces:     make(map[string]bool),
		resources:      make(map[string][]cluster.Resource),
		applyProduces:  make(map[string][]cluster.Resource),
		applyErrs:      make(map[string]error),
		podQueues:      make(map[string][]cluster.Snapshot),
		pendingDeletes: make(map[string]int),
	}
}

func (f *fakeCluster) ClusterRunning(ctx context.Context) (bool, error) {
	return f.running, nil
}

func (f *fakeCluster) NamespaceExists(ctx context.Context, name string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	if lag, ok := f.pendingDeletes[name]; ok {
		if lag <= 0 {
			delete(f.pendingDeletes, name)
			f.namespaces[name] = false
			delete(f.resources, name)
			return false, nil
		}
		f.pendingDeletes[name] = lag - 1
		return true, nil
	}
	return f.namespaces[name], nil
}

func (f *fakeCluster) CreateNamespace(ctx context.Context, name string) error {
	f.created = append(f.created, name)
	f.namespaces[name] = true
	delete(f.pendingDeletes, name)
	f.resources[name] = nil
	return nil
}

func (f *fakeCluster) DeleteNamespace(ctx context.Context, name string) error {
	f.deleted = append(f.deleted, name)
	if f.deleteLag > 0 {
		f.pendingDeletes[name] = f.deleteLag
		return nil
	}
	f.namespaces[name] = false
	delete(f.resources, name)
	return nil
}

func (f *fakeCluster) ListResources(ctx context.Context, namespace string) (cluster.Snapshot, error) {
	snap := cluster.Snapshot{Namespace: namespace, Taken: time.Now()}
	snap.Resources = append(snap.Resources, f.resources[namespace]...)
	return snap, nil
}

func (f *fakeCluster) ListPods(ctx context.Context, namespace, selector string) (cluster.Snapshot, error) {
	key := namespace + "|" + selector
	if queue := f.podQueues[key]; len(queue) > 0 {
		snap := queue[0]
		if len(queue) > 1 {
			f.podQueues[key] = queue[1:]
		}
		return snap, nil
	}
	snap := cluster.Snapshot{Namespace: namespace, Taken: time.Now()}
	for _, res := range f.resources[namespace] {
		if res.Ready != nil {
			snap.Resources = append(snap.Resources, res)
		}
	}
	return snap, nil
}

func (f *fakeCluster) Apply(ctx context.Context, namespace, manifestPath string) error {
	f.resourcesAtApply = append(f.resourcesAtApply, len(f.resources[namespace]))
	if err := f.applyErrs[manifestPath]; err != nil {
		return err
	}
	f.applied = append(f.applied, manifestPath)
	f.resources[namespace] = append(f.resources[namespace], f.applyProduces[manifestPath]...)
	return nil
}

// seed puts resources directly into a namespace, marking it existing.
func (f *fakeCluster) seed(namespace string, resources ...cluster.Resource) {
	f.namespaces[namespace] = true
	f.resources[namespace] = append(f.resources[namespace], resources...)
}

// mutations counts every cluster-changing call made so far.
func (f *fakeCluster) mutations() int {
	return len(f.applied) + len(f.deleted) + len(f.created)
}

// scriptedPrompter answers with a fixed script and records each question.
type scriptedPrompter struct {
	answers   []string
	questions []string
}

func (p *scriptedPrompter) Ask(question string, allowed []string) (string, error) {
	p.questions = append(p.questions, question)
	if len(p.answers) == 0 {
		return "", fmt.Errorf("prompter script exhausted")
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

// fixedIdentity returns an IdentityFunc reporting the given user.
func fixedIdentity(name string) IdentityFunc {
	return func() (string, error) { return name, nil }
}

func readyPod(name string) cluster.Resource {
	return cluster.Resource{Name: name, Ready: &cluster.Ratio{Ready: 1, Total: 1}, Status: "Running"}
}

func pendingPod(name string) cluster.Resource {
	return cluster.Resource{Name: name, Ready: &cluster.Ratio{Ready: 0, Total: 1}, Status: "Pending"}
}
