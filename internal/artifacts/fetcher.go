// Package artifacts verifies the manifest files a deployment needs and
// fetches missing ones from the target's source repository.
//
// Fetching is all-or-nothing: after a fetch the required set is verified
// again, and any file still absent fails the whole operation. A partial
// fetch is never accepted as success.
package artifacts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"kubedeploy/internal/execute"
	"kubedeploy/pkg/logging"
)

// Fetcher retrieves the artifact set of a source into a local directory.
type Fetcher interface {
	Fetch(ctx context.Context, source, dir string) error
}

// GitFetcher fetches artifacts by cloning the source repository through the
// command executor, so the clone lands in the audit trail like every other
// external command.
type GitFetcher struct {
	runner execute.Runner
}

// NewGitFetcher creates a git-backed fetcher.
func NewGitFetcher(runner execute.Runner) *GitFetcher {
	return &GitFetcher{runner: runner}
}

// Fetch clones the source repository into dir. The directory must either
// not exist or be empty; git refuses to clone over existing content, so a
// populated directory means the caller should not have fetched at all.
func (f *GitFetcher) Fetch(ctx context.Context, source, dir string) error {
	if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
		return fmt.Errorf("could not create parent directory for %s: %w", dir, err)
	}
	result, err := f.runner.Run(ctx, execute.Options{}, "git", "clone", "--depth", "1", source, dir)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("clone of %s failed: %s", source, result.Output())
	}
	logging.Info("Artifacts", "Fetched artifacts from %s into %s", source, dir)
	return nil
}

// Missing returns the subset of required file names absent from dir, in the
// order given. A missing directory means everything is missing.
func Missing(dir string, required []string) []string {
	var missing []string
	for _, name := range required {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}
