package artifacts

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kubedeploy/internal/execute"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	result   execute.Result
	commands []string
}

func (r *fakeRunner) Run(ctx context.Context, opts execute.Options, name string, args ...string) (execute.Result, error) {
	r.commands = append(r.commands, name+" "+strings.Join(args, " "))
	return r.result, nil
}

func TestMissing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mysql.yaml"), []byte("kind: StatefulSet"), 0o644))

	missing := Missing(dir, []string{"mysql.yaml", "phpmyadmin.yaml", "init-db.sql"})
	assert.Equal(t, []string{"phpmyadmin.yaml", "init-db.sql"}, missing)

	assert.Empty(t, Missing(dir, []string{"mysql.yaml"}))
	assert.Equal(t, []string{"a"}, Missing(filepath.Join(dir, "nope"), []string{"a"}))
}

func TestGitFetcherClones(t *testing.T) {
	runner := &fakeRunner{}
	fetcher := NewGitFetcher(runner)
	dir := filepath.Join(t.TempDir(), "database")

	err := fetcher.Fetch(context.Background(), "https://example.com/database.git", dir)
	require.NoError(t, err)
	require.Len(t, runner.commands, 1)
	assert.Equal(t, "git clone --depth 1 https://example.com/database.git "+dir, runner.commands[0])
}

func TestGitFetcherSurfacesCloneFailure(t *testing.T) {
	runner := &fakeRunner{result: execute.Result{ExitCode: 128, Stderr: "fatal: unable to access"}}
	fetcher := NewGitFetcher(runner)

	err := fetcher.Fetch(context.Background(), "https://example.com/gone.git", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to access")
}
