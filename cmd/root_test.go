package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"kubedeploy/internal/reconcile"
	"kubedeploy/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"identity mismatch", &reconcile.IdentityMismatchError{Expected: "muser", Actual: "root"}, ExitCodePrecondition},
		{"cluster unavailable", &reconcile.ClusterUnavailableError{}, ExitCodePrecondition},
		{"artifact fetch failed", &reconcile.ArtifactFetchFailedError{Missing: []string{"app.yaml"}}, ExitCodePrecondition},
		{"user aborted", &reconcile.UserAbortedError{}, ExitCodeAborted},
		{"invalid input", &reconcile.InvalidUserInputError{Attempts: 3}, ExitCodeAborted},
		{"readiness timeout", &reconcile.ReadinessTimeoutError{Workload: "mysql"}, ExitCodeTimeout},
		{"apply failure", &reconcile.ApplyFailedError{Manifest: "app.yaml"}, ExitCodeError},
		{"generic", fmt.Errorf("boom"), ExitCodeError},
		{"wrapped taxonomy error", fmt.Errorf("deploy: %w", &reconcile.UserAbortedError{}), ExitCodeAborted},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, getExitCode(c.err))
		})
	}
}

func TestLoadConfigAttachesLogFile(t *testing.T) {
	baseDir := t.TempDir()
	cfgDir := t.TempDir()
	cfgYAML := fmt.Sprintf("baseDir: %s\n", baseDir)
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(cfgYAML), 0o644))

	configPath = cfgDir
	defer func() {
		configPath = ""
		logging.CloseLogFile()
	}()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, baseDir, cfg.BaseDir)

	logging.Debug("CLI", "log file attachment check")
	data, err := os.ReadFile(filepath.Join(baseDir, "logs", "kubedeploy.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "log file attachment check")
}
