package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRatio(t *testing.T) {
	cases := []struct {
		token string
		want  *Ratio
	}{
		{"1/1", &Ratio{1, 1}},
		{"0/1", &Ratio{0, 1}},
		{"2/3", &Ratio{2, 3}},
		{"Running", nil},
		{"1/x", nil},
		{"x/1", nil},
		{"-1/1", nil},
		{"", nil},
	}
	for _, c := range cases {
		got := ParseRatio(c.token)
		if c.want == nil {
			assert.Nil(t, got, "token %q", c.token)
		} else {
			require.NotNil(t, got, "token %q", c.token)
			assert.Equal(t, *c.want, *got, "token %q", c.token)
		}
	}
}

func TestRatioAllReady(t *testing.T) {
	assert.True(t, Ratio{1, 1}.AllReady())
	assert.True(t, Ratio{3, 3}.AllReady())
	assert.False(t, Ratio{0, 1}.AllReady())
	assert.False(t, Ratio{1, 2}.AllReady())
	assert.False(t, Ratio{0, 0}.AllReady(), "zero-container pod is not ready")
}

func TestParseListingGetAll(t *testing.T) {
	output := `
NAME                              READY   STATUS    RESTARTS   AGE
pod/mysql-0                       1/1     Running   0          5m
pod/phpmyadmin-6c9d6b9f9-x7r2k    0/1     Pending   0          5m

NAME                 TYPE        CLUSTER-IP      EXTERNAL-IP   PORT(S)    AGE
service/mysql        ClusterIP   10.96.120.11    <none>        3306/TCP   5m

NAME                         READY   UP-TO-DATE   AVAILABLE   AGE
deployment.apps/phpmyadmin   0/1     1            0           5m
`
	snap := ParseListing("database", output)
	assert.Equal(t, "database", snap.Namespace)
	require.Len(t, snap.Resources, 4, "header rows and blank lines must be skipped")

	assert.Equal(t, "pod/mysql-0", snap.Resources[0].Name)
	require.NotNil(t, snap.Resources[0].Ready)
	assert.True(t, snap.Resources[0].Ready.AllReady())
	assert.Equal(t, "Running", snap.Resources[0].Status)

	assert.Equal(t, "pod/phpmyadmin-6c9d6b9f9-x7r2k", snap.Resources[1].Name)
	assert.False(t, snap.Resources[1].Ready.AllReady())

	assert.Equal(t, "service/mysql", snap.Resources[2].Name)
	assert.Nil(t, snap.Resources[2].Ready, "services carry no ready ratio")
	assert.Equal(t, "ClusterIP", snap.Resources[2].Status)

	assert.Equal(t, "deployment.apps/phpmyadmin", snap.Resources[3].Name)
}

func TestParseListingEmptyOutput(t *testing.T) {
	snap := ParseListing("database", "")
	assert.True(t, snap.Empty())

	snap = ParseListing("database", "\n\n")
	assert.True(t, snap.Empty())

	// A listing that is nothing but a header row is still empty.
	snap = ParseListing("database", "NAME   READY   STATUS   RESTARTS   AGE\n")
	assert.True(t, snap.Empty())

	// Older kubectl prints this message on stdout; it is not a resource.
	snap = ParseListing("database", "No resources found in database namespace.\n")
	assert.True(t, snap.Empty())
}

func TestSnapshotNames(t *testing.T) {
	snap := ParseListing("demo", "pod/demo-app-0  1/1  Running  0  1m\nservice/demo-app  ClusterIP  10.0.0.1  <none>  80/TCP  1m\n")
	assert.Equal(t, []string{"pod/demo-app-0", "service/demo-app"}, snap.Names())
}
