package cli

import (
	"testing"

	"kubedeploy/internal/cluster"

	"github.com/stretchr/testify/assert"
)

func TestRenderSnapshot(t *testing.T) {
	snap := cluster.ParseListing("database", `
NAME          READY   STATUS    RESTARTS   AGE
pod/mysql-0   1/1     Running   0          5m

NAME            TYPE        CLUSTER-IP     EXTERNAL-IP   PORT(S)    AGE
service/mysql   ClusterIP   10.96.120.11   <none>        3306/TCP   5m
`)
	out := RenderSnapshot(snap)
	assert.Contains(t, out, "pod/mysql-0")
	assert.Contains(t, out, "1/1")
	assert.Contains(t, out, "Running")
	assert.Contains(t, out, "service/mysql")
	assert.Contains(t, out, "database")
}

func TestRenderSnapshotEmpty(t *testing.T) {
	out := RenderSnapshot(cluster.Snapshot{Namespace: "demo"})
	assert.Contains(t, out, "No resources found")
	assert.Contains(t, out, "demo")
}
