package reconcile

import (
	"context"
	"testing"
	"time"

	"kubedeploy/internal/cluster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func podSnap(pods ...cluster.Resource) cluster.Snapshot {
	return cluster.Snapshot{Namespace: "demo", Resources: pods}
}

// newTestWaiter builds a waiter whose sleeps are recorded instead of slept.
func newTestWaiter(client cluster.Client, interval, timeout time.Duration) (*Waiter, *[]time.Duration) {
	w := NewWaiter(client, interval, timeout)
	var slept []time.Duration
	w.sleep = func(d time.Duration) { slept = append(slept, d) }
	return w, &slept
}

func TestWaitReadyAfterExactlyTwoPolls(t *testing.T) {
	fake := newFakeCluster()
	fake.podQueues["demo|app=demo-app"] = []cluster.Snapshot{
		podSnap(pendingPod("demo-app-0")),
		podSnap(readyPod("demo-app-0")),
	}
	w, slept := newTestWaiter(fake, time.Second, 10*time.Second)

	outcome, err := w.Wait(context.Background(), "demo", "app=demo-app")
	require.NoError(t, err)
	assert.Equal(t, ReadinessReady, outcome.State)
	assert.Equal(t, 2, outcome.Polls)
	assert.Len(t, *slept, 1, "one interval between the two polls")
	require.Len(t, outcome.Snapshot.Resources, 1)
	assert.True(t, outcome.Snapshot.Resources[0].Ready.AllReady())
}

func TestWaitTimesOutOnNeverReadyPods(t *testing.T) {
	fake := newFakeCluster()
	fake.podQueues["demo|app=demo-app"] = []cluster.Snapshot{
		podSnap(pendingPod("demo-app-0")),
	}
	w, _ := newTestWaiter(fake, time.Second, 10*time.Second)

	outcome, err := w.Wait(context.Background(), "demo", "app=demo-app")
	require.NoError(t, err)
	assert.Equal(t, ReadinessTimedOut, outcome.State)
	assert.Equal(t, 10, outcome.Polls)
	assert.Equal(t, 10*time.Second, outcome.Elapsed)
	require.Len(t, outcome.Snapshot.Resources, 1, "last snapshot attached for diagnostics")
}

func TestWaitZeroPodsIsNotReady(t *testing.T) {
	fake := newFakeCluster()
	fake.podQueues["demo|app=demo-app"] = []cluster.Snapshot{podSnap()}
	w, _ := newTestWaiter(fake, time.Second, 3*time.Second)

	outcome, err := w.Wait(context.Background(), "demo", "app=demo-app")
	require.NoError(t, err)
	assert.Equal(t, ReadinessTimedOut, outcome.State, "an empty pod list must not count as ready")
}

func TestWaitMultiContainerPods(t *testing.T) {
	fake := newFakeCluster()
	twoOfThree := cluster.Resource{Name: "kafka-0", Ready: &cluster.Ratio{Ready: 2, Total: 3}}
	threeOfThree := cluster.Resource{Name: "kafka-0", Ready: &cluster.Ratio{Ready: 3, Total: 3}}
	fake.podQueues["streaming|app=kafka"] = []cluster.Snapshot{
		{Namespace: "streaming", Resources: []cluster.Resource{twoOfThree, readyPod("kafka-1")}},
		{Namespace: "streaming", Resources: []cluster.Resource{threeOfThree, readyPod("kafka-1")}},
	}
	w, _ := newTestWaiter(fake, time.Second, 30*time.Second)

	outcome, err := w.Wait(context.Background(), "streaming", "app=kafka")
	require.NoError(t, err)
	assert.Equal(t, ReadinessReady, outcome.State)
	assert.Equal(t, 2, outcome.Polls)
}

func TestWaitTerminalIsAbsorbing(t *testing.T) {
	fake := newFakeCluster()
	fake.podQueues["demo|app=demo-app"] = []cluster.Snapshot{
		podSnap(readyPod("demo-app-0")),
		podSnap(pendingPod("demo-app-0")),
	}
	w, slept := newTestWaiter(fake, time.Second, 10*time.Second)

	outcome, err := w.Wait(context.Background(), "demo", "app=demo-app")
	require.NoError(t, err)
	assert.Equal(t, ReadinessReady, outcome.State)
	assert.Equal(t, 1, outcome.Polls)
	assert.Empty(t, *slept, "no polling continues after a terminal outcome")
}

func TestWaitContextCancellation(t *testing.T) {
	fake := newFakeCluster()
	fake.podQueues["demo|app=demo-app"] = []cluster.Snapshot{podSnap(pendingPod("demo-app-0"))}
	w, _ := newTestWaiter(fake, time.Second, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := w.Wait(ctx, "demo", "app=demo-app")
	assert.ErrorIs(t, err, context.Canceled)
}
