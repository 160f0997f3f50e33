package cli

import (
	"fmt"

	"kubedeploy/internal/cluster"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderSnapshot renders a namespace snapshot as a table, one row per
// resource. An empty snapshot renders as a short message instead of an
// empty grid.
func RenderSnapshot(snap cluster.Snapshot) string {
	if snap.Empty() {
		return fmt.Sprintf("No resources found in namespace %q.", snap.Namespace)
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle("Resources in namespace %q", snap.Namespace)
	t.AppendHeader(table.Row{"NAME", "READY", "STATUS"})
	for _, res := range snap.Resources {
		ready := "-"
		if res.Ready != nil {
			ready = res.Ready.String()
		}
		status := res.Status
		if status == "" {
			status = "-"
		}
		t.AppendRow(table.Row{res.Name, ready, status})
	}
	return t.Render()
}
