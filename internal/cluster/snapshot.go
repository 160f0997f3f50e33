package cluster

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Ratio is a pod readiness ratio as reported in the READY column, e.g. 1/1.
type Ratio struct {
	Ready int
	Total int
}

// AllReady reports whether every container is ready. A zero-container pod
// does not count as ready.
func (r Ratio) AllReady() bool {
	return r.Total >= 1 && r.Ready == r.Total
}

// String renders the ratio in kubectl's x/y form.
func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.Ready, r.Total)
}

// Resource is one record in a namespace listing.
type Resource struct {
	// Name is the kind-qualified name as kubectl prints it, e.g.
	// "pod/mysql-0" or "service/phpmyadmin".
	Name string

	// Ready holds the parsed READY ratio for pod-like resources; nil when
	// the listing carries no ratio for this record.
	Ready *Ratio

	// Status is the STATUS column where present (Running, Pending, ...).
	Status string
}

// Snapshot is the set of resources observed in a namespace at one point in
// time. Snapshots are never mutated; every poll produces a fresh one.
type Snapshot struct {
	Namespace string
	Taken     time.Time
	Resources []Resource
}

// Empty reports whether the snapshot holds no resources. An empty namespace
// is a normal terminal state, not a failure.
func (s Snapshot) Empty() bool {
	return len(s.Resources) == 0
}

// Names returns the kind-qualified names of all resources, in listing order.
func (s Snapshot) Names() []string {
	names := make([]string, len(s.Resources))
	for i, r := range s.Resources {
		names[i] = r.Name
	}
	return names
}

// ParseRatio parses a READY token of the form "x/y". Returns nil when the
// token is not a ratio.
func ParseRatio(token string) *Ratio {
	left, right, ok := strings.Cut(token, "/")
	if !ok {
		return nil
	}
	ready, err := strconv.Atoi(left)
	if err != nil || ready < 0 {
		return nil
	}
	total, err := strconv.Atoi(right)
	if err != nil || total < 0 {
		return nil
	}
	return &Ratio{Ready: ready, Total: total}
}

// ParseListing parses tabular "get all" / "get pods" output into a Snapshot.
// It tolerates blank lines and the header rows kubectl repeats before each
// resource kind.
func ParseListing(namespace, output string) Snapshot {
	snap := Snapshot{
		Namespace: namespace,
		Taken:     time.Now(),
	}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Older kubectl prints this on stdout instead of stderr.
		if strings.HasPrefix(line, "No resources found") {
			continue
		}
		fields := strings.Fields(line)
		if isHeaderRow(fields) {
			continue
		}
		res := Resource{Name: fields[0]}
		if len(fields) > 1 {
			if ratio := ParseRatio(fields[1]); ratio != nil {
				res.Ready = ratio
				if len(fields) > 2 {
					res.Status = fields[2]
				}
			} else {
				res.Status = fields[1]
			}
		}
		snap.Resources = append(snap.Resources, res)
	}
	return snap
}

// isHeaderRow recognizes kubectl's column-header rows. The NAME header leads
// every section of a "get all" listing.
func isHeaderRow(fields []string) bool {
	return len(fields) > 0 && fields[0] == "NAME"
}
