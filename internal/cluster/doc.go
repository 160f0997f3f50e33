// Package cluster models the target cluster behind a small capability
// interface.
//
// The Client interface covers exactly the interactions the reconciler
// needs: control-plane status, namespace lifecycle, resource listing, pod
// listing, and manifest apply. KubectlClient is the production
// implementation, shelling out to kubectl and minikube through the audited
// command executor; the reconciler tests substitute an in-memory client.
//
// Listing output is parsed with ParseListing, which tolerates the header
// rows and blank lines of kubectl's tabular output and extracts the
// kind-qualified name, the READY x/y ratio where present, and the status
// column.
package cluster
