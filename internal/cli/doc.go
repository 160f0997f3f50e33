// Package cli holds the terminal-facing pieces of kubedeploy: the
// readline-backed conflict prompter, snapshot table rendering, and the
// progress spinner shown during readiness waits. The reconciler core never
// imports this package; it sees only the capability interfaces these types
// implement.
package cli
