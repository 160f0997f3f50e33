// Package execute runs external cluster-management commands and records an
// audit trail of everything it ran.
//
// The Executor is the single point where kubedeploy touches the outside
// world. Every other component depends on the Runner interface, which keeps
// the reconciler core testable with in-memory substitutes and guarantees
// that every real invocation lands in the audit trail.
//
// A non-zero exit code is never turned into an error by default: the
// Executor returns a structured Result and the caller decides escalation.
// Callers that genuinely cannot continue past a failure set Options.Fatal
// and receive a *CommandFailedError instead.
package execute
