// Package logging provides structured, subsystem-tagged logging for kubedeploy.
//
// The package wraps Go's standard slog with printf-style helpers. Every entry
// carries a subsystem identifier (Preconditions, Inspector, Waiter, Executor,
// ...) so console output and the deployment log file can be filtered by the
// component that produced the entry.
//
// Two sinks exist:
//
//   - a console sink, initialized once with InitForCLI and filtered by the
//     level the user requested (--debug raises it to Debug)
//   - an optional file sink, attached with AttachLogFile, which always
//     records at Debug level so the on-disk deployment log keeps the full
//     history regardless of console verbosity
//
// Usage:
//
//	logging.InitForCLI(logging.LevelInfo, os.Stdout)
//	logging.AttachLogFile("/opt/minikube/scripts/logs/deploy.log")
//	defer logging.CloseLogFile()
//
//	logging.Info("Preconditions", "Namespace %q ensured", ns)
//	logging.Error("Apply", err, "Manifest %s failed", path)
package logging
