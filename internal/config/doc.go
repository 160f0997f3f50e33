// Package config provides configuration management for kubedeploy.
//
// Configuration is loaded from a single directory containing config.yaml.
// The default location is ~/.config/kubedeploy; commands accept a
// --config-path flag for a custom directory. A missing file is not an
// error: the built-in target catalog (dashboard, database, streaming,
// application, backup, bridge) covers a stock installation, and user
// entries merge over it by target name.
//
// Nothing in the reconciler core is hard-coded: namespace names, manifest
// lists, ownership prefixes, workload selectors, poll interval and timeout,
// the required-artifact list and its source repository all come from here.
package config
