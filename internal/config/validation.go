package config

import "fmt"

// Validate checks structural validity of a configuration. It catches the
// mistakes that would otherwise surface as confusing mid-run failures:
// targets without a namespace or manifests, workloads without a selector,
// and an ownership predicate that could not recognize anything.
func Validate(c Config) error {
	if c.PollIntervalSeconds <= 0 {
		return fmt.Errorf("pollIntervalSeconds must be positive, got %d", c.PollIntervalSeconds)
	}
	if c.PollTimeoutSeconds < c.PollIntervalSeconds {
		return fmt.Errorf("pollTimeoutSeconds (%d) must be at least pollIntervalSeconds (%d)",
			c.PollTimeoutSeconds, c.PollIntervalSeconds)
	}
	for name, target := range c.Targets {
		if target.Namespace == "" {
			return fmt.Errorf("target %q: namespace is required", name)
		}
		if len(target.Manifests) == 0 {
			return fmt.Errorf("target %q: at least one manifest is required", name)
		}
		if len(target.OwnedPrefixes) == 0 {
			return fmt.Errorf("target %q: at least one owned prefix is required", name)
		}
		for _, prefix := range target.OwnedPrefixes {
			if prefix == "" {
				return fmt.Errorf("target %q: empty owned prefix would match every resource", name)
			}
		}
		for _, w := range target.Workloads {
			if w.Selector == "" {
				return fmt.Errorf("target %q: workload %q has no selector", name, w.Name)
			}
		}
	}
	return nil
}
