package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from environment variables using its env tags.
func ParseEnv(target any) error {
	return ParseEnvPrefixed("", target)
}

// ParseEnvPrefixed is ParseEnv with prefix prepended to every variable name,
// so one struct can be read as CHASE_OTEL_ENDPOINT or CHASE_OTEL_ENABLED.
func ParseEnvPrefixed(prefix string, target any) error {
	if target == nil {
		return fmt.Errorf("parse env: target is required")
	}
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
