// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, runtime metrics, lifecycle history and debug introspection
// for hioload-thread.
//
// Provides:
//   - Config loading from flags, environment and YAML through viper
//   - zap logger construction from Config
//   - Prometheus collectors fed by thread lifecycle transitions
//   - A bounded transition history and named debug probes
//
// This package is cross-platform and build-tag-partitioned as needed.
package control
