// Package app encapsulates the application's dependencies, configuration,
// and lifecycle: it loads a configuration source, assembles a foundry with
// the built-in factory tables (plus any caller overrides), and drives the
// eager-load pass and single-resource lookups.
package app
