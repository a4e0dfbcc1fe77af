// Package config loads, normalizes, and validates titlecheck configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: report output and data directories, worksheet name,
// highlight styling, and log routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
