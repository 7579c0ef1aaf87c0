// Package config loads the optional TOML configuration of the webvtt
// command. Values come from the file, then from environment variables,
// then from built-in defaults; command-line flags override all three.
package config
