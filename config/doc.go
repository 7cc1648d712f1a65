// Package config loads cdtmc run parameters from an optional YAML file
// and a pflag.FlagSet, with explicit flags taking precedence over the
// file and the file taking precedence over the built-in defaults.
package config
