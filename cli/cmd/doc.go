// Package cmd implements the phpgen subcommands.
//
// Each command is a kong command struct with a Run method taking a
// [context.Context]. Commands read from and write to the streams stored
// with [WithStreams], which default to the process's standard streams.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
