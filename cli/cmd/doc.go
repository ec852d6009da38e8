// Package cmd implements the lmcl subcommands.
//
// Each command is a kong command struct with a Run(context.Context) error
// method. The kong context, the source search path and the output writer
// travel through the context.Context passed to Run.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)
