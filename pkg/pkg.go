//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of lmcl embedded at build time.
var Version = strings.TrimSpace(version)

const (
	// Name is the command name. It also names the configuration and cache
	// directories and prefixes environment variables.
	Name = "lmcl"
	// Description is a one-line summary used in help output.
	Description = "Line markup to HTML translator"
	// SourceExt is the file extension of source documents.
	SourceExt = ".lmcl"
	// OutputExt is the file extension of translated documents.
	OutputExt = ".html"
)

// PathEnv names the environment variable holding additional source
// directories, separated by [os.PathListSeparator].
const PathEnv = "LMCL_PATH"

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary author(s) of the project.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
