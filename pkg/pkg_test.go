package pkg

import (
	"os"
	"regexp"
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("read VERSION: %v", err)
	}

	if want := strings.TrimSpace(string(buf)); Version != want {
		t.Errorf("Version = %q, want %q", Version, want)
	}

	if !regexp.MustCompile(`^\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?$`).MatchString(Version) {
		t.Errorf("Version %q is not a semantic version", Version)
	}
}

func TestExtensions(t *testing.T) {
	for _, ext := range []string{SourceExt, OutputExt} {
		if !strings.HasPrefix(ext, ".") || strings.ContainsAny(ext[1:], "./") {
			t.Errorf("malformed extension %q", ext)
		}
	}
}
