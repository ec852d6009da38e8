package profile

import (
	"slices"
	"testing"
)

func TestOptions(t *testing.T) {
	var c Config

	for _, opt := range []Option{WithMode("cpu"), WithPath("/tmp/p"), WithQuiet(true)} {
		c = opt(c)
	}

	if c != (Config{Mode: "cpu", Path: "/tmp/p", Quiet: true}) {
		t.Errorf("unexpected config: %+v", c)
	}
}

func TestStart_Unsupported(t *testing.T) {
	for _, mode := range []string{"", "quiet", "bogus"} {
		if _, ok := Start(WithMode(mode)).(ignore); !ok {
			t.Errorf("Start(%q) should be a no-op", mode)
		}
	}
}

func TestModes(t *testing.T) {
	modes := Modes()

	if Enabled != (len(modes) > 0) {
		t.Fatalf("Enabled = %v with %d modes", Enabled, len(modes))
	}

	if !slices.IsSorted(modes) {
		t.Errorf("Modes() not sorted: %v", modes)
	}

	for _, m := range modes {
		if !Supported(m) {
			t.Errorf("mode %q not supported", m)
		}
	}
}
