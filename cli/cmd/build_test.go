package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/lmcl/lang"
)

func wantDocument(t *testing.T) string {
	t.Helper()

	doc, err := lang.TranslateString(context.Background(), testSource)
	if err != nil {
		t.Fatal(err)
	}

	return doc
}

func TestBuildRun(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeSource(t, dir, "index.lmcl", testSource)

	// A stale, longer output must be truncated.
	stale := strings.Repeat("stale\n", 1000)
	if err := os.WriteFile("index.html", []byte(stale), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx := testContext(t, &bytes.Buffer{}, nil)

	if err := (&Build{Name: "index"}).Run(ctx); err != nil {
		t.Fatalf("Build.Run() error = %v", err)
	}

	got, err := os.ReadFile("index.html")
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(wantDocument(t), string(got)); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRun_SearchPath(t *testing.T) {
	cwd := t.TempDir()
	lib := t.TempDir()
	t.Chdir(cwd)

	writeSource(t, lib, "page.lmcl", testSource)

	ctx := testContext(t, &bytes.Buffer{}, nil, lib)

	if err := (&Build{Name: "page.lmcl", Output: "out.html"}).Run(ctx); err != nil {
		t.Fatalf("Build.Run() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(cwd, "out.html")); err != nil {
		t.Errorf("output not written: %v", err)
	}

	if _, err := os.Stat(filepath.Join(lib, "page.html")); err == nil {
		t.Error("output written next to the source")
	}
}

func TestBuildRun_Stdout(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeSource(t, dir, "index.lmcl", testSource)

	var out bytes.Buffer

	ctx := testContext(t, &out, nil)

	if err := (&Build{Name: "index", Stdout: true}).Run(ctx); err != nil {
		t.Fatalf("Build.Run() error = %v", err)
	}

	if diff := cmp.Diff(wantDocument(t)+"\n", out.String()); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}

	if _, err := os.Stat("index.html"); err == nil {
		t.Error("--stdout also wrote the output file")
	}
}

func TestBuildRun_Errors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeSource(t, dir, "bad.lmcl", "store a = \"x\";\nplace p = b;\n")

	ctx := testContext(t, &bytes.Buffer{}, nil)

	err := (&Build{Name: "missing"}).Run(ctx)
	if !errors.Is(err, ErrNoSource) {
		t.Errorf("missing source error = %v", err)
	}

	err = (&Build{Name: "bad"}).Run(ctx)
	if !errors.Is(err, ErrTranslate) || !errors.Is(err, lang.ErrUnresolved) {
		t.Fatalf("translation error = %v", err)
	}

	var le *lang.LineError
	if !errors.As(err, &le) || le.Line != 2 || le.Text != "place p = b;" {
		t.Errorf("line error = %+v", le)
	}

	if _, err := os.Stat("bad.html"); err == nil {
		t.Error("failed build wrote an output file")
	}
}
