package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/lmcl/lang"
)

type dumpRecord struct {
	Kind    string `json:"kind"    yaml:"kind"`
	Tag     string `json:"tag"     yaml:"tag"`
	Class   string `json:"class"   yaml:"class"`
	Name    string `json:"name"    yaml:"name"`
	Value   string `json:"value"   yaml:"value"`
	Line    int    `json:"line"    yaml:"line"`
	Literal bool   `json:"literal" yaml:"literal"`
}

func TestDumpRun(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "index.lmcl", testSource)

	tests := []struct {
		name   string
		format string
		where  string
		want   []dumpRecord
	}{
		{
			name:   "json",
			format: "json",
			want: []dumpRecord{
				{Kind: "store", Name: "name", Value: "World", Line: 2, Literal: true},
				{Kind: "let", Tag: "title", Name: "top", Value: "Hello", Line: 3, Literal: true},
				{Kind: "place", Tag: "p", Class: "note", Value: "name", Line: 5},
			},
		},
		{
			name:   "yaml where",
			format: "yaml",
			where:  `Kind != "store" && Literal`,
			want: []dumpRecord{
				{Kind: "let", Tag: "title", Name: "top", Value: "Hello", Line: 3, Literal: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			ctx := testContext(t, &out, nil, dir)

			d := &Dump{Name: "index", Format: tt.format, Where: tt.where, Indent: 2}
			if err := d.Run(ctx); err != nil {
				t.Fatalf("Dump.Run() error = %v", err)
			}

			var got []dumpRecord

			var err error
			if tt.format == "json" {
				err = json.Unmarshal(out.Bytes(), &got)
			} else {
				err = yaml.Unmarshal(out.Bytes(), &got)
			}

			if err != nil {
				t.Fatalf("decode %s: %v\n%s", tt.format, err, out.String())
			}

			if len(got) != len(tt.want) {
				t.Fatalf("got %d records, want %d:\n%s", len(got), len(tt.want), out.String())
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("record %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDumpRun_Text(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "index.lmcl", testSource)

	var out bytes.Buffer

	ctx := testContext(t, &out, nil, dir)

	if err := (&Dump{Name: "index", Format: "text"}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}

	for i, prefix := range []string{"2  store", "3  let", "5  place"} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
}

func TestDumpRun_Errors(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "index.lmcl", testSource)
	writeSource(t, dir, "bad.lmcl", "store a b = \"x\";\n")

	ctx := testContext(t, &bytes.Buffer{}, nil, dir)

	tests := []struct {
		dump Dump
		want error
	}{
		{Dump{Name: "index", Format: "text", Where: "Kind +"}, lang.ErrQueryCompile},
		{Dump{Name: "index", Format: "text", Where: "Line"}, lang.ErrQueryCompile},
		{Dump{Name: "index", Format: "xml"}, ErrInvalidFormat},
		{Dump{Name: "bad", Format: "text"}, lang.ErrExtraTokens},
	}

	for _, tt := range tests {
		if err := tt.dump.Run(ctx); !errors.Is(err, tt.want) {
			t.Errorf("Dump%+v error = %v, want %v", tt.dump, err, tt.want)
		}
	}
}
