package lang

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/net/html/atom"
)

// Tag is one of the HTML elements a statement may produce.
type Tag int

const (
	TagInvalid Tag = iota // invalid
	TagP                  // p
	TagH1                 // h1
	TagH2                 // h2
	TagH3                 // h3
	TagH4                 // h4
	TagH5                 // h5
	TagH6                 // h6
	TagDiv                // div
)

// tagNames maps every accepted tag spelling to its element.
var tagNames = map[string]Tag{
	"paragraph": TagP,
	"p":         TagP,
	"title":     TagH1,
	"h1":        TagH1,
	"subtitle":  TagH2,
	"h2":        TagH2,
	"h3":        TagH3,
	"h4":        TagH4,
	"h5":        TagH5,
	"h6":        TagH6,
	"div":       TagDiv,
}

// TagNames returns every accepted tag spelling, including aliases.
func TagNames() []string {
	return slices.Sorted(maps.Keys(tagNames))
}

// LookupTag returns the element for a tag spelling.
func LookupTag(name string) (Tag, bool) {
	tag, ok := tagNames[name]

	return tag, ok
}

// Atom returns the HTML atom of the element, or zero for [TagInvalid].
func (t Tag) Atom() atom.Atom {
	switch t {
	case TagP:
		return atom.P
	case TagH1:
		return atom.H1
	case TagH2:
		return atom.H2
	case TagH3:
		return atom.H3
	case TagH4:
		return atom.H4
	case TagH5:
		return atom.H5
	case TagH6:
		return atom.H6
	case TagDiv:
		return atom.Div
	default:
		return 0
	}
}

// TagSpec is the unvalidated `tag` or `tag.class` token of a statement.
type TagSpec struct {
	Name     string `json:"tag"             yaml:"tag"`
	Class    string `json:"class,omitempty" yaml:"class,omitempty"`
	HasClass bool   `json:"-"               yaml:"-"`
}

// ParseTagSpec splits spec on its first '.'. The class is kept verbatim.
func ParseTagSpec(spec string) TagSpec {
	name, class, ok := strings.Cut(spec, ".")

	return TagSpec{Name: name, Class: class, HasClass: ok}
}

// String returns the spec as written in source.
func (s TagSpec) String() string {
	if !s.HasClass {
		return s.Name
	}

	return s.Name + "." + s.Class
}

// resolve validates the tag portion of the spec.
func (s TagSpec) resolve(line Line) (Tag, error) {
	if s.HasClass && s.Name == "" && s.Class == "" {
		return TagInvalid, newLineError(ErrMalformedTag, line)
	}

	tag, ok := LookupTag(s.Name)
	if !ok {
		return TagInvalid, newLineError(ErrUnknownTag, line)
	}

	return tag, nil
}
