package lang

//go:generate go tool stringer --linecomment --type Keyword,Tag --output string.go

import "strings"

// Keyword identifies the kind of statement a line holds.
type Keyword int

const (
	KeywordNone  Keyword = iota // none
	KeywordLet                  // let
	KeywordStore                // store
	KeywordPlace                // place
)

// Terminator ends every statement line.
const Terminator = ";"

// CommentPrefix starts a line that is ignored.
const CommentPrefix = "//"

// Keywords returns the statement keywords in dispatch order.
func Keywords() []Keyword {
	return []Keyword{KeywordLet, KeywordStore, KeywordPlace}
}

// keywordOf returns the keyword that text begins with, or [KeywordNone].
// The test is a plain prefix match, so "letter" dispatches as let.
func keywordOf(text string) Keyword {
	for _, kw := range Keywords() {
		if strings.HasPrefix(text, kw.String()) {
			return kw
		}
	}

	return KeywordNone
}

// tokens returns the number of whitespace-separated tokens expected on the
// left side of a statement's '='.
func (k Keyword) tokens() int {
	switch k {
	case KeywordLet:
		return 3
	case KeywordStore, KeywordPlace:
		return 2
	default:
		return 0
	}
}

// Stores reports whether statements of this kind insert a symbol.
func (k Keyword) Stores() bool { return k == KeywordLet || k == KeywordStore }

// Emits reports whether statements of this kind produce an HTML fragment.
func (k Keyword) Emits() bool { return k == KeywordLet || k == KeywordPlace }
