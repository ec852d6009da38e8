package repl

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/lmcl/lang"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "list", "html", "reset", "clear", "quit"}

// isWordBoundary reports whether r separates completion words. The dot
// splits a tag from its class.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '=', '.', ';', '"':
		return true
	}

	return false
}

// wordBounds returns the word at cursor and its byte offsets within input.
// The word is empty when the cursor sits on a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	start = cursor
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor
	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// slot identifies which part of a statement the word at the cursor fills.
type slot int

const (
	slotNone slot = iota
	slotKeyword
	slotTag
	slotValue
)

// statementSlot classifies the word starting at wordStart.
func statementSlot(input string, wordStart int) slot {
	prefix := input[:wordStart]

	if strings.ContainsAny(prefix, `";`) {
		return slotNone
	}

	if _, rhs, ok := strings.Cut(prefix, "="); ok {
		if strings.TrimSpace(rhs) != "" {
			return slotNone
		}

		return slotValue
	}

	if strings.HasSuffix(prefix, ".") {
		return slotNone // class names are free-form
	}

	fields := strings.Fields(prefix)

	switch len(fields) {
	case 0:
		return slotKeyword
	case 1:
		for _, k := range lang.Keywords() {
			if k.String() == fields[0] && k.Emits() {
				return slotTag
			}
		}
	}

	return slotNone
}

// statementCandidates returns the completions for a slot.
func statementCandidates(s slot, symbols *lang.Symbols) []string {
	switch s {
	case slotKeyword:
		var names []string
		for _, k := range lang.Keywords() {
			names = append(names, k.String())
		}

		return names

	case slotTag:
		return lang.TagNames()

	case slotValue:
		return symbols.Names()
	}

	return nil
}

// computeMatches ranks the candidates for the word at the cursor.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	candidates []string,
	wordStart, wordEnd int,
) {
	input := m.input.Value()

	word, wordStart, wordEnd := wordBounds(input, m.input.Position())

	if m.mode == modeCtrl {
		candidates = ctrlCommands
	} else {
		s := statementSlot(input, wordStart)
		candidates = statementCandidates(s, m.session.Symbols())

		// Browse every stored name right after '='.
		if word == "" && s == slotValue && len(candidates) > 0 {
			matches = make(fuzzy.Matches, len(candidates))
			for i, c := range candidates {
				matches[i] = fuzzy.Match{Str: c, Index: i}
			}

			return matches, candidates, wordStart, wordEnd
		}
	}

	if word == "" || len(candidates) == 0 {
		return nil, nil, wordStart, wordEnd
	}

	matches = fuzzy.Find(word, candidates)

	return matches, candidates, wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// width. The selected candidate is highlighted while tab-cycling.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	ellipsis := hintStyle.Render("...")
	reserve := lipgloss.Width(sep) + lipgloss.Width(ellipsis)

	var (
		b    strings.Builder
		used int
	)

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)

		w := lipgloss.Width(rendered)
		if i > 0 {
			w += lipgloss.Width(sep)
		}

		last := i == len(matches)-1
		if i > 0 && used+w > width || !last && i > 0 && used+w+reserve > width {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += w
	}

	return b.String()
}

// renderCandidate renders a candidate with its matched characters emphasized.
func renderCandidate(match fuzzy.Match, selected bool) string {
	base, hit := suggestionStyle, suggestionStyle.Bold(true)
	if selected {
		base, hit = selectedStyle, selectedStyle.Bold(true)
	}

	var b strings.Builder

	for i, r := range match.Str {
		if slices.Contains(match.MatchedIndexes, i) {
			b.WriteString(hit.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	return b.String()
}
