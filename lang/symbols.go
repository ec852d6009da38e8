package lang

import "iter"

// Symbols maps names to resolved values. A name can be defined only once.
//
// The zero value is an empty table ready to use.
type Symbols struct {
	values map[string]string
	order  []string
}

// Lookup returns the value stored under name.
func (s *Symbols) Lookup(name string) (string, bool) {
	value, ok := s.values[name]

	return value, ok
}

// Has reports whether name is defined.
func (s *Symbols) Has(name string) bool {
	_, ok := s.values[name]

	return ok
}

// Define stores value under name. It reports false, leaving the table
// unchanged, if name is already defined.
func (s *Symbols) Define(name, value string) bool {
	if s.Has(name) {
		return false
	}

	if s.values == nil {
		s.values = make(map[string]string)
	}

	s.values[name] = value
	s.order = append(s.order, name)

	return true
}

// Len returns the number of defined names.
func (s *Symbols) Len() int { return len(s.order) }

// Names returns the defined names in definition order.
func (s *Symbols) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)

	return names
}

// All iterates over the table in definition order.
func (s *Symbols) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range s.order {
			if !yield(name, s.values[name]) {
				return
			}
		}
	}
}
