// Package ticket holds the ticket identifier types and the reconciliation
// core: expanding tracker issue links into target tickets and matching those
// tickets against git history.
package ticket

// Key is an issue-tracker ticket identifier such as "LPS-41798".
type Key string

// Project returns the project prefix before the first hyphen, or the whole
// key when it contains no hyphen.
func (k Key) Project() string {
	for i := 0; i < len(k); i++ {
		if k[i] == '-' {
			return string(k[:i])
		}
	}
	return string(k)
}

// Set is a deduplicated collection of keys that remembers first-insertion
// order, so query construction downstream is reproducible.
type Set struct {
	keys []Key
	seen map[Key]struct{}
}

// NewSet creates a set containing the given keys, duplicates dropped.
func NewSet(keys ...Key) *Set {
	s := &Set{seen: make(map[Key]struct{})}
	s.Add(keys...)
	return s
}

// Add inserts the keys not already present, preserving argument order.
func (s *Set) Add(keys ...Key) {
	for _, k := range keys {
		if _, ok := s.seen[k]; ok {
			continue
		}
		s.seen[k] = struct{}{}
		s.keys = append(s.keys, k)
	}
}

// Contains reports whether k is in the set.
func (s *Set) Contains(k Key) bool {
	_, ok := s.seen[k]
	return ok
}

// Len returns the number of keys in the set.
func (s *Set) Len() int {
	return len(s.keys)
}

// Keys returns the keys in first-insertion order. The slice is a copy.
func (s *Set) Keys() []Key {
	out := make([]Key, len(s.keys))
	copy(out, s.keys)
	return out
}

// Strings returns the keys in first-insertion order as plain strings.
func (s *Set) Strings() []string {
	out := make([]string, len(s.keys))
	for i, k := range s.keys {
		out[i] = string(k)
	}
	return out
}
