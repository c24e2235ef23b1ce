package brandsight

// OrderedSet is a deduplicating collection that preserves first-seen
// insertion order. Membership is decided by a normalization key so that,
// for example, font names can be compared case-insensitively while their
// original display form is retained.
//
// The discovery-order contract is explicit: Values returns entries in the
// order they were first added, never in map iteration order.
type OrderedSet struct {
	key    func(string) string
	index  map[string]struct{}
	values []string
}

// NewOrderedSet creates an OrderedSet using key to normalize values for
// membership comparison. A nil key compares values verbatim.
func NewOrderedSet(key func(string) string) *OrderedSet {
	if key == nil {
		key = func(s string) string { return s }
	}
	return &OrderedSet{
		key:   key,
		index: make(map[string]struct{}),
	}
}

// Add inserts a value unless an equivalent one is already present.
// Returns true if the value was inserted.
func (s *OrderedSet) Add(v string) bool {
	k := s.key(v)
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = struct{}{}
	s.values = append(s.values, v)
	return true
}

// Remove deletes the value equivalent to v, preserving the order of the
// remaining entries. Returns true if a value was removed.
func (s *OrderedSet) Remove(v string) bool {
	k := s.key(v)
	if _, ok := s.index[k]; !ok {
		return false
	}
	delete(s.index, k)
	for i, existing := range s.values {
		if s.key(existing) == k {
			s.values = append(s.values[:i], s.values[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether a value equivalent to v is present.
func (s *OrderedSet) Contains(v string) bool {
	_, ok := s.index[s.key(v)]
	return ok
}

// Len returns the number of values in the set.
func (s *OrderedSet) Len() int {
	return len(s.values)
}

// Values returns the values in first-seen order. If max > 0 the result is
// truncated to at most max entries. The returned slice is a copy.
func (s *OrderedSet) Values(max int) []string {
	n := len(s.values)
	if max > 0 && max < n {
		n = max
	}
	out := make([]string, n)
	copy(out, s.values[:n])
	return out
}
