package domain

import "sort"

// Category names one fortune file, e.g. "wisdom" or "riddles".
type Category string

// CategorySet is the set of categories available in the fortune database.
// It is built once and never mutated afterwards, which makes it safe to share
// between goroutines without locking.
type CategorySet struct {
	names map[Category]struct{}
	// sorted is computed at construction so Names does not allocate per call.
	sorted []Category
}

// NewCategorySet builds a set from the given names. Duplicates are collapsed.
func NewCategorySet(names ...string) *CategorySet {
	set := &CategorySet{names: make(map[Category]struct{}, len(names))}
	for _, n := range names {
		c := Category(n)
		if _, ok := set.names[c]; ok {
			continue
		}
		set.names[c] = struct{}{}
		set.sorted = append(set.sorted, c)
	}
	sort.Slice(set.sorted, func(i, j int) bool { return set.sorted[i] < set.sorted[j] })

	return set
}

// Has reports whether name is a known category. A nil set contains nothing.
func (s *CategorySet) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.names[Category(name)]

	return ok
}

// Len returns the number of categories.
func (s *CategorySet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.sorted)
}

// Names returns the categories in lexical order. The returned slice is a copy.
func (s *CategorySet) Names() []Category {
	if s == nil {
		return nil
	}
	out := make([]Category, len(s.sorted))
	copy(out, s.sorted)

	return out
}
