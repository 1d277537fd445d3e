// Package sets provides a minimal hash set and an insertion-ordered set.
// Pages and components preserve first-occurrence order (navigation order is
// derived from it); dependencies and style bundles only need membership.
package sets

// Set is a simple generic hash set for comparable keys.
type Set[T comparable] map[T]struct{}

// New creates a set pre-populated with the provided values.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v into the set.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Has reports whether v is present.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Delete removes v if present.
func (s Set[T]) Delete(v T) { delete(s, v) }

// Clone returns a shallow copy.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Ordered is a set that also remembers first-insertion order. Re-adding an
// existing value is a no-op and does not move it.
type Ordered[T comparable] struct {
	seen  Set[T]
	items []T
}

// NewOrdered creates an ordered set pre-populated with the provided values.
func NewOrdered[T comparable](vals ...T) *Ordered[T] {
	o := &Ordered[T]{seen: make(Set[T], len(vals))}
	for _, v := range vals {
		o.Add(v)
	}
	return o
}

// Add appends v if it is not already present. Returns true on first insertion.
func (o *Ordered[T]) Add(v T) bool {
	if o.seen.Has(v) {
		return false
	}
	o.seen.Add(v)
	o.items = append(o.items, v)
	return true
}

// Has reports whether v is present.
func (o *Ordered[T]) Has(v T) bool { return o.seen.Has(v) }

// Len returns the number of elements.
func (o *Ordered[T]) Len() int { return len(o.items) }

// Items returns the elements in first-insertion order. The returned slice is
// a copy; mutating it does not affect the set.
func (o *Ordered[T]) Items() []T {
	out := make([]T, len(o.items))
	copy(out, o.items)
	return out
}
