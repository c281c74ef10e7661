// Package picks holds the per-visitor membership sets for favorite-marked and
// cart-added products. Sets carry membership only: no ordering, no quantity.
package picks

import (
	"encoding/json"
	"sort"

	"farmaplus.org/admin/internal/admin/catalog"
)

// Set is a membership set over canonical product keys.
type Set map[catalog.Key]struct{}

// New builds a Set from the provided identifiers.
func New(ids ...catalog.Key) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[catalog.ParseKey(string(id))] = struct{}{}
	}
	return s
}

// Has reports membership for the given identifier.
func (s Set) Has(id catalog.Key) bool {
	_, ok := s[catalog.ParseKey(string(id))]
	return ok
}

// Keys returns the members in a stable sorted order.
func (s Set) Keys() []catalog.Key {
	keys := make([]catalog.Key, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Toggle returns a new set with the identifier added when absent and removed
// when present. The input set is left untouched so callers can compare the
// two values to decide whether to re-render. The identifier is normalized
// before the membership test, so toggling with a numeric spelling and again
// with its textual equivalent returns to the original set.
func Toggle(s Set, id catalog.Key) Set {
	key := catalog.ParseKey(string(id))

	next := make(Set, len(s)+1)
	for k := range s {
		next[k] = struct{}{}
	}
	if _, ok := next[key]; ok {
		delete(next, key)
	} else {
		next[key] = struct{}{}
	}
	return next
}

// MarshalJSON encodes the set as a sorted array of keys.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Keys())
}

// UnmarshalJSON decodes an array of keys, normalizing each member.
func (s *Set) UnmarshalJSON(data []byte) error {
	var keys []catalog.Key
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	*s = New(keys...)
	return nil
}
