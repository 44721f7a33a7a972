// Package sparse implements a sparse set keyed by small unsigned integers.
//
// A Vec keeps two arrays: a fixed sparse array with one slot per possible key
// and a dense array holding only present entries together with their key.
// Lookups, inserts and removals are O(1); iteration walks the dense array only.
//
// Vec is not safe for concurrent use. It is meant to be owned by one caller
// (one player's stat set, one component table) at a time.
package sparse

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
)

// Key is a small unsigned ordinal used directly as a sparse slot index.
type Key interface {
	~uint8 | ~uint16
}

// denseIndex is a position in dense storage or absent.
type denseIndex uint16

// absent marks an empty sparse slot.
const absent denseIndex = math.MaxUint16

// MaxCapacity is the largest key space a Vec can address.
// The top value of the 16-bit index is reserved for absent.
const MaxCapacity = math.MaxUint16 - 1

// ErrCapacity is returned by New when the requested key space cannot be indexed.
var ErrCapacity = errors.New("sparse: capacity out of range")

// Item is a present entry in dense storage.
type Item[K Key, T any] struct {
	Value T
	Key   K
}

// Vec is a sparse set mapping keys in [0, Cap()) to values of type T.
type Vec[K Key, T any] struct {
	dense  []Item[K, T]
	sparse []denseIndex
}

// New creates a Vec addressing keys in [0, maxSize).
func New[K Key, T any](maxSize int) (*Vec[K, T], error) {
	if maxSize < 0 || maxSize > MaxCapacity {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrCapacity, maxSize, MaxCapacity)
	}

	s := make([]denseIndex, maxSize)
	for i := range s {
		s[i] = absent
	}
	return &Vec[K, T]{sparse: s}, nil
}

// Len returns the number of present entries.
func (v *Vec[K, T]) Len() int {
	return len(v.dense)
}

// Cap returns the size of the key space fixed at construction.
func (v *Vec[K, T]) Cap() int {
	return len(v.sparse)
}

// lookup resolves key to its dense position.
// Out-of-range keys are reported as absent.
func (v *Vec[K, T]) lookup(key K) (denseIndex, bool) {
	if int(key) >= len(v.sparse) {
		return absent, false
	}
	d := v.sparse[key]
	return d, d != absent
}

// Contains reports whether key has a value.
func (v *Vec[K, T]) Contains(key K) bool {
	_, ok := v.lookup(key)
	return ok
}

// Get returns the value stored for key.
func (v *Vec[K, T]) Get(key K) (T, bool) {
	d, ok := v.lookup(key)
	if !ok {
		var zero T
		return zero, false
	}
	return v.dense[d].Value, true
}

// GetMut returns a pointer to the value stored for key, or nil if absent.
// The pointer is valid until the next Insert of a new key, Remove, Clear or Sort.
func (v *Vec[K, T]) GetMut(key K) *T {
	if e, ok := v.Entry(key).(*OccupiedEntry[K, T]); ok {
		return e.GetMut()
	}
	return nil
}

// Insert stores value for key. If key was present, the previous value is
// returned with replaced set to true.
//
// Insert panics if key is outside [0, Cap()).
func (v *Vec[K, T]) Insert(key K, value T) (prev T, replaced bool) {
	return v.Entry(key).Insert(value)
}

// Remove deletes key and returns its value.
// The last dense entry is moved into the freed position and its sparse slot
// is re-linked. Absent and out-of-range keys are a no-op.
func (v *Vec[K, T]) Remove(key K) (T, bool) {
	if e, ok := v.Entry(key).(*OccupiedEntry[K, T]); ok {
		return e.Remove(), true
	}
	var zero T
	return zero, false
}

// Clear removes every entry. Cost is linear in Len(), not in Cap().
func (v *Vec[K, T]) Clear() {
	for _, it := range v.dense {
		v.sparse[it.Key] = absent
	}
	clear(v.dense)
	v.dense = v.dense[:0]
}

// Sort orders dense storage by key ascending and re-links every sparse slot.
// Lookups are correct without sorting; Sort only makes iteration order
// deterministic.
func (v *Vec[K, T]) Sort() {
	slices.SortFunc(v.dense, func(a, b Item[K, T]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	for i, it := range v.dense {
		v.sparse[it.Key] = denseIndex(i)
	}
}

// Items returns dense storage. Values may be modified in place; keys must not be.
// The slice is invalidated by any operation that adds or removes entries.
func (v *Vec[K, T]) Items() []Item[K, T] {
	return v.dense
}

// All iterates present entries in dense order.
func (v *Vec[K, T]) All() iter.Seq2[K, T] {
	return func(yield func(K, T) bool) {
		for _, it := range v.dense {
			if !yield(it.Key, it.Value) {
				return
			}
		}
	}
}

// Validate checks that sparse and dense storage reference each other
// consistently. It walks the whole key space and is meant for tests and
// debugging.
func (v *Vec[K, T]) Validate() error {
	occupied := 0
	for s, d := range v.sparse {
		if d == absent {
			continue
		}
		occupied++
		if int(d) >= len(v.dense) {
			return fmt.Errorf("sparse slot %d points past dense storage (%d >= %d)", s, d, len(v.dense))
		}
		if int(v.dense[d].Key) != s {
			return fmt.Errorf("sparse slot %d points to dense %d owned by key %d", s, d, v.dense[d].Key)
		}
	}
	for i, it := range v.dense {
		if int(it.Key) >= len(v.sparse) {
			return fmt.Errorf("dense %d owned by out-of-range key %d", i, it.Key)
		}
		if v.sparse[it.Key] != denseIndex(i) {
			return fmt.Errorf("dense %d owned by key %d, but its slot points to %d", i, it.Key, v.sparse[it.Key])
		}
	}
	if occupied != len(v.dense) {
		return fmt.Errorf("%d occupied slots for %d dense entries", occupied, len(v.dense))
	}
	return nil
}

// push appends value for key and links its sparse slot.
func (v *Vec[K, T]) push(key K, value T) denseIndex {
	d := denseIndex(len(v.dense))
	v.dense = append(v.dense, Item[K, T]{Value: value, Key: key})
	v.sparse[key] = d
	return d
}

// swapRemove takes the entry at d out of dense storage, moving the last entry
// into its place.
func (v *Vec[K, T]) swapRemove(d denseIndex) T {
	last := len(v.dense) - 1
	removed := v.dense[d]

	if int(d) != last {
		moved := v.dense[last]
		v.dense[d] = moved
		v.sparse[moved.Key] = d
	}
	v.dense[last] = Item[K, T]{}
	v.dense = v.dense[:last]
	v.sparse[removed.Key] = absent

	return removed.Value
}
