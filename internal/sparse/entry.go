package sparse

import "fmt"

// Entry is the result of a single key lookup: either *OccupiedEntry or
// *VacantEntry. Callers type-switch on it, or use the combinators to express
// "update or initialize" without a second lookup.
type Entry[K Key, T any] interface {
	// Key returns the key the entry was resolved for.
	Key() K

	// Insert stores value, returning the previous value if the entry was occupied.
	Insert(value T) (prev T, replaced bool)

	// InsertEntry stores value and returns the occupied handle for it.
	InsertEntry(value T) *OccupiedEntry[K, T]

	// OrInsert returns the present value, inserting value first if vacant.
	OrInsert(value T) *T

	// OrInsertWith is OrInsert with a lazily computed value.
	OrInsertWith(fn func() T) *T

	// OrInsertWithKey is OrInsertWith with the key passed to fn.
	OrInsertWithKey(fn func(K) T) *T

	// OrDefault is OrInsert with the zero value of T.
	OrDefault() *T

	// AndModify applies fn to the present value and returns the same entry.
	// Vacant entries are returned unchanged.
	AndModify(fn func(*T)) Entry[K, T]

	sealed()
}

// Entry resolves key once and returns a handle for it.
// Out-of-range keys yield a vacant entry whose insert paths panic.
func (v *Vec[K, T]) Entry(key K) Entry[K, T] {
	if d, ok := v.lookup(key); ok {
		return &OccupiedEntry[K, T]{vec: v, key: key, pos: d}
	}
	return &VacantEntry[K, T]{vec: v, key: key}
}

// OccupiedEntry is a handle to a present value with its dense position resolved.
type OccupiedEntry[K Key, T any] struct {
	vec     *Vec[K, T]
	key     K
	pos     denseIndex
	removed bool
}

// check panics if the handle no longer describes the entry it was created for.
func (e *OccupiedEntry[K, T]) check() {
	v := e.vec
	if e.removed || int(e.pos) >= len(v.dense) || v.dense[e.pos].Key != e.key || v.sparse[e.key] != e.pos {
		panic(fmt.Sprintf("sparse.OccupiedEntry: stale handle for key %d", e.key))
	}
}

func (e *OccupiedEntry[K, T]) sealed() {}

// Key returns the entry key.
func (e *OccupiedEntry[K, T]) Key() K {
	return e.key
}

// Get returns the present value.
func (e *OccupiedEntry[K, T]) Get() T {
	e.check()
	return e.vec.dense[e.pos].Value
}

// GetMut returns a pointer to the present value.
func (e *OccupiedEntry[K, T]) GetMut() *T {
	e.check()
	return &e.vec.dense[e.pos].Value
}

// Replace stores value and returns the previous one.
func (e *OccupiedEntry[K, T]) Replace(value T) T {
	p := e.GetMut()
	old := *p
	*p = value
	return old
}

// Remove takes the value out of the container. The handle is unusable afterwards.
func (e *OccupiedEntry[K, T]) Remove() T {
	e.check()
	e.removed = true
	return e.vec.swapRemove(e.pos)
}

func (e *OccupiedEntry[K, T]) Insert(value T) (T, bool) {
	return e.Replace(value), true
}

func (e *OccupiedEntry[K, T]) InsertEntry(value T) *OccupiedEntry[K, T] {
	e.Replace(value)
	return e
}

func (e *OccupiedEntry[K, T]) OrInsert(T) *T {
	return e.GetMut()
}

func (e *OccupiedEntry[K, T]) OrInsertWith(func() T) *T {
	return e.GetMut()
}

func (e *OccupiedEntry[K, T]) OrInsertWithKey(func(K) T) *T {
	return e.GetMut()
}

func (e *OccupiedEntry[K, T]) OrDefault() *T {
	return e.GetMut()
}

func (e *OccupiedEntry[K, T]) AndModify(fn func(*T)) Entry[K, T] {
	fn(e.GetMut())
	return e
}

// VacantEntry is a handle to a key with no value.
type VacantEntry[K Key, T any] struct {
	vec *Vec[K, T]
	key K
}

func (e *VacantEntry[K, T]) sealed() {}

// Key returns the entry key.
func (e *VacantEntry[K, T]) Key() K {
	return e.key
}

// link appends value and records its position in the key's sparse slot.
// Panics on an out-of-range key or on a handle whose key was filled since.
func (e *VacantEntry[K, T]) link(value T) denseIndex {
	v := e.vec
	if int(e.key) >= len(v.sparse) {
		panic(fmt.Sprintf("sparse.VacantEntry: key %d out of range [0, %d)", e.key, len(v.sparse)))
	}
	if v.sparse[e.key] != absent {
		panic(fmt.Sprintf("sparse.VacantEntry: stale handle for key %d", e.key))
	}
	return v.push(e.key, value)
}

func (e *VacantEntry[K, T]) Insert(value T) (T, bool) {
	e.link(value)
	var zero T
	return zero, false
}

func (e *VacantEntry[K, T]) InsertEntry(value T) *OccupiedEntry[K, T] {
	d := e.link(value)
	return &OccupiedEntry[K, T]{vec: e.vec, key: e.key, pos: d}
}

func (e *VacantEntry[K, T]) OrInsert(value T) *T {
	d := e.link(value)
	return &e.vec.dense[d].Value
}

func (e *VacantEntry[K, T]) OrInsertWith(fn func() T) *T {
	return e.OrInsert(fn())
}

func (e *VacantEntry[K, T]) OrInsertWithKey(fn func(K) T) *T {
	return e.OrInsert(fn(e.key))
}

func (e *VacantEntry[K, T]) OrDefault() *T {
	var zero T
	return e.OrInsert(zero)
}

func (e *VacantEntry[K, T]) AndModify(func(*T)) Entry[K, T] {
	return e
}
