// Package dict implements an ordered, capacity-bounded key/value store where
// an entry's address is its position.
//
// Inserting under an existing key removes the first entry with that key and
// appends the new one at the end. That moves the renamed entry to the end and
// shifts every entry that followed it down by one address; callers holding
// addresses across a rename see them move.
package dict

import "errors"

var (
	// ErrOverflow is returned when an insert would exceed capacity.
	ErrOverflow = errors.New("dictionary overflow")

	// ErrUndefinedAccess is returned when an address is out of range.
	ErrUndefinedAccess = errors.New("dictionary undefined access")
)

// Entry is one slot; Named is false for anonymous slots.
type Entry[K comparable, V any] struct {
	Key   K
	Named bool
	Value V
}

// Dict is a linear-scan dictionary; lookups are O(n).
type Dict[K comparable, V any] struct {
	capacity int
	data     []Entry[K, V]
}

// New creates an empty dictionary that can hold up to capacity entries.
func New[K comparable, V any](capacity int) *Dict[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Dict[K, V]{capacity: capacity}
}

// Insert stores v under key, returning its address.
func (d *Dict[K, V]) Insert(key K, v V) (int, error) {
	if i, ok := d.Addr(key); ok {
		copy(d.data[i:], d.data[i+1:])
		d.data[len(d.data)-1] = Entry[K, V]{}
		d.data = d.data[:len(d.data)-1]
	}
	return d.append(Entry[K, V]{Key: key, Named: true, Value: v})
}

// Append stores v in a new anonymous slot, returning its address.
func (d *Dict[K, V]) Append(v V) (int, error) {
	return d.append(Entry[K, V]{Value: v})
}

func (d *Dict[K, V]) append(ent Entry[K, V]) (int, error) {
	addr := len(d.data)
	if addr >= d.capacity {
		return addr, ErrOverflow
	}
	d.data = append(d.data, ent)
	return addr, nil
}

// Get returns the value of the first entry named key.
func (d *Dict[K, V]) Get(key K) (v V, ok bool) {
	if i, ok := d.Addr(key); ok {
		return d.data[i].Value, true
	}
	return v, false
}

// Addr returns the address of the first entry named key.
func (d *Dict[K, V]) Addr(key K) (int, bool) {
	for i, ent := range d.data {
		if ent.Named && ent.Key == key {
			return i, true
		}
	}
	return 0, false
}

// At returns the entry at addr.
func (d *Dict[K, V]) At(addr int) (ent Entry[K, V], ok bool) {
	if addr < 0 || addr >= len(d.data) {
		return ent, false
	}
	return d.data[addr], true
}

// Set overwrites the value at addr, keeping its key.
func (d *Dict[K, V]) Set(addr int, v V) error {
	if addr < 0 || addr >= len(d.data) {
		return ErrUndefinedAccess
	}
	d.data[addr].Value = v
	return nil
}

// Clear removes every entry.
func (d *Dict[K, V]) Clear() {
	for i := range d.data {
		d.data[i] = Entry[K, V]{}
	}
	d.data = d.data[:0]
}

// Entries returns the live entries in address order. Callers must not modify
// it.
func (d *Dict[K, V]) Entries() []Entry[K, V] { return d.data }

func (d *Dict[K, V]) Len() int { return len(d.data) }
func (d *Dict[K, V]) Cap() int { return d.capacity }
