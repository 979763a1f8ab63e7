package dynarray

import (
	"hash/maphash"
	"reflect"
)

// Equaler is implemented by element types with their own notion of
// equality. An Equaler without a Hasher contributes a constant to
// Array.Hash, so equal arrays still hash equal.
type Equaler[T any] interface {
	Equal(other T) bool
}

// Hasher is implemented by element types that supply their own hash.
type Hasher interface {
	Hash() uint64
}

const (
	hashInit  = 28
	hashPrime = 31
)

var hashSeed = maphash.MakeSeed()

// Equal reports whether a and other have the same capacity, the same size
// and equal elements at every index.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if a == nil || other == nil {
		return a == other
	}
	if len(a.data) != len(other.data) || a.size != other.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !elementsEqual(a.data[i], other.data[i]) {
			return false
		}
	}
	return true
}

// Hash folds capacity, size and every element hash into a single value.
// Arrays that are Equal hash equal within one process.
func (a *Array[T]) Hash() uint64 {
	h := uint64(hashInit)
	h = hashPrime*h + uint64(len(a.data))
	h = hashPrime*h + uint64(a.size)
	for i := 0; i < a.size; i++ {
		h = hashPrime*h + elementHash(a.data[i])
	}
	return h
}

// elementsEqual compares a query value against a stored one. An absent
// query matches absent slots only and never reaches an Equal method.
func elementsEqual[T comparable](query, stored T) bool {
	if absent(query) {
		return absent(stored)
	}
	if eq, ok := any(query).(Equaler[T]); ok {
		return eq.Equal(stored)
	}
	return query == stored
}

func elementHash[T comparable](v T) uint64 {
	if absent(v) {
		return 0
	}
	if h, ok := any(v).(Hasher); ok {
		return h.Hash()
	}
	if _, ok := any(v).(Equaler[T]); ok {
		// identity hashing would split values Equal considers the same
		return 0
	}
	return maphash.Comparable(hashSeed, v)
}

// absent reports whether v is the nil value of a nilable type.
func absent[T comparable](v T) bool {
	if !nilable(reflect.TypeFor[T]()) {
		return false
	}
	var zero T
	return v == zero
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}
