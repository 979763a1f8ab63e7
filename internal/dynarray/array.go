package dynarray

import "fmt"

const (
	// DefaultCapacity is the capacity of an array built with New.
	DefaultCapacity = 10

	// NotFound is returned by IndexOf when no element matches.
	NotFound = -1
)

// Array is a growable array of T. The zero value is not usable; build one
// with New, NewWithCapacity or FromSlice.
//
// Elements are compared with ==. For an interface T holding a value whose
// dynamic type is not comparable, such as []int in an Array[any], IndexOf,
// Contains, Equal and Hash panic just as == does.
type Array[T comparable] struct {
	data []T // len(data) is the capacity
	size int
}

// New returns an empty array with DefaultCapacity slots.
func New[T comparable]() *Array[T] {
	return &Array[T]{data: make([]T, DefaultCapacity)}
}

// NewWithCapacity returns an empty array with n slots. It fails with
// ErrInvalidArgument when n is negative.
func NewWithCapacity[T comparable](n int) (*Array[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: capacity %d is negative", ErrInvalidArgument, n)
	}
	return &Array[T]{data: make([]T, n)}, nil
}

// FromSlice returns an array holding a copy of seq. The result has no spare
// capacity: Cap() == Len() == len(seq).
func FromSlice[T comparable](seq []T) *Array[T] {
	data := make([]T, len(seq))
	copy(data, seq)
	return &Array[T]{data: data, size: len(seq)}
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int { return len(a.data) }

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }

// Append stores v after the last element, growing a full array to
// (cap*3)/2 + 1 first.
func (a *Array[T]) Append(v T) {
	a.ensureCapacity()
	a.data[a.size] = v
	a.size++
}

// AppendAll appends every element of seq in order. Growth may happen more
// than once.
func (a *Array[T]) AppendAll(seq []T) {
	for _, v := range seq {
		a.Append(v)
	}
}

// InsertAt places v at index i and shifts [i, size) up by one. Only indices
// of existing elements are accepted; use Append to extend past the end.
func (a *Array[T]) InsertAt(i int, v T) error {
	if err := a.checkIndex("insert", i); err != nil {
		return err
	}

	if a.size < len(a.data) {
		copy(a.data[i+1:a.size+1], a.data[i:a.size])
		a.data[i] = v
		a.size++
		return nil
	}

	newCap := len(a.data) + len(a.data)/2
	if newCap <= a.size {
		// cap/2 rounds to zero for a one-slot array
		newCap = a.size + 1
	}
	data := make([]T, newCap)
	copy(data, a.data[:i])
	data[i] = v
	copy(data[i+1:], a.data[i:a.size])
	a.data = data
	a.size++
	return nil
}

// InsertAllAt places seq at index i, shifting [i, size) up by len(seq).
// The backing store is always reallocated to exactly size+len(seq) slots,
// which can lower the capacity.
func (a *Array[T]) InsertAllAt(i int, seq []T) error {
	if err := a.checkIndex("insert all", i); err != nil {
		return err
	}

	k := len(seq)
	data := make([]T, a.size+k)
	copy(data, a.data[:i])
	copy(data[i:], seq)
	copy(data[i+k:], a.data[i:a.size])
	a.data = data
	a.size += k
	return nil
}

// Get returns the element at index i.
func (a *Array[T]) Get(i int) (T, error) {
	if err := a.checkIndex("get", i); err != nil {
		var zero T
		return zero, err
	}
	return a.data[i], nil
}

// Set replaces the element at index i and returns the previous value.
func (a *Array[T]) Set(i int, v T) (T, error) {
	if err := a.checkIndex("set", i); err != nil {
		var zero T
		return zero, err
	}
	old := a.data[i]
	a.data[i] = v
	return old, nil
}

// RemoveAt deletes the element at index i, shifting later elements down.
// The capacity is unchanged.
func (a *Array[T]) RemoveAt(i int) error {
	if err := a.checkIndex("remove", i); err != nil {
		return err
	}

	copy(a.data[i:], a.data[i+1:a.size])
	a.size--

	var zero T
	a.data[a.size] = zero
	return nil
}

// Clear drops all elements. The capacity is unchanged.
func (a *Array[T]) Clear() {
	clear(a.data[:a.size])
	a.size = 0
}

// Contains reports whether some element matches v.
func (a *Array[T]) Contains(v T) bool {
	return a.IndexOf(v) != NotFound
}

// IndexOf returns the index of the first element matching v, or NotFound.
func (a *Array[T]) IndexOf(v T) int {
	for i := 0; i < a.size; i++ {
		if elementsEqual(v, a.data[i]) {
			return i
		}
	}
	return NotFound
}

// Values returns a copy of the elements in index order.
func (a *Array[T]) Values() []T {
	out := make([]T, a.size)
	copy(out, a.data[:a.size])
	return out
}

func (a *Array[T]) ensureCapacity() {
	if a.size < len(a.data) {
		return
	}
	data := make([]T, (len(a.data)*3)/2+1)
	copy(data, a.data[:a.size])
	a.data = data
}

func (a *Array[T]) checkIndex(op string, i int) error {
	if i < 0 || i >= a.size {
		return &IndexError{Op: op, Index: i, Size: a.size}
	}
	return nil
}
