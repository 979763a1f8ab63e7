// Package dynarray provides a growable array container with an explicit,
// observable capacity policy.
//
// [Array] keeps a backing slice whose length is the capacity and a logical
// size. The capacity policy is part of the contract:
//
//   - [Array.Append] grows a full array to (cap*3)/2 + 1
//   - [Array.InsertAt] grows a full array to cap + cap/2
//   - [Array.InsertAllAt] always reallocates to exactly size+len(seq)
//   - removal and clearing never shrink the capacity
//
// Equality ([Array.Equal]) compares capacity as well as contents, so two
// arrays holding the same values with different spare room are not equal.
//
// # Example
//
//	arr := dynarray.New[int]()
//	for i := 0; i < 10; i++ {
//		arr.Append(i)
//	}
//	arr.Append(1) // grows 10 -> 16
//	v, err := arr.Get(3)
//
// # Thread Safety
//
// Array instances are NOT thread-safe. Callers sharing an Array across
// goroutines must provide their own synchronization.
package dynarray
