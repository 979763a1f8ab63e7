package dynarray_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/growvec/internal/dynarray"
)

func filled(n int) *dynarray.Array[int] {
	arr := dynarray.New[int]()
	for i := 0; i < n; i++ {
		arr.Append(i)
	}
	return arr
}

func withCapacity(n int) *dynarray.Array[int] {
	arr, err := dynarray.NewWithCapacity[int](n)
	Expect(err).NotTo(HaveOccurred())
	return arr
}

var _ = Describe("Array", func() {
	Describe("construction", func() {
		It("starts empty with the default capacity", func() {
			arr := dynarray.New[string]()
			Expect(arr.Len()).To(Equal(0))
			Expect(arr.Cap()).To(Equal(dynarray.DefaultCapacity))
			Expect(arr.IsEmpty()).To(BeTrue())
		})

		It("honours an explicit capacity", func() {
			arr := withCapacity(3)
			Expect(arr.Len()).To(Equal(0))
			Expect(arr.Cap()).To(Equal(3))
		})

		It("accepts a zero capacity", func() {
			arr := withCapacity(0)
			Expect(arr.Cap()).To(Equal(0))
			arr.Append(7)
			Expect(arr.Cap()).To(Equal(1))
			Expect(arr.Values()).To(Equal([]int{7}))
		})

		It("rejects a negative capacity", func() {
			arr, err := dynarray.NewWithCapacity[int](-1)
			Expect(arr).To(BeNil())
			Expect(err).To(MatchError(dynarray.ErrInvalidArgument))
		})

		It("fits a slice exactly", func() {
			src := []int{4, 5, 6}
			arr := dynarray.FromSlice(src)
			Expect(arr.Len()).To(Equal(3))
			Expect(arr.Cap()).To(Equal(3))
			Expect(arr.Values()).To(Equal([]int{4, 5, 6}))

			src[0] = 99
			Expect(arr.Get(0)).To(Equal(4))
		})
	})

	Describe("Append", func() {
		It("keeps values in append order", func() {
			arr := filled(25)
			Expect(arr.Len()).To(Equal(25))
			for i := 0; i < 25; i++ {
				Expect(arr.Get(i)).To(Equal(i))
			}
		})

		DescribeTable("grows a full array to (cap*3)/2 + 1",
			func(capacity, want int) {
				arr := withCapacity(capacity)
				for i := 0; i < capacity; i++ {
					arr.Append(i)
				}
				Expect(arr.Cap()).To(Equal(capacity))

				arr.Append(-1)
				Expect(arr.Cap()).To(Equal(want))
				for i := 0; i < capacity; i++ {
					Expect(arr.Get(i)).To(Equal(i))
				}
				Expect(arr.Get(capacity)).To(Equal(-1))
			},
			Entry("empty", 0, 1),
			Entry("one slot", 1, 2),
			Entry("odd", 3, 5),
			Entry("default", 10, 16),
			Entry("sixteen", 16, 25),
		)

		It("grows a fitted slice on the first append", func() {
			arr := dynarray.FromSlice([]int{1, 2})
			arr.Append(3)
			Expect(arr.Cap()).To(Equal(4))
		})
	})

	Describe("AppendAll", func() {
		It("appends in order and grows incrementally", func() {
			arr := withCapacity(2)
			arr.AppendAll([]int{1, 2, 3, 4, 5, 6})
			Expect(arr.Values()).To(Equal([]int{1, 2, 3, 4, 5, 6}))
			// 2 -> 4 -> 7
			Expect(arr.Cap()).To(Equal(7))
		})

		It("accepts an empty slice", func() {
			arr := filled(2)
			arr.AppendAll(nil)
			Expect(arr.Len()).To(Equal(2))
		})
	})

	Describe("InsertAt", func() {
		It("shifts in place when there is spare capacity", func() {
			arr := filled(4)
			Expect(arr.InsertAt(1, 42)).To(Succeed())
			Expect(arr.Values()).To(Equal([]int{0, 42, 1, 2, 3}))
			Expect(arr.Cap()).To(Equal(dynarray.DefaultCapacity))
		})

		It("inserts at the front", func() {
			arr := filled(3)
			Expect(arr.InsertAt(0, 9)).To(Succeed())
			Expect(arr.Values()).To(Equal([]int{9, 0, 1, 2}))
		})

		It("grows a full array to cap + cap/2", func() {
			arr := withCapacity(4)
			arr.AppendAll([]int{1, 2, 3, 4})
			Expect(arr.InsertAt(2, 0)).To(Succeed())
			Expect(arr.Cap()).To(Equal(6))
			Expect(arr.Values()).To(Equal([]int{1, 2, 0, 3, 4}))
		})

		It("uses a different formula than Append", func() {
			arr := filled(10)
			Expect(arr.InsertAt(9, 100)).To(Succeed())
			Expect(arr.Cap()).To(Equal(15))
			Expect(arr.Get(9)).To(Equal(100))
			Expect(arr.Get(10)).To(Equal(9))
		})

		It("still makes room in a one-slot array", func() {
			arr := dynarray.FromSlice([]int{5})
			Expect(arr.InsertAt(0, 4)).To(Succeed())
			Expect(arr.Values()).To(Equal([]int{4, 5}))
			Expect(arr.Cap()).To(Equal(2))
		})

		It("rejects insertion at the current size", func() {
			arr := filled(3)
			err := arr.InsertAt(3, 7)
			Expect(err).To(MatchError(dynarray.ErrIndexOutOfRange))
			Expect(arr.Len()).To(Equal(3))
		})

		It("rejects insertion into an empty array", func() {
			arr := dynarray.New[int]()
			Expect(arr.InsertAt(0, 1)).To(MatchError(dynarray.ErrIndexOutOfRange))
		})

		It("rejects negative indices", func() {
			arr := filled(3)
			Expect(arr.InsertAt(-1, 1)).To(MatchError(dynarray.ErrIndexOutOfRange))
		})
	})

	Describe("InsertAllAt", func() {
		It("splices the sequence in order", func() {
			arr := filled(4)
			Expect(arr.InsertAllAt(2, []int{7, 8, 9})).To(Succeed())
			Expect(arr.Values()).To(Equal([]int{0, 1, 7, 8, 9, 2, 3}))
		})

		It("sets the capacity to exactly size+k", func() {
			arr := withCapacity(32)
			arr.AppendAll([]int{1, 2, 3})
			Expect(arr.InsertAllAt(1, []int{7, 8})).To(Succeed())
			Expect(arr.Cap()).To(Equal(5))
			Expect(arr.Len()).To(Equal(5))
			Expect(arr.Values()).To(Equal([]int{1, 7, 8, 2, 3}))
		})

		It("grows to exactly size+k when the array is full", func() {
			arr := dynarray.FromSlice([]int{1, 2})
			Expect(arr.InsertAllAt(0, []int{5, 6, 7})).To(Succeed())
			Expect(arr.Cap()).To(Equal(5))
			Expect(arr.Values()).To(Equal([]int{5, 6, 7, 1, 2}))
		})

		It("trims spare capacity with an empty sequence", func() {
			arr := filled(3)
			Expect(arr.InsertAllAt(0, nil)).To(Succeed())
			Expect(arr.Cap()).To(Equal(3))
			Expect(arr.Values()).To(Equal([]int{0, 1, 2}))
		})

		It("rejects an index at the current size", func() {
			arr := filled(3)
			Expect(arr.InsertAllAt(3, []int{1})).To(MatchError(dynarray.ErrIndexOutOfRange))
			Expect(arr.Cap()).To(Equal(dynarray.DefaultCapacity))
		})
	})

	Describe("Get and Set", func() {
		It("round-trips a value and returns the previous one", func() {
			arr := filled(5)
			old, err := arr.Set(2, 20)
			Expect(err).NotTo(HaveOccurred())
			Expect(old).To(Equal(2))
			Expect(arr.Get(2)).To(Equal(20))
		})

		It("rejects reads past the size even within capacity", func() {
			arr := filled(2)
			_, err := arr.Get(2)
			Expect(err).To(MatchError(dynarray.ErrIndexOutOfRange))

			var idxErr *dynarray.IndexError
			Expect(errors.As(err, &idxErr)).To(BeTrue())
			Expect(idxErr.Op).To(Equal("get"))
			Expect(idxErr.Size).To(Equal(2))
		})

		It("rejects writes past the size", func() {
			arr := filled(2)
			_, err := arr.Set(5, 1)
			Expect(err).To(MatchError(dynarray.ErrIndexOutOfRange))
			Expect(arr.Values()).To(Equal([]int{0, 1}))
		})
	})

	Describe("RemoveAt", func() {
		It("shifts later elements down", func() {
			arr := dynarray.FromSlice([]string{"a", "b", "c", "d"})
			Expect(arr.RemoveAt(1)).To(Succeed())
			Expect(arr.Values()).To(Equal([]string{"a", "c", "d"}))
			Expect(arr.Len()).To(Equal(3))
			Expect(arr.Cap()).To(Equal(4))
		})

		It("removes the last element", func() {
			arr := filled(3)
			Expect(arr.RemoveAt(2)).To(Succeed())
			Expect(arr.Values()).To(Equal([]int{0, 1}))
		})

		It("rejects indices outside [0, size)", func() {
			arr := filled(3)
			Expect(arr.RemoveAt(3)).To(MatchError(dynarray.ErrIndexOutOfRange))
			Expect(arr.RemoveAt(-1)).To(MatchError(dynarray.ErrIndexOutOfRange))
			Expect(dynarray.New[int]().RemoveAt(0)).To(MatchError(dynarray.ErrIndexOutOfRange))
			Expect(arr.Len()).To(Equal(3))
		})

		It("empties the array without shrinking it", func() {
			arr := filled(10)
			arr.Append(1)
			Expect(arr.Values()).To(Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 1}))

			for i := 0; i < 11; i++ {
				Expect(arr.RemoveAt(0)).To(Succeed())
			}
			Expect(arr.IsEmpty()).To(BeTrue())
			Expect(arr.Cap()).To(Equal(16))
		})
	})

	Describe("Clear", func() {
		It("drops the elements and keeps the capacity", func() {
			arr := filled(12)
			capBefore := arr.Cap()
			arr.Clear()
			Expect(arr.IsEmpty()).To(BeTrue())
			Expect(arr.Cap()).To(Equal(capBefore))
			Expect(arr.Contains(0)).To(BeFalse())
		})
	})

	Describe("Contains and IndexOf", func() {
		It("finds the first match", func() {
			arr := dynarray.FromSlice([]int{3, 1, 4, 1, 5})
			Expect(arr.IndexOf(1)).To(Equal(1))
			Expect(arr.IndexOf(3)).To(Equal(0))
			Expect(arr.Contains(5)).To(BeTrue())
		})

		It("reports NotFound for missing values", func() {
			arr := filled(3)
			Expect(arr.IndexOf(42)).To(Equal(dynarray.NotFound))
			Expect(arr.Contains(42)).To(BeFalse())
		})

		It("ignores the zeroed spare slots", func() {
			arr := withCapacity(4)
			arr.Append(1)
			Expect(arr.Contains(0)).To(BeFalse())
		})

		It("matches nil only against nil slots", func() {
			one := 1
			arr := dynarray.FromSlice([]*int{&one, nil})
			Expect(arr.IndexOf(nil)).To(Equal(1))

			full := dynarray.FromSlice([]*int{&one})
			Expect(full.Contains(nil)).To(BeFalse())
		})

		It("uses the element's Equal method", func() {
			arr := dynarray.FromSlice([]*point{{1, 2}, nil, {3, 4}})
			Expect(arr.IndexOf(&point{3, 4})).To(Equal(2))
			Expect(arr.IndexOf(nil)).To(Equal(1))
			Expect(arr.Contains(&point{5, 6})).To(BeFalse())
		})
	})
})
