package dynarray_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/san-kum/growvec/internal/dynarray"
)

var _ = Describe("diagnostics", func() {
	It("joins elements with spaces", func() {
		Expect(dynarray.FromSlice([]int{1, 2, 3}).String()).To(Equal("1 2 3"))
		Expect(dynarray.New[int]().String()).To(BeEmpty())
	})

	It("dumps capacity, size and elements", func() {
		arr := withCapacity(4)
		arr.AppendAll([]int{7, 8})

		var buf bytes.Buffer
		Expect(arr.Dump(&buf)).To(Succeed())
		Expect(buf.String()).To(Equal("capacity: 4, size 2\n7 8\n"))
	})

	It("encodes itself as a zap object", func() {
		core, logs := observer.New(zapcore.DebugLevel)
		arr := dynarray.FromSlice([]string{"a", "b"})
		zap.New(core).Info("state", zap.Object("array", arr))

		Expect(logs.Len()).To(Equal(1))
		fields := logs.All()[0].ContextMap()
		Expect(fields).To(HaveKey("array"))
		obj, ok := fields["array"].(map[string]interface{})
		Expect(ok).To(BeTrue())
		Expect(obj["capacity"]).To(BeEquivalentTo(2))
		Expect(obj["size"]).To(BeEquivalentTo(2))
		Expect(obj["elements"]).To(Equal("a b"))
	})
})
