package dynarray

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap/zapcore"
)

// String joins the elements with single spaces.
func (a *Array[T]) String() string {
	var b strings.Builder
	for i := 0; i < a.size; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, a.data[i])
	}
	return b.String()
}

// Dump writes capacity, size and elements to w. Diagnostics only.
func (a *Array[T]) Dump(w io.Writer) error {
	_, err := fmt.Fprintf(w, "capacity: %d, size %d\n%s\n", len(a.data), a.size, a.String())
	return err
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (a *Array[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("capacity", len(a.data))
	enc.AddInt("size", a.size)
	enc.AddString("elements", a.String())
	return nil
}
