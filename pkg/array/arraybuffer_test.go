package array_test

import (
	"math"

	"github.com/joomcode/errorx"
	"github.com/mgnsk/go-typedarray/pkg/array"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ArrayBuffer", func() {
	var a *array.ArrayBuffer

	When("Array buffer is created", func() {
		BeforeEach(func() {
			var err error
			a, err = array.NewArrayBuffer(129)
			Expect(err).NotTo(HaveOccurred())
		})

		It("has correct size", func() {
			Expect(a.Len()).To(Equal(129))
		})

		It("is zero filled", func() {
			Expect(a.Bytes()).To(Equal(make([]byte, 129)))
		})

		It("holds correct data", func() {
			data := []byte("Hello world!")
			ab := array.NewArrayBufferFromSlice(data)
			Expect(ab.Bytes()).To(Equal(data))
		})

		It("slices into an independent buffer", func() {
			src := array.NewArrayBufferFromSlice([]byte("Hello world!"))
			s, err := src.Slice(6, 11)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Bytes()).To(Equal([]byte("world")))

			view, err := array.NewDataView(s, 0, s.Len())
			Expect(err).NotTo(HaveOccurred())
			_, err = view.SetUint8(0, 'W')
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Bytes()).To(Equal([]byte("World")))
			Expect(src.Bytes()).To(Equal([]byte("Hello world!")))
		})

		It("rejects invalid slice ranges", func() {
			for _, r := range [][2]int{{-1, 2}, {3, 2}, {0, 130}} {
				_, err := a.Slice(r[0], r[1])
				Expect(errorx.IsOfType(err, array.ErrOutOfBounds)).To(BeTrue())
			}
		})

		It("allows empty slices", func() {
			s, err := a.Slice(129, 129)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Len()).To(BeZero())
		})
	})

	It("rejects negative sizes", func() {
		_, err := array.NewArrayBuffer(-1)
		Expect(errorx.IsOfType(err, array.ErrInvalidSize)).To(BeTrue())
	})

	It("rejects sizes past the byte limit", func() {
		for _, n := range []int{array.MaxByteLength + 1, math.MaxInt} {
			_, err := array.NewArrayBuffer(n)
			Expect(errorx.IsOfType(err, array.ErrInvalidSize)).To(BeTrue())
		}
	})

	It("compares bytes", func() {
		a := array.NewArrayBufferFromSlice([]byte{1, 2, 3})
		Expect(a.Equal(array.NewArrayBufferFromSlice([]byte{1, 2, 3}))).To(BeTrue())
		Expect(a.Equal(array.NewArrayBufferFromSlice([]byte{1, 2, 4}))).To(BeFalse())
		Expect(a.Equal(array.NewArrayBufferFromSlice([]byte{1, 2}))).To(BeFalse())
		Expect(a.Equal(nil)).To(BeFalse())

		var none *array.ArrayBuffer
		Expect(none.Equal(nil)).To(BeTrue())
		Expect(none.Equal(a)).To(BeFalse())
	})

	It("validates foreign values", func() {
		a := array.NewArrayBufferFromSlice([]byte{1})
		v, err := array.ArrayBufferFromValue(a)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeIdenticalTo(a))

		for _, x := range []interface{}{[]byte{1}, array.FromSlice([]byte{1}), (*array.ArrayBuffer)(nil), nil} {
			_, err := array.ArrayBufferFromValue(x)
			Expect(errorx.IsOfType(err, array.ErrTypeMismatch)).To(BeTrue())
		}
	})
})
