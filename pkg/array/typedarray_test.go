package array_test

import (
	"math"
	"reflect"

	"github.com/joomcode/errorx"
	"github.com/mgnsk/go-typedarray/pkg/array"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

type kindInfo struct {
	typ    array.Type
	len    int
	size   int
	owns   bool
	copied bool
}

func infoOf[E array.Element](data []E) kindInfo {
	arr := array.FromSlice(data)
	return kindInfo{
		typ:    arr.Type(),
		len:    arr.Len(),
		size:   arr.ByteLength(),
		owns:   arr.Owns(),
		copied: reflect.DeepEqual(arr.Slice(), data),
	}
}

var _ = Describe("TypedArray", func() {
	DescribeTable("has correct kind and size",
		func(info kindInfo, typ array.Type, n int) {
			Expect(info.typ).To(Equal(typ))
			Expect(info.len).To(Equal(n))
			Expect(info.size).To(Equal(n * typ.Size()))
			Expect(info.owns).To(BeTrue())
			Expect(info.copied).To(BeTrue())
		},
		Entry("[]int8", infoOf([]int8{-1, 0, 1}), array.Int8Array, 3),
		Entry("[]int16", infoOf([]int16{-1, 0, 1}), array.Int16Array, 3),
		Entry("[]int32", infoOf([]int32{-1}), array.Int32Array, 1),
		Entry("[]int64", infoOf([]int64{-1}), array.BigInt64Array, 1),
		Entry("[]uint8", infoOf([]uint8{1}), array.Uint8Array, 1),
		Entry("[]uint16", infoOf([]uint16{1}), array.Uint16Array, 1),
		Entry("[]uint32", infoOf([]uint32{1}), array.Uint32Array, 1),
		Entry("[]uint64", infoOf([]uint64{1}), array.BigUint64Array, 1),
		Entry("[]float32", infoOf([]float32{-1.0}), array.Float32Array, 1),
		Entry("[]float64", infoOf([]float64{-1.0, 2}), array.Float64Array, 2),
	)

	DescribeTable("classifies kinds",
		func(typ array.Type, signed, float bool) {
			Expect(typ.IsSigned()).To(Equal(signed))
			Expect(typ.IsFloat()).To(Equal(float))
		},
		Entry("Int8Array", array.Int8Array, true, false),
		Entry("Uint16Array", array.Uint16Array, false, false),
		Entry("BigUint64Array", array.BigUint64Array, false, false),
		Entry("Float32Array", array.Float32Array, true, true),
		Entry("Float64Array", array.Float64Array, true, true),
	)

	When("constructing owned arrays", func() {
		It("fills zeros", func() {
			for _, n := range []int{0, 1, 7, 64} {
				arr, err := array.Zeros[float64](n)
				Expect(err).NotTo(HaveOccurred())
				Expect(arr.Len()).To(Equal(n))
				Expect(arr.All(func(v float64) bool { return v == 0 })).To(BeTrue())
				Expect(arr.Buffer().Len()).To(Equal(n * 8))
			}
		})

		It("repeats a constant", func() {
			arr, err := array.Repeat[int16](3, -7)
			Expect(err).NotTo(HaveOccurred())
			Expect(arr.Slice()).To(Equal([]int16{-7, -7, -7}))
		})

		It("initializes from the index", func() {
			arr, err := array.Initialize(4, func(i int) uint32 { return uint32(i * i) })
			Expect(err).NotTo(HaveOccurred())
			Expect(arr.Slice()).To(Equal([]uint32{0, 1, 4, 9}))
		})

		It("rejects negative sizes", func() {
			_, err := array.Zeros[uint8](-1)
			Expect(errorx.IsOfType(err, array.ErrInvalidSize)).To(BeTrue())

			_, err = array.Repeat[uint8](-1, 1)
			Expect(errorx.IsOfType(err, array.ErrInvalidSize)).To(BeTrue())

			_, err = array.Initialize(-2, func(int) uint8 { return 0 })
			Expect(errorx.IsOfType(err, array.ErrInvalidSize)).To(BeTrue())
		})

		It("rejects sizes past the byte limit", func() {
			_, err := array.Zeros[float64](math.MaxInt/8 + 1)
			Expect(errorx.IsOfType(err, array.ErrInvalidSize)).To(BeTrue())

			_, err = array.Zeros[float64](array.MaxByteLength/8 + 1)
			Expect(errorx.IsOfType(err, array.ErrInvalidSize)).To(BeTrue())

			_, err = array.Repeat[int32](math.MaxInt/4+1, 7)
			Expect(errorx.IsOfType(err, array.ErrInvalidSize)).To(BeTrue())

			_, err = array.Initialize(math.MaxInt, func(int) uint16 { return 0 })
			Expect(errorx.IsOfType(err, array.ErrInvalidSize)).To(BeTrue())

			_, err = array.FromList(array.MaxByteLength/2+1, []int16{1})
			Expect(errorx.IsOfType(err, array.ErrInvalidSize)).To(BeTrue())

			_, err = array.FromBuffer[uint64](array.NewArrayBufferFromSlice([]byte{}), 0, math.MaxInt/8+1)
			Expect(errorx.IsOfType(err, array.ErrInvalidSize)).To(BeTrue())
		})

		It("allocates lengths that are not a multiple of the word size", func() {
			arr, err := array.Zeros[uint8](9)
			Expect(err).NotTo(HaveOccurred())
			Expect(arr.Len()).To(Equal(9))
			Expect(arr.ByteLength()).To(Equal(9))
		})

		It("copies the first n list elements", func() {
			arr, err := array.FromList(2, []int32{5, 6, 7})
			Expect(err).NotTo(HaveOccurred())
			Expect(arr.Slice()).To(Equal([]int32{5, 6}))
		})

		It("rejects short lists", func() {
			_, err := array.FromList(4, []int32{5, 6, 7})
			Expect(errorx.IsOfType(err, array.ErrLengthMismatch)).To(BeTrue())
		})

		It("deep copies typed arrays", func() {
			src := array.FromSlice([]uint8{1, 2, 3})
			cp := array.FromTypedArray(src)
			Expect(cp.Buffer()).NotTo(BeIdenticalTo(src.Buffer()))

			_, err := cp.UnsafeSetAt(0, 9)
			Expect(err).NotTo(HaveOccurred())
			Expect(src.Slice()).To(Equal([]uint8{1, 2, 3}))
		})

		It("converts between kinds", func() {
			src := array.FromSlice([]float64{1.5, -2, 300})
			Expect(array.Convert[int16](src).Slice()).To(Equal([]int16{1, -2, 300}))
			Expect(array.Convert[uint8](array.FromSlice([]int16{-1, 256})).Slice()).To(Equal([]uint8{255, 0}))
		})
	})

	When("windowing a buffer", func() {
		var buf *array.ArrayBuffer

		BeforeEach(func() {
			var err error
			buf, err = array.NewArrayBuffer(16)
			Expect(err).NotTo(HaveOccurred())
		})

		It("aliases the buffer", func() {
			w, err := array.FromBuffer[uint32](buf, 4, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Owns()).To(BeFalse())
			Expect(w.Buffer()).To(BeIdenticalTo(buf))
			Expect(w.ByteOffset()).To(Equal(4))
			Expect(w.ByteLength()).To(Equal(8))

			view, err := array.NewDataView(buf, 0, 16)
			Expect(err).NotTo(HaveOccurred())
			_, err = view.SetUint8(4, 0xff)
			Expect(err).NotTo(HaveOccurred())

			v, err := w.At(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(uint32(0xff)))
		})

		It("shares writes between windows", func() {
			a, err := array.FromBuffer[float64](buf, 0, 2)
			Expect(err).NotTo(HaveOccurred())
			b, err := array.FromBuffer[float64](buf, 8, 1)
			Expect(err).NotTo(HaveOccurred())

			_, err = a.UnsafeSetAt(1, 3.25)
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Slice()).To(Equal([]float64{3.25}))
		})

		It("rejects windows past the end", func() {
			_, err := array.FromBuffer[uint32](buf, 8, 3)
			Expect(errorx.IsOfType(err, array.ErrOutOfBounds)).To(BeTrue())

			_, err = array.FromBuffer[uint8](buf, 17, 0)
			Expect(errorx.IsOfType(err, array.ErrOutOfBounds)).To(BeTrue())

			_, err = array.FromBuffer[uint8](buf, -1, 1)
			Expect(errorx.IsOfType(err, array.ErrOutOfBounds)).To(BeTrue())
		})

		It("rejects unaligned offsets", func() {
			_, err := array.FromBuffer[int16](buf, 1, 1)
			Expect(errorx.IsOfType(err, array.ErrOutOfBounds)).To(BeTrue())
		})

		It("rejects negative lengths", func() {
			_, err := array.FromBuffer[int16](buf, 0, -1)
			Expect(errorx.IsOfType(err, array.ErrInvalidSize)).To(BeTrue())
		})

		It("allows empty windows at the end", func() {
			w, err := array.FromBuffer[uint64](buf, 16, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Len()).To(BeZero())
		})
	})

	When("validating foreign values", func() {
		It("accepts arrays and windows of the same kind", func() {
			arr := array.FromSlice([]float32{1})
			v, err := array.FromValue[float32](arr)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeIdenticalTo(arr))

			w, err := arr.Extract(0, 1)
			Expect(err).NotTo(HaveOccurred())
			v, err = array.FromValue[float32](w)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeIdenticalTo(w.TypedArray))

			v, err = array.FromValue[float32](&w)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeIdenticalTo(w.TypedArray))
		})

		It("rejects other kinds and values", func() {
			for _, x := range []interface{}{
				array.FromSlice([]float64{1}),
				[]float32{1},
				"Float32Array",
				nil,
				(*array.TypedArray[float32])(nil),
				(*array.Window[float32])(nil),
				&array.Window[float32]{},
			} {
				_, err := array.FromValue[float32](x)
				Expect(errorx.IsOfType(err, array.ErrTypeMismatch)).To(BeTrue())
			}
		})
	})

	It("reports out of bounds indexes", func() {
		arr := array.FromSlice([]int8{1, 2})
		for _, i := range []int{-1, 2} {
			_, err := arr.At(i)
			Expect(errorx.IsOfType(err, array.ErrOutOfBounds)).To(BeTrue())
		}
	})
})
