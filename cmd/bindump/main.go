package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/mgnsk/go-typedarray/pkg/array"
	"github.com/mgnsk/go-typedarray/pkg/audio"
)

type options struct {
	kind   array.Type
	offset int
	sep    string
	dump   bool
	wav    int
}

func main() {
	var (
		opts options
		kind string
	)
	flag.StringVar(&kind, "kind", string(array.Uint8Array), "typed array kind to interpret the input as")
	flag.IntVar(&opts.offset, "offset", 0, "byte offset of the big-endian reads")
	flag.StringVar(&opts.sep, "sep", ",", "element separator")
	flag.BoolVar(&opts.dump, "dump", false, "dump the decoded elements")
	flag.IntVar(&opts.wav, "wav", 0, "decode the input as WAV in chunks of this many samples and print chunk peaks")
	flag.Parse()
	opts.kind = array.Type(kind)

	in := io.Reader(os.Stdin)
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(os.Stdout, data, opts); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, data []byte, opts options) error {
	if opts.wav > 0 {
		return printWAV(w, data, opts.wav)
	}

	buf := array.NewArrayBufferFromSlice(data)
	view, err := array.NewDataView(buf, 0, buf.Len())
	if err != nil {
		return err
	}
	printView(w, view, opts.offset)

	switch opts.kind {
	case array.Int8Array:
		return printTyped[int8](w, buf, opts)
	case array.Int16Array:
		return printTyped[int16](w, buf, opts)
	case array.Int32Array:
		return printTyped[int32](w, buf, opts)
	case array.BigInt64Array:
		return printTyped[int64](w, buf, opts)
	case array.Uint8Array:
		return printTyped[uint8](w, buf, opts)
	case array.Uint16Array:
		return printTyped[uint16](w, buf, opts)
	case array.Uint32Array:
		return printTyped[uint32](w, buf, opts)
	case array.BigUint64Array:
		return printTyped[uint64](w, buf, opts)
	case array.Float32Array:
		return printTyped[float32](w, buf, opts)
	case array.Float64Array:
		return printTyped[float64](w, buf, opts)
	default:
		return array.ErrTypeMismatch.New("unknown kind %q", opts.kind)
	}
}

func printView(w io.Writer, view *array.DataView, off int) {
	reads := []struct {
		name string
		get  func(int) (any, error)
	}{
		{"int8", func(o int) (any, error) { return view.GetInt8(o) }},
		{"uint8", func(o int) (any, error) { return view.GetUint8(o) }},
		{"int16", func(o int) (any, error) { return view.GetInt16(o) }},
		{"uint16", func(o int) (any, error) { return view.GetUint16(o) }},
		{"int32", func(o int) (any, error) { return view.GetInt32(o) }},
		{"uint32", func(o int) (any, error) { return view.GetUint32(o) }},
		{"bigint64", func(o int) (any, error) { return view.GetBigInt64(o) }},
		{"biguint64", func(o int) (any, error) { return view.GetBigUint64(o) }},
		{"float32", func(o int) (any, error) { return view.GetFloat32(o) }},
		{"float64", func(o int) (any, error) { return view.GetFloat64(o) }},
	}
	for _, r := range reads {
		v, err := r.get(off)
		if err != nil {
			fmt.Fprintf(w, "%-10s -\n", r.name)
			continue
		}
		fmt.Fprintf(w, "%-10s %v\n", r.name, v)
	}
}

func printTyped[E array.Element](w io.Writer, buf *array.ArrayBuffer, opts options) error {
	n := buf.Len() / array.BytesPerElement[E]()
	arr, err := array.FromBuffer[E](buf, 0, n)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s(%d) [%s]\n", arr.Type(), arr.Len(), arr.Join(opts.sep))
	if opts.dump {
		fmt.Fprint(w, spew.Sdump(arr.Slice()))
	}
	return nil
}

func printWAV(w io.Writer, data []byte, chunkSamples int) error {
	chunks, err := audio.DecodeWAV(bytes.NewReader(data), chunkSamples)
	if err != nil {
		return err
	}
	for _, c := range chunks {
		fmt.Fprintf(w, "chunk %d: %d samples, peak %v\n", c.Index, c.Len(), audio.Peak(c))
	}
	return nil
}
