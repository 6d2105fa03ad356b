package audio

import (
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/joomcode/errorx"
	"github.com/mgnsk/go-typedarray/pkg/array"
)

// DecodeWAV reads a WAV stream and returns its PCM data
// as chunks of at most chunkSamples normalized float32 samples.
func DecodeWAV(r io.ReadSeeker, chunkSamples int) ([]Chunk, error) {
	if chunkSamples <= 0 {
		return nil, array.ErrInvalidSize.New("invalid chunk size %d", chunkSamples)
	}

	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, ErrInvalidFile.New("invalid wav file")
	}

	var chunks []Chunk
	for {
		// decode audio to pcm data
		buffer := &goaudio.IntBuffer{
			Data: make([]int, chunkSamples),
		}
		n, err := decoder.PCMBuffer(buffer)
		if err != nil {
			return nil, errorx.Decorate(err, "decode chunk %d", len(chunks))
		}
		if n == 0 {
			return chunks, nil
		}
		buffer.Data = buffer.Data[:n]

		chunks = append(chunks, Chunk{
			Index:   uint64(len(chunks)),
			Samples: FromIntBuffer(buffer),
		})
	}
}

// FromIntBuffer copies the buffer into a float32 array,
// normalizing the samples by the source bit depth.
func FromIntBuffer(buf *goaudio.IntBuffer) *array.TypedArray[float32] {
	if buf == nil {
		return array.FromSlice[float32](nil)
	}
	if buf.Format == nil {
		b := *buf
		b.Format = &goaudio.Format{}
		buf = &b
	}
	return array.FromSlice(buf.AsFloat32Buffer().Data)
}

// ToFloat32Buffer copies the samples into a go-audio buffer.
func ToFloat32Buffer(samples *array.TypedArray[float32], format *goaudio.Format) *goaudio.Float32Buffer {
	return &goaudio.Float32Buffer{
		Format:         format,
		Data:           samples.Slice(),
		SourceBitDepth: 32,
	}
}
