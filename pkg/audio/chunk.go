package audio

import (
	"github.com/mgnsk/go-typedarray/pkg/array"
)

// Chunk is a chunk of audio.
type Chunk struct {
	Index       uint64
	StreamStart uint64
	Samples     *array.TypedArray[float32]
}

// Len returns the number of samples in the chunk.
func (c Chunk) Len() int {
	if c.Samples == nil {
		return 0
	}
	return c.Samples.Len()
}

// Split cuts the chunk into consecutive chunks of at most n samples.
// The returned chunks share sample memory with c.
func (c Chunk) Split(n int, firstIndex uint64) ([]Chunk, error) {
	if n <= 0 {
		return nil, array.ErrInvalidSize.New("invalid chunk size %d", n)
	}
	var chunks []Chunk
	for start := 0; start < c.Len(); start += n {
		w, err := c.Samples.Extract(start, min(start+n, c.Len()))
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, Chunk{
			Index:       firstIndex + uint64(len(chunks)),
			StreamStart: c.StreamStart,
			Samples:     w.TypedArray,
		})
	}
	return chunks, nil
}
