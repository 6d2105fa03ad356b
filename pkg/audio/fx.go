package audio

import (
	"github.com/joomcode/errorx"
	"github.com/mgnsk/go-typedarray/pkg/array"
	"golang.org/x/exp/constraints"
)

// Gain returns a copy of the chunk with every sample multiplied.
func Gain(chunk Chunk, multiplier float32) Chunk {
	if chunk.Samples != nil {
		chunk.Samples = chunk.Samples.Map(func(v float32) float32 {
			return v * multiplier
		})
	}
	return chunk
}

// ApplyGain multiplies the samples of the chunk in place.
func ApplyGain(chunk Chunk, multiplier float32) {
	if chunk.Samples == nil {
		return
	}
	s := chunk.Samples
	s.UnsafeSet(func(i int) float32 {
		v, _ := s.At(i)
		return v * multiplier
	})
}

// Mix sums two chunks of equal length sample by sample.
func Mix(a, b Chunk) (Chunk, error) {
	if a.Samples == nil || b.Samples == nil {
		return Chunk{}, array.ErrTypeMismatch.New("mix: chunk has no samples")
	}
	samples, err := a.Samples.Map2(b.Samples, func(x, y float32) float32 {
		return x + y
	})
	if err != nil {
		return Chunk{}, errorx.Decorate(err, "mix: chunks %d and %d", a.Index, b.Index)
	}
	a.Samples = samples
	return a, nil
}

// Peak returns the largest absolute sample value of the chunk.
func Peak(chunk Chunk) float32 {
	if chunk.Samples == nil {
		return 0
	}
	return array.Foldl(chunk.Samples, float32(0), absMax[float32])
}

func absMax[T constraints.Signed | constraints.Float](v, acc T) T {
	if v < 0 {
		v = -v
	}
	if v > acc {
		return v
	}
	return acc
}
