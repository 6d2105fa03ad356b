package audio

import (
	"sync"
)

// Sink is an audio sink that processes audio chunks.
type Sink interface {
	Append(Chunk) error
	OutputTo(Sink) error
	Drain() <-chan Chunk
	Close()
}

// Transformer is a function that transforms a chunk.
type Transformer func(Chunk) Chunk

// GainFx returns a transformer that applies the multiplier in place.
func GainFx(multiplier float32) Transformer {
	return func(chunk Chunk) Chunk {
		ApplyGain(chunk, multiplier)
		return chunk
	}
}

// outlet is the output channel of a sink. Sends after Close fail with ErrClosed.
type outlet struct {
	mu     sync.Mutex
	closed bool
	out    chan Chunk
}

func (o *outlet) send(chunk Chunk) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return ErrClosed.New("chunk %d appended to a closed sink", chunk.Index)
	}
	o.out <- chunk
	return nil
}

// OutputTo forwards all output to next sink and closes it once this sink is closed.
// After the first chunk the next sink rejects, the remaining output is drained
// without forwarding and the rejection is returned.
func (o *outlet) OutputTo(nextSink Sink) error {
	defer nextSink.Close()
	var firstErr error
	for chunk := range o.out {
		if firstErr != nil {
			continue
		}
		firstErr = nextSink.Append(chunk)
	}
	return firstErr
}

// Drain the sink.
func (o *outlet) Drain() <-chan Chunk {
	return o.out
}

// Close the sink. Closing twice is a no-op.
func (o *outlet) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.closed {
		o.closed = true
		close(o.out)
	}
}

// TransformSink allows using audio transformers on passed in chunks.
type TransformSink struct {
	outlet
	fx []Transformer
}

// NewTransformSink constructor.
func NewTransformSink(fx ...Transformer) *TransformSink {
	return &TransformSink{
		outlet: outlet{out: make(chan Chunk)},
		fx:     fx,
	}
}

// Append to sink.
func (sink *TransformSink) Append(chunk Chunk) error {
	// apply all transforms
	for _, tr := range sink.fx {
		chunk = tr(chunk)
	}
	return sink.send(chunk)
}

// EmptySink outputs all chunks it receives.
type EmptySink struct {
	outlet
}

// NewEmptySink constructor.
func NewEmptySink() *EmptySink {
	return &EmptySink{
		outlet: outlet{out: make(chan Chunk, 1)},
	}
}

// Append to sink.
func (sink *EmptySink) Append(chunk Chunk) error {
	return sink.send(chunk)
}

// OrderedSink allows appending audio chunks of a single stream in any order
// and outputs them ordered by index. Indexes of a stream start at its streamStart.
type OrderedSink struct {
	outlet
	streamStart uint64

	mu      sync.Mutex
	next    uint64
	pending map[uint64]Chunk
}

// NewOrderedSink constructor.
func NewOrderedSink(streamStart uint64) *OrderedSink {
	return &OrderedSink{
		outlet:      outlet{out: make(chan Chunk, 1)},
		streamStart: streamStart,
		next:        streamStart,
		pending:     make(map[uint64]Chunk),
	}
}

// Append a chunk.
func (sink *OrderedSink) Append(chunk Chunk) error {
	if chunk.StreamStart != sink.streamStart {
		return ErrInvalidStream.New("chunk of stream %d appended to stream %d", chunk.StreamStart, sink.streamStart)
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()

	if _, ok := sink.pending[chunk.Index]; ok || chunk.Index < sink.next {
		return ErrInvalidStream.New("duplicate chunk %d", chunk.Index)
	}
	sink.pending[chunk.Index] = chunk

	for {
		c, ok := sink.pending[sink.next]
		if !ok {
			return nil
		}
		if err := sink.send(c); err != nil {
			delete(sink.pending, chunk.Index)
			return err
		}
		delete(sink.pending, sink.next)
		sink.next++
	}
}

// Close the sink. Chunks still waiting for a predecessor are dropped.
func (sink *OrderedSink) Close() {
	sink.outlet.Close()
}
