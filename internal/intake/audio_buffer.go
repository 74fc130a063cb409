package intake

import "sync"

// AudioBuffer holds the audio chunks received since the last transcription
// pass, in arrival order.
type AudioBuffer struct {
	mu     sync.Mutex
	chunks [][]float32
}

// Append adds one chunk as a single unit.
func (b *AudioBuffer) Append(chunk []float32) {
	b.mu.Lock()
	b.chunks = append(b.chunks, chunk)
	b.mu.Unlock()
}

// TakeAll removes and returns every buffered chunk. Chunks appended after
// the call start the next batch.
func (b *AudioBuffer) TakeAll() [][]float32 {
	b.mu.Lock()
	chunks := b.chunks
	b.chunks = nil
	b.mu.Unlock()
	return chunks
}

// Len reports the number of buffered chunks.
func (b *AudioBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.chunks)
}

func concatChunks(chunks [][]float32) []float32 {
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	samples := make([]float32, 0, total)
	for _, c := range chunks {
		samples = append(samples, c...)
	}
	return samples
}
