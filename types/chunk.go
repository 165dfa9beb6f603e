package types

import "fmt"

// Chunk identifies a contiguous window of a choice sequence. Shrink
// commands operate on chunks of up to MaxChunkSize elements.
type Chunk struct {
	Size   uint8
	Offset int
}

// End returns the index one past the last element of the chunk.
func (c Chunk) End() int {
	return c.Offset + int(c.Size)
}

func (c Chunk) String() string {
	return fmt.Sprintf("Chunk<size=%d, offset=%d>", c.Size, c.Offset)
}
