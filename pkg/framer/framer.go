// Package framer splits a bit sequence into fixed-size bursts.
package framer

import (
	"errors"
	"fmt"

	"github.com/bft-labs/crcsim/pkg/bitstring"
)

// ErrInvalidChunkSize is returned when the chunk size is not positive.
var ErrInvalidChunkSize = errors.New("framer: chunk size must be positive")

// Split returns consecutive windows of chunkSize bits. The last window is
// right-padded with zero bits, so every chunk has exactly chunkSize bits.
// An empty input yields no chunks.
func Split(bits bitstring.BitString, chunkSize int) ([]bitstring.BitString, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, chunkSize)
	}

	n := Count(bits.Len(), chunkSize)
	chunks := make([]bitstring.BitString, 0, n)
	for from := 0; from < bits.Len(); from += chunkSize {
		to := min(from+chunkSize, bits.Len())
		chunks = append(chunks, bits.Slice(from, to).PadRight(chunkSize))
	}
	return chunks, nil
}

// Count returns ceil(bitLen / chunkSize), or 0 when chunkSize is not positive.
func Count(bitLen, chunkSize int) int {
	if chunkSize <= 0 || bitLen <= 0 {
		return 0
	}
	return (bitLen + chunkSize - 1) / chunkSize
}

// Padding returns the number of zero bits appended to the last chunk.
func Padding(bitLen, chunkSize int) int {
	return Count(bitLen, chunkSize)*chunkSize - max(bitLen, 0)
}
