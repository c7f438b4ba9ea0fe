// SPDX-License-Identifier: MIT

package archive

import (
	"encoding/binary"
	"fmt"
	"math"
)

const float64Size = 8

// encodeFloats packs v as little-endian IEEE-754 float64 values.
func encodeFloats(v []float64) []byte {
	buf := make([]byte, 0, len(v)*float64Size)
	for _, x := range v {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(x))
	}

	return buf
}

// decodeFloats is the inverse of encodeFloats. An empty blob decodes to nil.
func decodeFloats(b []byte) ([]float64, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%float64Size != 0 {
		return nil, fmt.Errorf("%d bytes: %w", len(b), ErrCorruptBlob)
	}
	out := make([]float64, len(b)/float64Size)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*float64Size:]))
	}

	return out, nil
}
