// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package bdi

// Endian selects the byte order used when interpreting a buffer as a
// sequence of unsigned integers.
type Endian int

const (
	// BigEndian interprets the first byte of each step-sized group as the
	// most significant. This is the package default and matches the trace
	// and hex-seed file conventions.
	BigEndian Endian = iota
	// LittleEndian interprets the first byte of each step-sized group as
	// the least significant.
	LittleEndian
)

// DefaultEndian is the byte order assumed when none is specified.
const DefaultEndian = BigEndian

// ReadAsInts interprets buf as a sequence of consecutive step-byte unsigned
// integers (step must be 2, 4, or 8) using the given byte order. It returns
// ErrInvalidStep if step is not one of those sizes, and ErrShortBuffer if
// len(buf) is not a multiple of step.
func ReadAsInts(buf []byte, step int, endian Endian) ([]uint64, error) {
	if step != 2 && step != 4 && step != 8 {
		return nil, ErrInvalidStep
	}
	if len(buf)%step != 0 {
		return nil, ErrShortBuffer
	}

	values := make([]uint64, len(buf)/step)
	for i := 0; i < len(buf); i += step {
		values[i/step] = readBytesAsInteger(buf[i:i+step], endian)
	}
	return values, nil
}

// readBytesAsInteger decodes exactly len(bytes) bytes (2, 4, or 8) as one
// unsigned integer in the given byte order.
func readBytesAsInteger(bytes []byte, endian Endian) uint64 {
	var value uint64
	n := len(bytes)
	if endian == LittleEndian {
		for j := 0; j < n; j++ {
			value += uint64(bytes[j]) << (8 * j)
		}
	} else {
		for j := 0; j < n; j++ {
			value += uint64(bytes[j]) << (8 * (n - 1 - j))
		}
	}
	return value
}
