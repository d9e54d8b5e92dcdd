// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package trace

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/patricklfdm/bdisim/bdi"
)

func errSeedSize(written int) error {
	return fmt.Errorf("expected %d hex values (%d bytes), got %d bytes", hexValuesPerLine, bdi.LineSize, written)
}

// SeedCount is the fixed number of pre-compressed payload samples drawn
// from on every cache miss.
const SeedCount = 5

// hexValuesPerLine is the number of 32-bit hex values a seed file must
// contain to fill one 32-byte BDI line (the reference's
// readHexValuesIntoBuffer concatenates every line in the file into one
// buffer; this simulator's seed files are sized to exactly one line).
const hexValuesPerLine = bdi.LineSize / 4

// LoadSeeds reads the five hex seed files (one 32-bit hex value per text
// line, e.g. "0xDEADBEEF") and runs each through codec into a
// CompressionDescriptor sample, grounded in the reference's
// readHexValuesIntoBuffer + generateCompressedData pipeline: every line's
// value is packed big-endian into a running byte buffer until it holds
// bdi.LineSize bytes, and codec.Compress runs on that buffer. A file with
// fewer values is rejected; values past the first bdi.LineSize bytes are
// not used. codec is the
// one place a raw 32-byte payload is ever compressed in this simulator, so
// it is also the one place BDI and FPC (or BDI's cheap-path variant) are
// actually selected and compared -- see bdi.Codec.
func LoadSeeds(paths [SeedCount]string, codec bdi.Codec) ([SeedCount]bdi.CompressionDescriptor, error) {
	var samples [SeedCount]bdi.CompressionDescriptor
	for i, path := range paths {
		line, err := readHexSeedFile(path)
		if err != nil {
			return samples, err
		}
		samples[i] = codec.Compress(line)
	}
	return samples, nil
}

func readHexSeedFile(path string) ([bdi.LineSize]byte, error) {
	var line [bdi.LineSize]byte

	f, err := os.Open(path)
	if err != nil {
		return line, newIOError("open seed file", path, err)
	}
	defer f.Close()

	var buf [bdi.LineSize]byte
	written := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		hex := strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
		value, perr := strconv.ParseUint(hex, 16, 32)
		if perr != nil {
			return line, newIOError("parse seed value in", path, perr)
		}
		if written+4 > len(buf) {
			break
		}
		binary.BigEndian.PutUint32(buf[written:written+4], uint32(value))
		written += 4
	}
	if err := scanner.Err(); err != nil {
		return line, newIOError("read seed file", path, err)
	}
	if written != bdi.LineSize {
		return line, newIOError("parse seed file", path, errSeedSize(written))
	}

	copy(line[:], buf[:])
	return line, nil
}
