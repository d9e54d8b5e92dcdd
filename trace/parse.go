// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package trace

import (
	"strconv"
	"strings"
)

// ParseLine parses one trace record in the fixed "%c 0x%lx" format: a
// single operation character ('l' or 's'), a space, and a 0x-prefixed hex
// address. Returns a TraceError of KindParse on any malformed line.
func ParseLine(s string) (op byte, addr uint32, err error) {
	s = strings.TrimRight(s, "\r\n")
	fields := strings.Fields(s)
	if len(fields) != 2 || len(fields[0]) != 1 {
		return 0, 0, newParseError(s, errMalformed)
	}

	op = fields[0][0]
	if op != 'l' && op != 's' {
		return 0, 0, newParseError(s, errMalformed)
	}

	hex := strings.TrimPrefix(fields[1], "0x")
	if hex == fields[1] {
		return 0, 0, newParseError(s, errMalformed)
	}
	value, perr := strconv.ParseUint(hex, 16, 32)
	if perr != nil {
		return 0, 0, newParseError(s, perr)
	}
	return op, uint32(value), nil
}
