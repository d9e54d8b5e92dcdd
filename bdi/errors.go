// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package bdi

import "errors"

// Sentinel errors for the byte-slice reader and BDI codec.
var (
	// ErrInvalidStep is returned when a requested granule size is not 2, 4, or 8.
	ErrInvalidStep = errors.New("bdi: step must be 2, 4, or 8 bytes")
	// ErrShortBuffer is returned when a buffer's length is not a multiple of step.
	ErrShortBuffer = errors.New("bdi: buffer length is not a multiple of step")
)
