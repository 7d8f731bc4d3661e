// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzw

import (
	"errors"
	"fmt"
)

// Sentinel errors for encoding, decoding and framing.
var (
	// ErrInvalidArgument is returned when InitialBits/MaxBits violate 8 <= initial <= max <= 32.
	ErrInvalidArgument = errors.New("invalid argument: bit width out of range")
	// ErrInvalidCode is returned by Decode when a code is neither a known dictionary
	// entry nor the about-to-be-assigned next code (the KwKwK case).
	ErrInvalidCode = errors.New("invalid code")
	// ErrTruncatedStream is returned when a bit-unpacker cannot assemble a full code at EOF.
	ErrTruncatedStream = errors.New("truncated stream")
	// ErrInternalInvariant is returned when an encoder step finds current_match absent
	// from the dictionary; this indicates a bug, not a malformed input.
	ErrInternalInvariant = errors.New("internal invariant violation")
	// ErrUnknownFraming is returned when ReadStream encounters a header with an unrecognized framing byte.
	ErrUnknownFraming = errors.New("unknown framing")
	// ErrHeaderTooShort is returned when ReadStream cannot read a full 4-byte header.
	ErrHeaderTooShort = errors.New("header too short")
)

// InvalidCodeError wraps ErrInvalidCode with the offending code and the code's
// position in the stream, for callers that want more than a sentinel.
type InvalidCodeError struct {
	Code     uint32
	Position int
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid code %d at position %d", e.Code, e.Position)
}

// Unwrap lets errors.Is(err, ErrInvalidCode) succeed.
func (e *InvalidCodeError) Unwrap() error { return ErrInvalidCode }

// TruncatedStreamError wraps ErrTruncatedStream with how many leftover bits
// at the end of the stream could not form a full code.
type TruncatedStreamError struct {
	BitsRemaining int
}

func (e *TruncatedStreamError) Error() string {
	return fmt.Sprintf("truncated stream: %d leftover bits do not form a full code", e.BitsRemaining)
}

// Unwrap lets errors.Is(err, ErrTruncatedStream) succeed.
func (e *TruncatedStreamError) Unwrap() error { return ErrTruncatedStream }
