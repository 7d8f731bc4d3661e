// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzw

// Framing selects how a sequence of codes is packed into a byte stream.
type Framing uint8

const (
	// FramingFixedWidth (F1) writes every code using ceil(finalBits/8) bytes,
	// big-endian, zero-padded. Byte-aligned, simple, wastes bits.
	FramingFixedWidth Framing = 0
	// FramingBitPacked (F2) writes each code using exactly the current width in
	// bits at the moment of its emission, concatenated MSB-first into the
	// bitstream. This is the classical LZW framing.
	FramingBitPacked Framing = 1
)

// EncodeOptions configures Encode.
// InitialBits is the starting code width; MaxBits is the ceiling the
// dictionary may grow to. Fixed-width mode is InitialBits == MaxBits.
type EncodeOptions struct {
	// InitialBits is the code width at the start of the stream (8 <= InitialBits <= MaxBits).
	InitialBits int
	// MaxBits is the widest the dictionary is allowed to grow to (MaxBits <= 32, practical ceiling 24).
	MaxBits int
	// Observer, if non-nil, receives emit/insert/width-change events. Optional.
	Observer *Observer
}

// DefaultEncodeOptions returns fixed-width options at the conventional 12-bit width.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{InitialBits: 12, MaxBits: 12}
}

// DecodeOptions configures Decode. It must match the EncodeOptions used to
// produce the code stream; the core has no way to detect a mismatch other
// than by failing with ErrInvalidCode or garbled output.
type DecodeOptions struct {
	// InitialBits is the code width at the start of the stream.
	InitialBits int
	// MaxBits is the widest the dictionary is allowed to grow to.
	MaxBits int
	// Observer, if non-nil, receives emit/insert/width-change events. Optional.
	Observer *Observer
}

// DefaultDecodeOptions returns fixed-width options at the conventional 12-bit width.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{InitialBits: 12, MaxBits: 12}
}

// validateWidths checks 8 <= initialBits <= maxBits <= 32, per spec.
func validateWidths(initialBits, maxBits int) error {
	if initialBits < 8 || initialBits > maxBits || maxBits > 32 {
		return ErrInvalidArgument
	}
	return nil
}
