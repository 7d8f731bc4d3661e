// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzw

// bitUnpacker is the reverse of bitPacker: an MSB-first bit reader over a
// byte slice, filling its accumulator one byte at a time as bits are
// consumed. Grounded on other_examples' pdfcpu lzw decoder.readMSB.
type bitUnpacker struct {
	data  []byte
	pos   int
	acc   uint64
	nbits uint
}

// readCode reads the next width-bit code. ok is false at a clean end of
// stream (no bits, or only zero padding bits remain - spec.md §6 "no
// explicit end-of-stream sentinel"). err is ErrTruncatedStream when bits
// remain that cannot form a full code and are not simply trailing zero
// padding.
func (u *bitUnpacker) readCode(width int) (code uint32, ok bool, err error) {
	for u.nbits < uint(width) && u.pos < len(u.data) {
		u.acc = (u.acc << 8) | uint64(u.data[u.pos])
		u.pos++
		u.nbits += 8
	}

	if u.nbits == 0 {
		return 0, false, nil
	}

	if u.nbits < uint(width) {
		leftover := u.acc & ((1 << u.nbits) - 1)
		if leftover == 0 {
			return 0, false, nil
		}
		return 0, false, &TruncatedStreamError{BitsRemaining: int(u.nbits)}
	}

	shift := u.nbits - uint(width)
	code = uint32((u.acc >> shift) & ((1 << uint(width)) - 1))
	u.nbits = shift

	return code, true, nil
}

// unpackBitPacked reads an entire F2 stream into a code slice, replaying the
// same codeWidthPolicy schedule the packer used.
func unpackBitPacked(data []byte, initialBits, maxBits int) ([]uint32, error) {
	policy := newCodeWidthPolicy(initialBits, maxBits)
	unpacker := &bitUnpacker{data: data}

	var codes []uint32
	for {
		code, ok, err := unpacker.readCode(policy.currentBitsValue())
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		codes = append(codes, code)
		policy.reserveNext()
	}

	return codes, nil
}

// unpackFixedWidth reads an entire F1 stream (fixed byteWidth-byte codes).
func unpackFixedWidth(data []byte, bitWidth int) ([]uint32, error) {
	byteWidth := (bitWidth + 7) / 8
	if byteWidth == 0 {
		return nil, nil
	}

	if len(data)%byteWidth != 0 {
		return nil, &TruncatedStreamError{BitsRemaining: (len(data) % byteWidth) * 8}
	}

	codes := make([]uint32, 0, len(data)/byteWidth)
	for i := 0; i < len(data); i += byteWidth {
		var code uint32
		for j := 0; j < byteWidth; j++ {
			code = code<<8 | uint32(data[i+j])
		}
		codes = append(codes, code)
	}

	return codes, nil
}
