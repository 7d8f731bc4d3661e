// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzw

// bitPacker accumulates codes of varying bit width into a big-endian,
// MSB-first bitstream (framing F2, spec.md §4.5). The accumulator style -
// shift in new bits, drain whole bytes - mirrors the MSB bit reader in
// other_examples' pdfcpu lzw decoder (readMSB), run in the write direction.
type bitPacker struct {
	buf   []byte
	acc   uint64
	nbits uint
}

// writeCode appends value using exactly width bits.
func (p *bitPacker) writeCode(value uint32, width int) {
	p.acc = (p.acc << uint(width)) | (uint64(value) & ((1 << uint(width)) - 1))
	p.nbits += uint(width)

	for p.nbits >= 8 {
		p.nbits -= 8
		p.buf = append(p.buf, byte(p.acc>>p.nbits))
	}
}

// finish flushes any partial trailing byte, zero-padded in the low bits, and
// returns the packed stream.
func (p *bitPacker) finish() []byte {
	if p.nbits > 0 {
		p.buf = append(p.buf, byte(p.acc<<(8-p.nbits)))
		p.nbits = 0
	}
	return p.buf
}

// packBitPacked packs codes at the variable width schedule the encoder used:
// code 0 at initialBits, then the width after replaying one reserveNext() per
// prior code, exactly mirroring Encode's emit-then-insert stepping (the
// dictionary contents themselves don't affect width, only the count of
// reservation attempts, so replaying the policy alone is sufficient).
func packBitPacked(codes []uint32, initialBits, maxBits int) []byte {
	if len(codes) == 0 {
		return nil
	}

	policy := newCodeWidthPolicy(initialBits, maxBits)
	packer := &bitPacker{}

	for _, code := range codes {
		packer.writeCode(code, policy.currentBitsValue())
		policy.reserveNext()
	}

	return packer.finish()
}

// packFixedWidth packs codes under F1: every code as ceil(bitWidth/8) bytes,
// big-endian, zero-padded, regardless of the per-code width schedule.
func packFixedWidth(codes []uint32, bitWidth int) []byte {
	byteWidth := (bitWidth + 7) / 8
	out := make([]byte, 0, len(codes)*byteWidth)

	for _, code := range codes {
		for i := byteWidth - 1; i >= 0; i-- {
			out = append(out, byte(code>>uint(8*i)))
		}
	}

	return out
}
