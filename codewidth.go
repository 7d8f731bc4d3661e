// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzw

// codeWidthPolicy tracks the current code width, the dictionary capacity at
// that width, and the grow/freeze rule (spec.md §3, §4.2). Encoder and
// Decoder each own an independent instance, initialized identically; as long
// as both call reserveNext() at the same logical step for the same strings,
// the two policies stay in lockstep (spec.md §4.4 "Width synchronization").
type codeWidthPolicy struct {
	currentBits int
	maxBits     int
	nextCode    uint32
	frozen      bool
}

// newCodeWidthPolicy initializes the policy at initialBits, next assignable
// code 256, per spec.md §3. With initialBits == 8 the 256 singleton codes
// already fill the capacity, so the grow/freeze rule is applied once here:
// the width starts at 9, or the policy starts frozen when maxBits is 8.
func newCodeWidthPolicy(initialBits, maxBits int) *codeWidthPolicy {
	p := &codeWidthPolicy{
		currentBits: initialBits,
		maxBits:     maxBits,
		nextCode:    256,
	}
	if p.nextCode == p.capacity() {
		if p.currentBits < p.maxBits {
			p.currentBits++
		} else {
			p.frozen = true
		}
	}
	return p
}

// capacity returns 2^currentBits.
func (p *codeWidthPolicy) capacity() uint32 {
	return uint32(1) << uint(p.currentBits)
}

// currentBitsValue exposes current_bits for the bit packer.
func (p *codeWidthPolicy) currentBitsValue() int {
	return p.currentBits
}

// reserveNext returns the next code to assign and advances nextCode, or
// (0, false) if the policy is frozen (spec.md §4.2). After a successful
// reservation it applies the grow rule: if nextCode has now reached the
// capacity of currentBits and currentBits < maxBits, currentBits grows by
// one. This must run immediately after the reservation that filled the
// current width and before the next code is emitted, which is exactly when
// callers invoke reserveNext (see encoder.go, decoder.go).
func (p *codeWidthPolicy) reserveNext() (uint32, bool) {
	if p.frozen {
		return 0, false
	}

	code := p.nextCode
	p.nextCode++

	if p.nextCode == p.capacity() {
		if p.currentBits < p.maxBits {
			p.currentBits++
		} else {
			p.frozen = true
		}
	}

	return code, true
}
