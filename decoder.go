// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzw

// decodeTable is the decoder's reverse mapping: for a code >= 256, the
// string it represents is prefix[code-256]'s string followed by
// suffix[code-256]. Codes < 256 are singleton bytes and need no table entry.
// This indexes directly by code (like pdfcpu's lzw decoder prefix/suffix
// arrays) rather than hashing, since decode always knows the code up front.
type decodeTable struct {
	prefix []uint32
	suffix []byte
	first  []byte // cached first byte of entry code-256, for O(1) KwKwK resolution
}

func newDecodeTable(capacityHint int) *decodeTable {
	return &decodeTable{
		prefix: make([]uint32, 0, capacityHint),
		suffix: make([]byte, 0, capacityHint),
		first:  make([]byte, 0, capacityHint),
	}
}

func (t *decodeTable) reset() {
	t.prefix = t.prefix[:0]
	t.suffix = t.suffix[:0]
	t.first = t.first[:0]
}

// has reports whether code already has a table entry (always true for
// singletons below 256).
func (t *decodeTable) has(code uint32) bool {
	return code < 256 || int(code-256) < len(t.prefix)
}

// firstByteOf returns the first byte of the string represented by code.
// code must satisfy has(code).
func (t *decodeTable) firstByteOf(code uint32) byte {
	if code < 256 {
		return byte(code)
	}
	return t.first[code-256]
}

// append registers a new entry: prefixCode's string followed by b.
func (t *decodeTable) append(prefixCode uint32, b byte) {
	t.prefix = append(t.prefix, prefixCode)
	t.suffix = append(t.suffix, b)
	t.first = append(t.first, t.firstByteOf(prefixCode))
}

// expand appends the byte string for code to dst and returns it. Codes >= 256
// are expanded by walking the prefix chain backwards into scratch and then
// copying forward, the "decode right-to-left, then copy" technique used by
// other_examples' pdfcpu lzw reader, which avoids recursion.
func (t *decodeTable) expand(code uint32, scratch, dst []byte) ([]byte, []byte) {
	if code < 256 {
		return append(dst, byte(code)), scratch
	}

	scratch = scratch[:0]
	for code >= 256 {
		idx := code - 256
		scratch = append(scratch, t.suffix[idx])
		code = t.prefix[idx]
	}
	scratch = append(scratch, byte(code))

	for i := len(scratch) - 1; i >= 0; i-- {
		dst = append(dst, scratch[i])
	}
	return dst, scratch
}

// Decode reconstructs the original byte sequence from codes produced by a
// conforming Encode call with the same options (spec.md §4.4).
//
// The decoder rebuilds the dictionary in lockstep with the encoder: after
// outputting the entry for code c, it inserts previous+entry[0] at the next
// reserved code (mirroring the encoder's emit-then-insert order), then makes
// c the new previous. The KwKwK case — a code equal to the about-to-be-
// assigned next code — is resolved as previous+previous[0]; since that is
// exactly the entry about to be inserted at that same next code, advancing
// previous to the raw code value is correct in both branches.
func Decode(codes []uint32, opts DecodeOptions) ([]byte, error) {
	if err := validateWidths(opts.InitialBits, opts.MaxBits); err != nil {
		return nil, err
	}

	if len(codes) == 0 {
		return nil, nil
	}

	policy := newCodeWidthPolicy(opts.InitialBits, opts.MaxBits)
	obs := opts.Observer

	table := newDecodeTable(1 << uint(min(opts.MaxBits, 20)))
	defer table.reset()

	out := make([]byte, 0, len(codes)*2)
	scratch := make([]byte, 0, 64)

	c0 := codes[0]
	if c0 >= 256 {
		return nil, &InvalidCodeError{Code: c0, Position: 0}
	}
	obs.emit(c0)

	out, scratch = table.expand(c0, scratch, out)
	previous := c0
	previousFirstByte := table.firstByteOf(c0)

	for i := 1; i < len(codes); i++ {
		code := codes[i]
		obs.emit(code)

		var entryFirst byte

		switch {
		case table.has(code):
			entryFirst = table.firstByteOf(code)
			out, scratch = table.expand(code, scratch, out)

		case code == policy.nextCode && !policy.frozen:
			// KwKwK: the encoder assigned this code and used it on the very
			// next emission, so it isn't in the table yet. Its string is
			// previous . previous[0].
			entryFirst = previousFirstByte
			out, scratch = table.expand(previous, scratch, out)
			out = append(out, previousFirstByte)

		default:
			return nil, &InvalidCodeError{Code: code, Position: i}
		}

		widthBefore := policy.currentBitsValue()
		if newCode, ok := policy.reserveNext(); ok {
			table.append(previous, entryFirst)
			obs.insert(newCode)
			if policy.currentBitsValue() != widthBefore {
				obs.widthChange(policy.currentBitsValue())
			}
		}

		previous = code
		previousFirstByte = entryFirst
	}

	return out, nil
}
