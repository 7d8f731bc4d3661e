// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzw

// Encode compresses src into a sequence of codes using the given options.
// It returns the codes, the final code width in effect when encoding
// finished (needed by F1 framing), and an error.
//
// The algorithm (spec.md §4.3): current_match starts empty; for each input
// byte, try to extend current_match by that byte in the dictionary. If the
// extension exists, keep extending. Otherwise emit the code of current_match,
// try to insert the extension as a new dictionary entry, and restart
// current_match at the singleton of the new byte. At EOF, emit whatever
// current_match holds.
//
// Mirrors compress1xFastCore's (compress_1x_fast.go) shape: hash/extend
// attempt, literal-style emit-and-reset on mismatch, single pass over input.
func Encode(src []byte, opts EncodeOptions) ([]uint32, int, error) {
	if err := validateWidths(opts.InitialBits, opts.MaxBits); err != nil {
		return nil, 0, err
	}

	if len(src) == 0 {
		return nil, opts.InitialBits, nil
	}

	dict := acquireDictionary()
	defer releaseDictionary(dict)

	policy := newCodeWidthPolicy(opts.InitialBits, opts.MaxBits)
	obs := opts.Observer

	codes := make([]uint32, 0, len(src))

	// current_match is represented by its code: 0..255 for a singleton byte,
	// or a dictionary code for a longer match. hasMatch is false only before
	// the very first byte is consumed (spec.md §3 "empty sequence ... valid
	// only as an encoder transient").
	var currentMatch uint32
	hasMatch := false

	for _, b := range src {
		if !hasMatch {
			currentMatch = uint32(b)
			hasMatch = true
			continue
		}

		if extCode, ok := dict.containsExtension(currentMatch, b); ok {
			currentMatch = extCode
			continue
		}

		// Emit before insert: the code emitted here always uses the width in
		// effect BEFORE this step's reservation (spec.md §4.3 width-change note).
		codes = append(codes, currentMatch)
		obs.emit(currentMatch)

		widthBefore := policy.currentBitsValue()
		if code, ok := policy.reserveNext(); ok {
			dict.insert(currentMatch, b, code)
			obs.insert(code)
			if policy.currentBitsValue() != widthBefore {
				obs.widthChange(policy.currentBitsValue())
			}
		}

		currentMatch = uint32(b)
	}

	if !hasMatch {
		// len(src) == 0 was already handled above; this branch is unreachable
		// for non-empty input but guards the invariant explicitly.
		return nil, policy.currentBitsValue(), nil
	}

	codes = append(codes, currentMatch)
	obs.emit(currentMatch)

	return codes, policy.currentBitsValue(), nil
}
