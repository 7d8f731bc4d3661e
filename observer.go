// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzw

// Observer is an optional set of callbacks invoked on the hot path of
// Encode/Decode. It replaces the statistics arrays the original
// implementation accumulated internally on every step (spec.md §9): callers
// that want counts, ratios or timings attach an Observer instead of the core
// holding unbounded slices of its own. Nil fields are simply not called.
type Observer struct {
	// OnEmit is called each time a code is emitted (encoder) or consumed (decoder).
	OnEmit func(code uint32)
	// OnInsert is called each time a new dictionary entry is successfully
	// assigned a code. Not called when the dictionary is frozen.
	OnInsert func(code uint32)
	// OnWidthChange is called when current_bits grows, with the new width.
	OnWidthChange func(newBits int)
}

func (o *Observer) emit(code uint32) {
	if o != nil && o.OnEmit != nil {
		o.OnEmit(code)
	}
}

func (o *Observer) insert(code uint32) {
	if o != nil && o.OnInsert != nil {
		o.OnInsert(code)
	}
}

func (o *Observer) widthChange(bits int) {
	if o != nil && o.OnWidthChange != nil {
		o.OnWidthChange(bits)
	}
}
