// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzw

// dictionary is the append-only prefix index mapping byte strings to codes.
//
// Keys are represented implicitly: every non-singleton string is the
// concatenation of an already-present string (identified by its code) and
// one trailing byte, so a node is addressed by (prefixCode, byte) rather
// than by copying the string itself. This is the byte-level formulation
// spec.md §9 recommends in place of a per-bit trie: contains_extension runs
// in O(1) from the node representing the prefix, not O(|s|).
type dictionary struct {
	// children maps (prefixCode<<8 | byte) -> code, for codes >= 256.
	// Keyed this way instead of a two-level array because MaxBits can be as
	// large as 32, making a dense [code][256]int32 array impractical.
	children map[uint64]uint32
}

// newDictionary returns a dictionary with no stored entries. Codes 0..255
// are the singleton bytes implicitly (code == byte value) and are never
// stored (spec.md §3, Dictionary invariants).
func newDictionary() *dictionary {
	return &dictionary{children: make(map[uint64]uint32, 1024)}
}

// reset clears d back to its just-initialized state, for pooled reuse.
func (d *dictionary) reset() {
	clear(d.children)
}

// childKey packs a (prefixCode, byte) pair into the map key.
func childKey(prefixCode uint32, b byte) uint64 {
	return uint64(prefixCode)<<8 | uint64(b)
}

// containsExtension reports whether the string (prefixCode's string) + b is
// in the dictionary, returning its code if so.
//
// prefixCode must be a code already present in the dictionary (0..255 are
// always present; larger codes are present once inserted). This mirrors
// spec.md §4.1's contains_extension(s, b), with s represented by its code
// rather than its bytes.
func (d *dictionary) containsExtension(prefixCode uint32, b byte) (uint32, bool) {
	code, ok := d.children[childKey(prefixCode, b)]
	return code, ok
}

// insert registers the extension (prefixCode, b) under the given code.
// Preconditions (caller's responsibility, per spec.md §4.1): the extension is
// not already present, and code equals the next unassigned code.
func (d *dictionary) insert(prefixCode uint32, b byte, code uint32) {
	d.children[childKey(prefixCode, b)] = code
}
