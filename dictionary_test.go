package lzw

import "testing"

func TestDictionary_SingletonsImplicitlyPresent(t *testing.T) {
	d := newDictionary()

	// Singletons 0..255 are never stored as explicit entries (they're the
	// base case), so containsExtension from a singleton code for an unseen
	// byte must report absent until inserted.
	if _, ok := d.containsExtension(uint32('A'), 'B'); ok {
		t.Fatal("unexpected extension present before insert")
	}
}

func TestDictionary_InsertThenContainsExtension(t *testing.T) {
	d := newDictionary()

	d.insert(uint32('A'), 'B', 256)

	code, ok := d.containsExtension(uint32('A'), 'B')
	if !ok || code != 256 {
		t.Fatalf("containsExtension after insert = (%d, %v), want (256, true)", code, ok)
	}

	if _, ok := d.containsExtension(uint32('A'), 'C'); ok {
		t.Fatal("unrelated extension should not be present")
	}
}

func TestDictionary_PrefixClosure(t *testing.T) {
	// Every dictionary entry of length >= 2 is built as (already-present
	// prefix code) + one byte, so prefix closure holds by construction: we
	// only need to check that building a 3-byte entry required its 2-byte
	// prefix to already resolve to a code.
	d := newDictionary()

	d.insert(uint32('A'), 'B', 256) // "AB" -> 256
	code, ok := d.containsExtension(uint32('A'), 'B')
	if !ok {
		t.Fatal("expected \"AB\" prefix present before inserting \"ABC\"")
	}

	d.insert(code, 'C', 257) // "ABC" -> 257
	if _, ok := d.containsExtension(256, 'C'); !ok {
		t.Fatal("\"ABC\" should extend from \"AB\"'s code")
	}
}

func TestDictionary_ResetClearsEntries(t *testing.T) {
	d := newDictionary()
	d.insert(uint32('X'), 'Y', 256)

	d.reset()

	if _, ok := d.containsExtension(uint32('X'), 'Y'); ok {
		t.Fatal("reset should clear all entries")
	}
}
