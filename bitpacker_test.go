// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzw

import (
	"errors"
	"testing"
)

func TestBitPacker_WriteCodeAndFinish(t *testing.T) {
	p := &bitPacker{}
	p.writeCode(0x1FF, 9) // 111111111
	p.writeCode(0x000, 9) // 000000000
	out := p.finish()

	// 18 bits packed MSB-first: 111111111 000000000, padded to 24 bits
	// (3 bytes) with trailing zeros.
	want := []byte{0xFF, 0x80, 0x00}
	if !bytesEqual(out, want) {
		t.Fatalf("finish() = %08b, want %08b", out, want)
	}
}

func TestBitUnpacker_ReadCodeRoundTripsWithPacker(t *testing.T) {
	codes := []uint32{0, 1, 255, 256, 511, 4095}
	widths := []int{9, 9, 9, 10, 10, 12}

	p := &bitPacker{}
	for i, c := range codes {
		p.writeCode(c, widths[i])
	}
	data := p.finish()

	u := &bitUnpacker{data: data}
	for i, want := range codes {
		got, ok, err := u.readCode(widths[i])
		if err != nil {
			t.Fatalf("readCode(%d) failed: %v", i, err)
		}
		if !ok {
			t.Fatalf("readCode(%d) reported clean EOF early", i)
		}
		if got != want {
			t.Fatalf("readCode(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestPackBitPacked_RoundTripsWithUnpack(t *testing.T) {
	codes := []uint32{65, 66, 256, 258}

	data := packBitPacked(codes, 9, 12)
	got, err := unpackBitPacked(data, 9, 12)
	if err != nil {
		t.Fatalf("unpackBitPacked failed: %v", err)
	}
	if !uint32SlicesEqual(got, codes) {
		t.Fatalf("unpackBitPacked = %v, want %v", got, codes)
	}
}

func TestPackBitPacked_EmptyCodesProducesEmptyPayload(t *testing.T) {
	if data := packBitPacked(nil, 9, 12); data != nil {
		t.Fatalf("packBitPacked(nil) = %v, want nil", data)
	}
}

func TestPackFixedWidth_RoundTripsWithUnpack(t *testing.T) {
	codes := []uint32{0, 1, 65535, 32768}

	data := packFixedWidth(codes, 16)
	if len(data) != len(codes)*2 {
		t.Fatalf("len(data) = %d, want %d (2 bytes per 16-bit code)", len(data), len(codes)*2)
	}

	got, err := unpackFixedWidth(data, 16)
	if err != nil {
		t.Fatalf("unpackFixedWidth failed: %v", err)
	}
	if !uint32SlicesEqual(got, codes) {
		t.Fatalf("unpackFixedWidth = %v, want %v", got, codes)
	}
}

func TestUnpackFixedWidth_RejectsTruncatedTrailingBytes(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02} // 3 bytes, not a multiple of byteWidth=2
	_, err := unpackFixedWidth(data, 16)

	var truncErr *TruncatedStreamError
	if !errors.As(err, &truncErr) {
		t.Fatalf("err = %v, want *TruncatedStreamError", err)
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
