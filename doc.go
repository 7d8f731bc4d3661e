// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package lzw implements the core of an LZW (Lempel-Ziv-Welch) codec: a
dictionary-based, lossless compressor and decompressor for arbitrary byte
streams, supporting both fixed and adaptive code widths.

File reading/writing, CLI argument parsing and statistics reporting are not
part of this package; see cmd/lzwtool and Observer for those concerns.

# Encode

	codes, finalBits, err := lzw.Encode(data, lzw.DefaultEncodeOptions())

Adaptive width is just a wider EncodeOptions:

	codes, finalBits, err := lzw.Encode(data, lzw.EncodeOptions{InitialBits: 9, MaxBits: 16})

# Decode

	out, err := lzw.Decode(codes, lzw.DecodeOptions{InitialBits: 9, MaxBits: 16})

# Framing

WriteStream/ReadStream pack codes into a byte stream (fixed-width or
bit-packed) behind a small 4-byte header; see framing.go.
*/
package lzw
