// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzw

import "io"

// streamHeader is the 4-byte header spec.md §6/§9 recommends adding so a
// compressed file does not depend on parameters supplied out-of-band. The
// fourth byte, "reserved" in spec.md's wording, is used here to carry the
// final code width reached during encoding: F1 framing needs it to know how
// many bytes each code occupies on disk (spec.md §4.5 "every code is written
// using ceil(final_bits/8) bytes"), and F2 framing ignores it (set to 0).
type streamHeader struct {
	initialBits int
	maxBits     int
	framing     Framing
	finalBits   int // meaningful only for FramingFixedWidth
}

func (h streamHeader) bytes() [4]byte {
	return [4]byte{byte(h.initialBits), byte(h.maxBits), byte(h.framing), byte(h.finalBits)}
}

func readStreamHeader(raw [4]byte) (streamHeader, error) {
	h := streamHeader{
		initialBits: int(raw[0]),
		maxBits:     int(raw[1]),
		framing:     Framing(raw[2]),
		finalBits:   int(raw[3]),
	}
	if h.framing != FramingFixedWidth && h.framing != FramingBitPacked {
		return streamHeader{}, ErrUnknownFraming
	}
	if err := validateWidths(h.initialBits, h.maxBits); err != nil {
		return streamHeader{}, err
	}
	return h, nil
}

// WriteStream compresses src and writes a header plus framed codes to w,
// under the given options and framing choice. This is the one place the
// core touches a concrete file format; Encode itself stays header-agnostic.
func WriteStream(w io.Writer, src []byte, opts EncodeOptions, framing Framing) error {
	codes, finalBits, err := Encode(src, opts)
	if err != nil {
		return err
	}

	header := streamHeader{
		initialBits: opts.InitialBits,
		maxBits:     opts.MaxBits,
		framing:     framing,
	}
	if framing == FramingFixedWidth {
		header.finalBits = finalBits
	}
	headerBytes := header.bytes()
	if _, err := w.Write(headerBytes[:]); err != nil {
		return err
	}

	var payload []byte
	switch framing {
	case FramingFixedWidth:
		payload = packFixedWidth(codes, finalBits)
	default:
		payload = packBitPacked(codes, opts.InitialBits, opts.MaxBits)
	}

	_, err = w.Write(payload)
	return err
}

// ReadStream reads a header-framed stream written by WriteStream and returns
// the decompressed bytes.
func ReadStream(r io.Reader) ([]byte, error) {
	var raw [4]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, ErrHeaderTooShort
		}
		return nil, err
	}

	header, err := readStreamHeader(raw)
	if err != nil {
		return nil, err
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var codes []uint32
	switch header.framing {
	case FramingFixedWidth:
		codes, err = unpackFixedWidth(payload, header.finalBits)
	default:
		codes, err = unpackBitPacked(payload, header.initialBits, header.maxBits)
	}
	if err != nil {
		return nil, err
	}

	return Decode(codes, DecodeOptions{InitialBits: header.initialBits, MaxBits: header.maxBits})
}
