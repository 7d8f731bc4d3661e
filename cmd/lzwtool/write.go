// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"bytes"
	"os"

	"github.com/natefinch/atomic"

	"github.com/woozymasta/lzw"
)

// writeFileAtomic writes data to path without ever leaving a partially
// written file behind on a crash mid-write - a half-written compressed file
// is worse than a missing one, so the CLI never uses a bare os.WriteFile for
// its outputs.
func writeFileAtomic(path string, data []byte) error {
	return atomic.WriteFile(path, bytes.NewReader(data))
}

// writeStreamFile compresses src and writes the 4-byte parameter header plus
// framed codes to path, atomically.
func writeStreamFile(path string, src []byte, opts lzw.EncodeOptions, framing lzw.Framing) error {
	var buf bytes.Buffer
	if err := lzw.WriteStream(&buf, src, opts, framing); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}

// readBack decompresses the header-framed file at path.
func readBack(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return lzw.ReadStream(f)
}
