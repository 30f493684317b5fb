/*******************************************************************************
*
* Copyright 2015 Stefan Majewsky <majewsky@gmx.net>
*
* This file is part of Holo.
*
* Holo is free software: you can redistribute it and/or modify it under the
* terms of the GNU General Public License as published by the Free Software
* Foundation, either version 3 of the License, or (at your option) any later
* version.
*
* Holo is distributed in the hope that it will be useful, but WITHOUT ANY
* WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR
* A PARTICULAR PURPOSE. See the GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License along with
* Holo. If not, see <http://www.gnu.org/licenses/>.
*
*******************************************************************************/

// Package compress auto-detects the compression algorithm wrapping a drpm
// payload from its leading bytes and opens a streaming decompressing reader
// over it. It mirrors the Compressor/Decompressor split used elsewhere in
// this corpus, generalized from whole-buffer compression to a reader that
// sits on top of a file positioned mid-stream.
package compress

import (
	"bufio"
	"fmt"
	"io"
)

// Algorithm identifies a compression algorithm detected from a drpm
// payload's leading bytes, or embedded in a v2+ packed compression
// descriptor.
type Algorithm int

const (
	// Unknown is returned by Detect when no known magic matches.
	Unknown Algorithm = iota
	None
	Gzip
	Bzip2
	LZMA
	XZ
	Zstd
	LZ4
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Bzip2:
		return "bzip2"
	case LZMA:
		return "lzma"
	case XZ:
		return "xz"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// magic byte prefixes for every algorithm this package can auto-detect.
// LZMA has no fixed magic on the wire (it is a raw stream); it is the
// fallback when nothing else matches but the properties byte looks sane,
// exactly as upstream drpm does it.
var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte{'B', 'Z', 'h'}
	xzMagic    = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	zstdMagic  = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic   = []byte{0x04, 0x22, 0x4d, 0x18}
)

// maxMagicLen is the number of leading bytes Detect needs to have peeked.
const maxMagicLen = 6

// Detect inspects up to maxMagicLen leading bytes and reports the
// compression algorithm they indicate. It never consumes bytes from peek;
// callers peek via a buffered reader and only commit to the chosen codec
// afterwards.
func Detect(peek []byte) Algorithm {
	switch {
	case hasPrefix(peek, gzipMagic):
		return Gzip
	case hasPrefix(peek, bzip2Magic):
		return Bzip2
	case hasPrefix(peek, xzMagic):
		return XZ
	case hasPrefix(peek, zstdMagic):
		return Zstd
	case hasPrefix(peek, lz4Magic):
		return LZ4
	case looksLikeLZMA(peek):
		return LZMA
	default:
		return Unknown
	}
}

func hasPrefix(peek, magic []byte) bool {
	if len(peek) < len(magic) {
		return false
	}
	for i, b := range magic {
		if peek[i] != b {
			return false
		}
	}
	return true
}

// looksLikeLZMA applies the same heuristic upstream drpm uses when nothing
// else matched: a raw LZMA stream starts with a single properties byte in
// 0..224 followed by a 4-byte little-endian dictionary size, so we accept it
// as the fallback whenever the properties byte is in range.
func looksLikeLZMA(peek []byte) bool {
	return len(peek) >= 1 && peek[0] <= 224
}

// Opener opens a streaming decompressing reader of the given algorithm over
// r, which is positioned at the first byte of the compressed region (i.e.
// before any magic bytes have been consumed from it).
func Opener(algo Algorithm, r *bufio.Reader) (io.ReadCloser, error) {
	switch algo {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		return newGzipReader(r)
	case Bzip2:
		return newBzip2Reader(r)
	case XZ:
		return newXZReader(r)
	case LZMA:
		return newLZMAReader(r)
	case Zstd:
		return newZstdReader(r)
	case LZ4:
		return newLZ4Reader(r)
	default:
		return nil, fmt.Errorf("unrecognized compression algorithm")
	}
}
