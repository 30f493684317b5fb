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

package drpm

import (
	"bufio"
	"io"

	"github.com/holocm/go-drpm/internal/compress"
)

// decompStream is the decompression-stream collaborator spec §6 describes:
// construct (auto-detects algorithm from leading bytes), read N bytes, read
// one big-endian u32/u64, destroy. It is the only thing the body parser
// reads from once the outer framing has been consumed.
type decompStream struct {
	algo   compress.Algorithm
	reader io.ReadCloser
}

// newDecompStream constructs a stream over r, which must be positioned at
// the first byte of the compressed region. Algorithm selection happens by
// peeking leading bytes without consuming them from the eventual
// decompressor's input.
func newDecompStream(r io.Reader) (*decompStream, error) {
	br := bufio.NewReaderSize(r, 4096)

	peek, _ := br.Peek(6)
	algo := compress.Detect(peek)
	if algo == compress.Unknown {
		return nil, newError(KindFormat, "decompstrm", "could not detect compression algorithm")
	}

	reader, err := compress.Opener(algo, br)
	if err != nil {
		return nil, newError(KindFormat, "decompstrm", "%s", err.Error())
	}

	return &decompStream{algo: algo, reader: reader}, nil
}

// readFull reads exactly n bytes from the decompressed stream. Any short
// read is a format error, per spec §6's decompstrm_read contract.
func (s *decompStream) readFull(n uint64, op string) ([]byte, error) {
	return readBlob(s.reader, n, op)
}

func (s *decompStream) readBE32(op string) (uint32, error) {
	return readBE32(s.reader, op)
}

func (s *decompStream) readBE64(op string) (uint64, error) {
	return readBE64(s.reader, op)
}

// destroy releases the decompression stream. It is always called exactly
// once, on every exit path out of the body parser.
func (s *decompStream) destroy() {
	if s == nil || s.reader == nil {
		return
	}
	_ = s.reader.Close()
}
