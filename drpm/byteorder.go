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
	"encoding/binary"
	"io"
)

// readBE32 reads exactly 4 bytes from r and interprets them as a big-endian
// uint32. A short read (including a clean EOF before any byte was read) is
// reported as KindFormat; any other read error is reported as KindIO.
func readBE32(r io.Reader, op string) (uint32, error) {
	var buf [4]byte
	if err := readFull(r, buf[:], op); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// readBE64 reads exactly 8 bytes from r and interprets them as a big-endian
// uint64. Failure semantics match readBE32.
func readBE64(r io.Reader, op string) (uint64, error) {
	var buf [8]byte
	if err := readFull(r, buf[:], op); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// readFull reads exactly len(buf) bytes, translating io.ReadFull's error
// vocabulary into this package's Kind taxonomy.
func readFull(r io.Reader, buf []byte, op string) error {
	n, err := io.ReadFull(r, buf)
	if err == nil {
		return nil
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return newError(KindFormat, op, "short read: got %d of %d bytes", n, len(buf))
	}
	return wrapIO(op, err)
}

// readBlob reads exactly n bytes into a freshly allocated slice. n == 0
// returns an empty, non-nil slice so downstream NUL-termination/hex-encoding
// logic never has to special-case a nil buffer.
func readBlob(r io.Reader, n uint64, op string) ([]byte, error) {
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if err := readFull(r, buf, op); err != nil {
		return nil, err
	}
	return buf, nil
}

// readCString reads exactly length bytes and returns them as a string, for
// the wire's length-prefixed NEVR fields.
func readCString(r io.Reader, length uint32, op string) (string, error) {
	buf, err := readBlob(r, uint64(length), op)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
