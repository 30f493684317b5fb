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
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// innerBodyOpts configures buildInnerBody's minimal v3 rpm-only payload so
// individual tests can poke single fields out of bounds.
type innerBodyOpts struct {
	sequenceLen  uint32
	truncateSeq  bool
	tgtHeaderLen uint32
	addDataLen   uint32
	intCopies    []IntCopyPair
	extCopies    []ExtCopyPair
	extDataLen   uint64
	intData      []byte
}

func defaultInnerBodyOpts() innerBodyOpts {
	return innerBodyOpts{
		sequenceLen:  16,
		tgtHeaderLen: 0x50,
		addDataLen:   0,
		extDataLen:   0,
	}
}

func be32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func be64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

// buildInnerBody assembles the uncompressed bytes of a v3 body, in wire
// order, per spec §4.5 / §6.
func buildInnerBody(t *testing.T, o innerBodyOpts) []byte {
	t.Helper()
	var buf bytes.Buffer

	be32(&buf, 0x444c5433) // "DLT3"

	be32(&buf, 0) // src_nevr_len

	if o.truncateSeq {
		be32(&buf, o.sequenceLen)
		buf.Write(make([]byte, o.sequenceLen/2)) // short on purpose
		return buf.Bytes()
	}
	be32(&buf, o.sequenceLen)
	buf.Write(make([]byte, o.sequenceLen))

	buf.Write(make([]byte, 16)) // tgt_md5

	be32(&buf, 0x100)      // tgt_size
	be32(&buf, 1<<8|6)     // packed_comp: gzip, level 6
	be32(&buf, 0)          // tgt_comp_param_len

	be32(&buf, o.tgtHeaderLen)
	be32(&buf, 0) // offadj_elems_count

	be32(&buf, rpmLeadSigMinLen)
	buf.Write(bytes.Repeat([]byte{0xaa}, rpmLeadSigMinLen))

	be32(&buf, 0) // payload_fmt_off

	be32(&buf, uint32(len(o.intCopies)))
	for _, p := range o.intCopies {
		be32(&buf, p.A)
	}
	for _, p := range o.intCopies {
		be32(&buf, p.B)
	}

	be32(&buf, uint32(len(o.extCopies)))
	for _, p := range o.extCopies {
		be32(&buf, encodeSignedMagnitude(p.A))
	}
	for _, p := range o.extCopies {
		be32(&buf, p.B)
	}

	be64(&buf, o.extDataLen)

	be32(&buf, o.addDataLen)
	if o.addDataLen > 0 {
		buf.Write(make([]byte, o.addDataLen))
	}

	be64(&buf, uint64(len(o.intData)))
	buf.Write(o.intData)

	return buf.Bytes()
}

// truncateFile shrinks the file at path to exactly n bytes, used to test
// the "file shorter than the first 4 bytes" boundary case.
func truncateFile(path string, n int64) error {
	return os.Truncate(path, n)
}

// buildRPMOnlyFile gzip-compresses the inner body and wraps it in the
// rpm-only outer framing, then writes the result to a temp file and
// returns its path.
func buildRPMOnlyFile(t *testing.T, tgtNEVR string, inner []byte) string {
	t.Helper()

	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	_, err := gz.Write(inner)
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	var buf bytes.Buffer
	be32(&buf, magicRPMOnly)
	be32(&buf, magicDLT3Secondary)
	be32(&buf, uint32(len(tgtNEVR)))
	buf.WriteString(tgtNEVR)
	be32(&buf, 0) // pre-stream add_data_len
	buf.Write(compressed.Bytes())

	f, err := os.CreateTemp(t.TempDir(), "*.drpm")
	require.NoError(t, err)
	_, err = f.Write(buf.Bytes())
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}
