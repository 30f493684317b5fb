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

package rpmhead

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildFakeRPM assembles a minimal, well-formed RPM lead + signature header
// + main header carrying just NAME/VERSION/RELEASE/PAYLOADCOMPRESSOR, for
// exercising Read without a real RPM file.
func buildFakeRPM(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer

	// lead (96 bytes): magic already stripped by caller in real usage, but
	// here we write the full lead including the magic so the test can
	// feed Read the post-magic bytes directly.
	buf.Write([]byte{0xed, 0xab, 0xee, 0xdb}) // magic
	buf.Write([]byte{0x03, 0x00})             // version
	binary.Write(&buf, binary.BigEndian, uint16(0))
	binary.Write(&buf, binary.BigEndian, uint16(0))
	buf.Write(make([]byte, 66)) // name/version/release, unused by this test
	binary.Write(&buf, binary.BigEndian, uint16(1))
	binary.Write(&buf, binary.BigEndian, uint16(5))
	buf.Write(make([]byte, 16)) // reserved

	writeHeaderSection(&buf, nil, true) // empty signature, 8-byte aligned
	writeHeaderSection(&buf, map[uint32]string{
		tagName:             "foo",
		tagVersion:          "1.0",
		tagRelease:          "1",
		tagPayloadCompressor: "bzip2",
	}, false)

	return buf.Bytes()
}

// writeHeaderSection writes a minimal header-of-headers + index + data
// store carrying only string-typed tags, the mirror image of
// readHeaderSection.
func writeHeaderSection(buf *bytes.Buffer, strs map[uint32]string, alignTo8 bool) {
	var data bytes.Buffer
	type rec struct {
		tag, offset, count uint32
	}
	var recs []rec
	for tag, s := range strs {
		recs = append(recs, rec{tag: tag, offset: uint32(data.Len()), count: 1})
		data.WriteString(s)
		data.WriteByte(0)
	}

	hoh := headerOfHeaders{
		Magic:      [3]byte{0x8e, 0xad, 0xe8},
		Version:    1,
		EntryCount: uint32(len(recs)),
		DataSize:   uint32(data.Len()),
	}
	binary.Write(buf, binary.BigEndian, &hoh)
	for _, r := range recs {
		binary.Write(buf, binary.BigEndian, &indexRecord{Tag: r.tag, Type: typeString, Offset: r.offset, Count: r.count})
	}
	buf.Write(data.Bytes())

	if alignTo8 {
		if mod := data.Len() % 8; mod != 0 {
			buf.Write(make([]byte, 8-mod))
		}
	}
}

func TestReadExtractsNEVRAndCompressor(t *testing.T) {
	raw := buildFakeRPM(t)
	magic := binary.BigEndian.Uint32(raw[:4])

	hdr, err := Read(bytes.NewReader(raw[4:]), magic)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if hdr.NEVR() != "foo-1.0-1" {
		t.Fatalf("NEVR() = %q, want %q", hdr.NEVR(), "foo-1.0-1")
	}
	if hdr.CompressorName() != "bzip2" {
		t.Fatalf("CompressorName() = %q, want %q", hdr.CompressorName(), "bzip2")
	}
	if hdr.FullSize() != int64(len(raw)) {
		t.Fatalf("FullSize() = %d, want %d", hdr.FullSize(), len(raw))
	}
}

func TestReadRejectsBadHeaderMagic(t *testing.T) {
	raw := buildFakeRPM(t)
	raw[96] = 0x00 // corrupt the signature header-of-headers magic
	magic := binary.BigEndian.Uint32(raw[:4])

	if _, err := Read(bytes.NewReader(raw[4:]), magic); err == nil {
		t.Fatal("expected error for corrupted header magic, got nil")
	}
}
