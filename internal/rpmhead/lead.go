/*******************************************************************************
*
* Copyright 2015-2018 Stefan Majewsky <majewsky@gmx.net>
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

// Package rpmhead reads just enough of an RPM file (lead, signature header,
// main header) to hand a drpm standard-framed delta its three needed facts:
// the target NEVR, the declared payload compressor, and the total on-disk
// size of lead+signature+header. It is adapted from the write-side lead and
// header-of-headers structs in holo-build's vendored rpm package: the wire
// layout is identical whether you are emitting or consuming it.
package rpmhead

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// MagicRPM is the 4-byte magic that opens every RPM lead, used by the drpm
// entry point to dispatch between the standard and rpm-only framings.
const MagicRPM = uint32(0xedabeedb)

// leadSize is the fixed size in bytes of the RPM lead structure.
const leadSize = 4 + 2 + 2 + 2 + 66 + 2 + 2 + 16

// rpmLead mirrors holo-build's rpmLead write struct field-for-field; only
// the fields this reader actually needs are decoded past the magic check.
type rpmLead struct {
	Magic              [4]byte
	Version            [2]byte
	Type               uint16
	Architecture       uint16
	NameVersionRelease [66]byte
	OperatingSystem    uint16
	SignatureType      uint16
	Reserved           [16]byte
}

// readLead reads and validates the fixed-size RPM lead. The caller has
// already consumed the first 4 magic bytes to dispatch into the standard
// header path, so they are re-supplied here via firstWord for validation.
func readLead(r io.Reader, firstWord uint32) error {
	if firstWord != MagicRPM {
		return fmt.Errorf("did not find RPM lead magic (got 0x%08x)", firstWord)
	}
	var lead rpmLead
	binary.BigEndian.PutUint32(lead.Magic[:], firstWord)
	rest := make([]byte, leadSize-4)
	if _, err := io.ReadFull(r, rest); err != nil {
		return fmt.Errorf("short read in RPM lead: %w", err)
	}
	if err := binary.Read(bytes.NewReader(append(lead.Magic[:], rest...)), binary.BigEndian, &lead); err != nil {
		return fmt.Errorf("malformed RPM lead: %w", err)
	}
	return nil
}
