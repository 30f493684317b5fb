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
	"github.com/holocm/go-drpm/internal/compress"
	"github.com/holocm/go-drpm/internal/rpmhead"
)

// Type distinguishes the two drpm outer framings.
type Type int

const (
	// Standard deltas carry the target RPM's lead/signature/header
	// verbatim before the compressed body.
	Standard Type = iota + 1
	// RPMOnly deltas omit the outer RPM entirely; the target header is
	// embedded inside the compressed body instead.
	RPMOnly
)

func (t Type) String() string {
	switch t {
	case Standard:
		return "standard"
	case RPMOnly:
		return "rpmonly"
	default:
		return "unknown"
	}
}

// IntCopyPair is one (count, offset) entry of the internal-copy instruction
// table; both members are unsigned throughout.
type IntCopyPair struct {
	A uint32
	B uint32
}

// ExtCopyPair is one (count, offset) entry of the external-copy instruction
// table. A carries the sign decoded by decodeSignedMagnitude.
type ExtCopyPair struct {
	A int32
	B uint32
}

// OffAdjElem is one (count, signed delta) offset-adjustment table entry,
// used by the reconstruction engine (out of scope here) to adjust offsets
// in the target CPIO archive.
type OffAdjElem struct {
	Count int32
	Delta int32
}

// DeltaRecord is the fully populated in-memory representation of one drpm
// archive, built incrementally by Read and handed off whole on success.
type DeltaRecord struct {
	Filename string
	Type     Type
	Version  int

	Comp compress.Algorithm

	SrcNEVR string

	Sequence    []byte
	SequenceLen int

	TgtMD5 [16]byte

	TgtSize       uint32
	TgtComp       compress.Algorithm
	TgtCompLevel  int
	TgtCompParam  []byte
	TgtHeaderLen  uint32
	OffAdjElems   []OffAdjElem
	TgtLeadSig    []byte
	PayloadFmtOff uint32

	IntCopies []IntCopyPair
	ExtCopies []ExtCopyPair

	ExtDataLen uint64
	AddData    []byte
	IntDataLen uint64
	IntData    []byte

	// rpmHandle and rpmOnlyTgt together carry the type-discriminated head,
	// selected by Type: for Standard deltas, rpmHandle holds the parsed RPM
	// handle; for RPMOnly deltas, rpmOnlyTgt holds the target NEVR string
	// read from the pre-stream header.
	rpmHandle  *rpmhead.Header
	rpmOnlyTgt string
}

// reset zeroes every owned buffer on the record. Called on any failure path
// after partial population, and tolerates any subset of fields being unset.
func (r *DeltaRecord) reset() {
	*r = DeltaRecord{}
}
