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
	"encoding/hex"
	"fmt"

	"github.com/holocm/go-drpm/internal/compress"
)

// Info is the caller-visible projection of a DeltaRecord, produced by
// ToInfo. Binary fields that are not meant to be consumed as raw bytes are
// hex-encoded; the internal record remains the sole authoritative source.
type Info struct {
	Type    string `json:"type"`
	Version int    `json:"version"`
	Comp    string `json:"compression"`

	SrcNEVR string `json:"src_nevr"`
	TgtNEVR string `json:"tgt_nevr"`

	SequenceHex string `json:"sequence_hex"`
	TgtMD5Hex   string `json:"tgt_md5_hex"`

	TgtSize         uint32 `json:"tgt_size"`
	TgtComp         string `json:"tgt_compression"`
	TgtCompLevel    int    `json:"tgt_compression_level"`
	TgtCompParamHex string `json:"tgt_compression_param_hex"`
	TgtHeaderLen    uint32 `json:"tgt_header_len"`
	TgtLeadSigHex   string `json:"tgt_leadsig_hex"`

	PayloadFmtOff uint32 `json:"payload_format_offset"`

	OffAdjElems    []OffAdjElem  `json:"offadj_elems,omitempty"`
	IntCopies      []IntCopyPair `json:"int_copies,omitempty"`
	ExtCopies      []ExtCopyPair `json:"ext_copies,omitempty"`
	IntCopiesWords int           `json:"int_copies_words"`
	ExtCopiesWords int           `json:"ext_copies_words"`
	OffAdjWords    int           `json:"offadj_elems_words"`

	ExtDataLen uint64 `json:"ext_data_len"`
	IntDataLen uint64 `json:"int_data_len"`
}

// ToInfo implements spec §4.7: scalar fields copy as-is, the three table
// counts are reported as word counts (2x element count), binary fields
// become lowercase hex strings, and numeric tables are copied verbatim.
func (rec *DeltaRecord) ToInfo() (*Info, error) {
	tgtNEVR, err := rec.targetNEVR()
	if err != nil {
		return nil, err
	}

	info := &Info{
		Type:    rec.Type.String(),
		Version: rec.Version,
		Comp:    algorithmName(rec.Comp),

		SrcNEVR: rec.SrcNEVR,
		TgtNEVR: tgtNEVR,

		SequenceHex: hex.EncodeToString(rec.Sequence),
		TgtMD5Hex:   hex.EncodeToString(rec.TgtMD5[:]),

		TgtSize:         rec.TgtSize,
		TgtComp:         algorithmName(rec.TgtComp),
		TgtCompLevel:    rec.TgtCompLevel,
		TgtCompParamHex: hex.EncodeToString(rec.TgtCompParam),
		TgtHeaderLen:    rec.TgtHeaderLen,
		TgtLeadSigHex:   hex.EncodeToString(rec.TgtLeadSig),

		PayloadFmtOff: rec.PayloadFmtOff,

		OffAdjElems:    copyOffAdjElems(rec.OffAdjElems),
		IntCopies:      copyIntCopies(rec.IntCopies),
		ExtCopies:      copyExtCopies(rec.ExtCopies),
		IntCopiesWords: 2 * len(rec.IntCopies),
		ExtCopiesWords: 2 * len(rec.ExtCopies),
		OffAdjWords:    2 * len(rec.OffAdjElems),

		ExtDataLen: rec.ExtDataLen,
		IntDataLen: rec.IntDataLen,
	}
	return info, nil
}

func (rec *DeltaRecord) targetNEVR() (string, error) {
	switch rec.Type {
	case Standard:
		if rec.rpmHandle == nil {
			return "", newError(KindProg, "projection", "standard delta missing RPM handle")
		}
		return rec.rpmHandle.NEVR(), nil
	case RPMOnly:
		return rec.rpmOnlyTgt, nil
	default:
		return "", newError(KindProg, "projection", "unknown delta type")
	}
}

func algorithmName(a compress.Algorithm) string {
	return a.String()
}

func copyOffAdjElems(in []OffAdjElem) []OffAdjElem {
	if len(in) == 0 {
		return nil
	}
	out := make([]OffAdjElem, len(in))
	copy(out, in)
	return out
}

func copyIntCopies(in []IntCopyPair) []IntCopyPair {
	if len(in) == 0 {
		return nil
	}
	out := make([]IntCopyPair, len(in))
	copy(out, in)
	return out
}

func copyExtCopies(in []ExtCopyPair) []ExtCopyPair {
	if len(in) == 0 {
		return nil
	}
	out := make([]ExtCopyPair, len(in))
	copy(out, in)
	return out
}

// String renders a short human summary, useful for quick interactive
// inspection and for tests asserting on output shape.
func (info *Info) String() string {
	return fmt.Sprintf("%s delta v%d (%s): %s -> %s", info.Type, info.Version, info.Comp, info.SrcNEVR, info.TgtNEVR)
}
