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
	"math"
)

// rpmLeadSigMinLen is RPM_LEADSIG_MIN_LEN from spec §6: the minimum
// plausible size of a target lead+signature blob (96-byte lead plus a
// 16-byte header-of-headers with zero index records and zero data).
const rpmLeadSigMinLen = 96 + 16

// magicDLTPrefix is the high 24 bits ASCII "DLT" that every compressed
// region's version magic must carry; the low byte is the ASCII version
// digit.
const magicDLTPrefix = uint32(0x444c5400)

// parseBody implements spec §4.5, the main algorithm: it reads the entire
// compressed region field-by-field in wire order, then runs the two
// cross-field validation walks spec §3/§8 require.
func (rec *DeltaRecord) parseBody(f fileReader) error {
	stream, err := newDecompStream(f)
	if err != nil {
		return err
	}
	defer stream.destroy()
	rec.Comp = stream.algo

	if err := rec.readVersionMagic(stream); err != nil {
		return err
	}
	if err := rec.readSourceNEVR(stream); err != nil {
		return err
	}
	if err := rec.readSequence(stream); err != nil {
		return err
	}
	if err := rec.readTargetMD5(stream); err != nil {
		return err
	}
	if rec.Version >= 2 {
		if err := rec.readV2Fields(stream); err != nil {
			return err
		}
		if rec.Version == 3 {
			if err := rec.readV3Fields(stream); err != nil {
				return err
			}
		}
	}
	if rec.Type == RPMOnly && rec.TgtHeaderLen == 0 {
		return newError(KindFormat, "body", "rpm-only delta missing tgt_header_len")
	}
	if err := rec.readLeadSig(stream); err != nil {
		return err
	}
	if err := rec.readPayloadFmtOff(stream); err != nil {
		return err
	}
	if err := rec.readCopyTables(stream); err != nil {
		return err
	}
	if err := rec.readDataLens(stream); err != nil {
		return err
	}
	if err := rec.readAddData(stream); err != nil {
		return err
	}
	if err := rec.readIntData(stream); err != nil {
		return err
	}

	if err := validateIntCopies(rec.IntCopies, rec.IntDataLen); err != nil {
		return err
	}
	if err := validateExtCopies(rec.ExtCopies, rec.ExtDataLen); err != nil {
		return err
	}
	return nil
}

func (rec *DeltaRecord) readVersionMagic(s *decompStream) error {
	magic, err := s.readBE32("body: version magic")
	if err != nil {
		return err
	}
	if magic&0xffffff00 != magicDLTPrefix {
		return newError(KindFormat, "body", "bad version magic 0x%08x", magic)
	}
	digit := magic & 0xff
	if digit < '1' || digit > '3' {
		return newError(KindFormat, "body", "unsupported wire version digit %q", rune(digit))
	}
	rec.Version = int(digit - '0')
	if rec.Type == RPMOnly && rec.Version != 3 {
		return newError(KindFormat, "body", "rpm-only delta must be wire version 3, got %d", rec.Version)
	}
	return nil
}

func (rec *DeltaRecord) readSourceNEVR(s *decompStream) error {
	n, err := s.readBE32("body: src_nevr_len")
	if err != nil {
		return err
	}
	buf, err := s.readFull(uint64(n), "body: src_nevr")
	if err != nil {
		return err
	}
	rec.SrcNEVR = string(buf)
	return nil
}

func (rec *DeltaRecord) readSequence(s *decompStream) error {
	n, err := s.readBE32("body: sequence_len")
	if err != nil {
		return err
	}
	if n < 16 {
		return newError(KindFormat, "body", "sequence_len %d is shorter than 16", n)
	}
	if rec.Type == RPMOnly && n != 16 {
		return newError(KindFormat, "body", "rpm-only sequence_len must be exactly 16, got %d", n)
	}
	buf, err := s.readFull(uint64(n), "body: sequence")
	if err != nil {
		return err
	}
	rec.Sequence = buf
	rec.SequenceLen = int(n)
	return nil
}

func (rec *DeltaRecord) readTargetMD5(s *decompStream) error {
	buf, err := s.readFull(16, "body: tgt_md5")
	if err != nil {
		return err
	}
	copy(rec.TgtMD5[:], buf)
	return nil
}

func (rec *DeltaRecord) readV2Fields(s *decompStream) error {
	tgtSize, err := s.readBE32("body: tgt_size")
	if err != nil {
		return err
	}
	rec.TgtSize = tgtSize

	packed, err := s.readBE32("body: packed_comp")
	if err != nil {
		return err
	}
	algo, level, err := decodeCompressionDescriptor(packed)
	if err != nil {
		return newError(KindFormat, "body", "unrecognized compression descriptor 0x%08x", packed)
	}
	rec.TgtComp = algo
	rec.TgtCompLevel = level

	paramLen, err := s.readBE32("body: tgt_comp_param_len")
	if err != nil {
		return err
	}
	param, err := s.readFull(uint64(paramLen), "body: tgt_comp_param")
	if err != nil {
		return err
	}
	rec.TgtCompParam = param
	return nil
}

func (rec *DeltaRecord) readV3Fields(s *decompStream) error {
	tgtHeaderLen, err := s.readBE32("body: tgt_header_len")
	if err != nil {
		return err
	}
	rec.TgtHeaderLen = tgtHeaderLen

	count, err := s.readBE32("body: offadj_elems_count")
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	counts := make([]uint32, count)
	for i := range counts {
		v, err := s.readBE32("body: offadj_elems (count column)")
		if err != nil {
			return err
		}
		counts[i] = v
	}
	deltas := make([]int32, count)
	for i := range deltas {
		v, err := s.readBE32("body: offadj_elems (delta column)")
		if err != nil {
			return err
		}
		deltas[i] = decodeSignedMagnitude(v)
	}

	rec.OffAdjElems = make([]OffAdjElem, count)
	for i := range rec.OffAdjElems {
		rec.OffAdjElems[i] = OffAdjElem{Count: int32(counts[i]), Delta: deltas[i]}
	}
	return nil
}

func (rec *DeltaRecord) readLeadSig(s *decompStream) error {
	n, err := s.readBE32("body: tgt_leadsig_len")
	if err != nil {
		return err
	}
	if n < rpmLeadSigMinLen {
		return newError(KindFormat, "body", "tgt_leadsig_len %d below minimum %d", n, rpmLeadSigMinLen)
	}
	buf, err := s.readFull(uint64(n), "body: tgt_leadsig")
	if err != nil {
		return err
	}
	rec.TgtLeadSig = buf
	return nil
}

func (rec *DeltaRecord) readPayloadFmtOff(s *decompStream) error {
	v, err := s.readBE32("body: payload_fmt_off")
	if err != nil {
		return err
	}
	rec.PayloadFmtOff = v
	return nil
}

func (rec *DeltaRecord) readCopyTables(s *decompStream) error {
	intCount, err := s.readBE32("body: int_copies_count")
	if err != nil {
		return err
	}
	if intCount > 0 {
		firsts, err := readUint32Column(s, intCount, "body: int_copies (count column)")
		if err != nil {
			return err
		}
		seconds, err := readUint32Column(s, intCount, "body: int_copies (offset column)")
		if err != nil {
			return err
		}
		rec.IntCopies = make([]IntCopyPair, intCount)
		for i := range rec.IntCopies {
			rec.IntCopies[i] = IntCopyPair{A: firsts[i], B: seconds[i]}
		}
	}

	extCount, err := s.readBE32("body: ext_copies_count")
	if err != nil {
		return err
	}
	if extCount > 0 {
		firsts, err := readUint32Column(s, extCount, "body: ext_copies (count column)")
		if err != nil {
			return err
		}
		seconds, err := readUint32Column(s, extCount, "body: ext_copies (offset column)")
		if err != nil {
			return err
		}
		rec.ExtCopies = make([]ExtCopyPair, extCount)
		for i := range rec.ExtCopies {
			rec.ExtCopies[i] = ExtCopyPair{A: decodeSignedMagnitude(firsts[i]), B: seconds[i]}
		}
	}
	return nil
}

func readUint32Column(s *decompStream, count uint32, op string) ([]uint32, error) {
	col := make([]uint32, count)
	for i := range col {
		v, err := s.readBE32(op)
		if err != nil {
			return nil, err
		}
		col[i] = v
	}
	return col, nil
}

func (rec *DeltaRecord) readDataLens(s *decompStream) error {
	if rec.Version == 3 {
		v, err := s.readBE64("body: ext_data_len")
		if err != nil {
			return err
		}
		rec.ExtDataLen = v
	} else {
		v, err := s.readBE32("body: ext_data_len")
		if err != nil {
			return err
		}
		rec.ExtDataLen = uint64(v)
	}
	return nil
}

func (rec *DeltaRecord) readAddData(s *decompStream) error {
	n, err := s.readBE32("body: add_data_len")
	if err != nil {
		return err
	}
	if rec.Type == RPMOnly && n != 0 {
		return newError(KindFormat, "body", "rpm-only delta must not carry in-stream additional data, got %d bytes", n)
	}
	if n == 0 {
		return nil
	}
	buf, err := s.readFull(uint64(n), "body: add_data")
	if err != nil {
		return err
	}
	rec.AddData = buf
	return nil
}

func (rec *DeltaRecord) readIntData(s *decompStream) error {
	var n uint64
	var err error
	if rec.Version == 3 {
		n, err = s.readBE64("body: int_data_len")
	} else {
		var v uint32
		v, err = s.readBE32("body: int_data_len")
		n = uint64(v)
	}
	if err != nil {
		return err
	}
	if n > math.MaxInt {
		return newError(KindOverflow, "body", "int_data_len %d exceeds addressable object size", n)
	}
	rec.IntDataLen = n
	buf, err := s.readFull(n, "body: int_data")
	if err != nil {
		return err
	}
	rec.IntData = buf
	return nil
}

// validateIntCopies walks the internal-copy table as spec §3/§8 describe:
// the cumulative sum of second members must never exceed int_data_len.
func validateIntCopies(pairs []IntCopyPair, intDataLen uint64) error {
	var off uint64
	for i, p := range pairs {
		off += uint64(p.B)
		if off > intDataLen {
			return newError(KindFormat, "body: int_copies", "entry %d overruns int_data_len (%d > %d)", i, off, intDataLen)
		}
	}
	return nil
}

// validateExtCopies walks the external-copy table as spec §3/§8 describe:
// after each complete pair step, the running signed sum must lie in the
// half-open-below, closed-above interval (0, ext_data_len].
func validateExtCopies(pairs []ExtCopyPair, extDataLen uint64) error {
	var off int64
	limit := int64(extDataLen)
	for i, p := range pairs {
		off += int64(p.A)
		if off > limit {
			return newError(KindFormat, "body: ext_copies", "entry %d signed step overruns ext_data_len (%d > %d)", i, off, limit)
		}
		off += int64(p.B)
		if off <= 0 {
			return newError(KindFormat, "body: ext_copies", "entry %d running sum is non-positive (%d)", i, off)
		}
		if off > limit {
			return newError(KindFormat, "body: ext_copies", "entry %d overruns ext_data_len (%d > %d)", i, off, limit)
		}
	}
	return nil
}
