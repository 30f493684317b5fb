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

// magicDLT3Secondary is the rpm-only framing's secondary magic "DLT3",
// required immediately after the outer "drpm" magic.
const magicDLT3Secondary = uint32(0x444c5433)

// parseRPMOnlyHeader implements spec §4.3. Preconditions: the file cursor
// sits just after the first magic word ("drpm").
func (rec *DeltaRecord) parseRPMOnlyHeader(f fileReader) error {
	secondary, err := readBE32(f, "header(rpmonly): secondary magic")
	if err != nil {
		return err
	}
	if secondary != magicDLT3Secondary {
		return newError(KindFormat, "header(rpmonly)", "expected secondary magic DLT3, got 0x%08x", secondary)
	}

	nevrLen, err := readBE32(f, "header(rpmonly): tgt_nevr_len")
	if err != nil {
		return err
	}
	nevr, err := readCString(f, nevrLen, "header(rpmonly): tgt_nevr")
	if err != nil {
		return err
	}
	rec.rpmOnlyTgt = nevr

	addDataLen, err := readBE32(f, "header(rpmonly): add_data_len")
	if err != nil {
		return err
	}
	addData, err := readBlob(f, uint64(addDataLen), "header(rpmonly): add_data")
	if err != nil {
		return err
	}
	rec.AddData = addData

	return nil
}
