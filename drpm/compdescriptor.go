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
	"fmt"

	"github.com/holocm/go-drpm/internal/compress"
)

// decodeCompressionDescriptor decodes the packed 32-bit compression
// descriptor a v2+ delta's tgt_comp field carries: the high 24 bits select
// the algorithm, the low 8 bits carry the compression level. This bit
// layout is this package's own (spec §4.5 leaves the exact packing to the
// deltarpm_decode_comp collaborator); see DESIGN.md for the reasoning.
func decodeCompressionDescriptor(packed uint32) (compress.Algorithm, int, error) {
	algoID := packed >> 8
	level := int(packed & 0xff)

	algo, ok := packedIDToAlgorithm[algoID]
	if !ok {
		return compress.Unknown, 0, fmt.Errorf("unrecognized algorithm id %d in packed descriptor 0x%08x", algoID, packed)
	}
	return algo, level, nil
}

var packedIDToAlgorithm = map[uint32]compress.Algorithm{
	0: compress.None,
	1: compress.Gzip,
	2: compress.Bzip2,
	3: compress.LZMA,
	4: compress.XZ,
	5: compress.Zstd,
	6: compress.LZ4,
}
