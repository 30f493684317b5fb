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
	"os"

	"github.com/holocm/go-drpm/internal/compress"
	"github.com/holocm/go-drpm/internal/rpmhead"
)

// parseStandardHeader implements spec §4.4: delegates lead/signature/header
// parsing to the RPM collaborator, records the declared payload compressor
// as the v1 fallback, and positions the cursor at the RPM's reported full
// size so the body parser's decompression stream starts in the right place.
func (rec *DeltaRecord) parseStandardHeader(f *os.File) error {
	hdr, err := rpmhead.Read(f, rpmhead.MagicRPM)
	if err != nil {
		return newError(KindFormat, "header(standard): rpm", "%s", err.Error())
	}
	rec.rpmHandle = hdr
	rec.TgtComp = compressorNameToAlgorithm(hdr.CompressorName())

	if _, err := f.Seek(hdr.FullSize(), 0); err != nil {
		return wrapIO("header(standard): seek past RPM", err)
	}
	return nil
}

// compressorNameToAlgorithm maps the free-form string RPM's
// PAYLOADCOMPRESSOR tag carries to the compress.Algorithm this package
// otherwise only ever learns by magic-byte auto-detection.
func compressorNameToAlgorithm(name string) compress.Algorithm {
	switch name {
	case "gzip":
		return compress.Gzip
	case "bzip2":
		return compress.Bzip2
	case "lzma":
		return compress.LZMA
	case "xz":
		return compress.XZ
	case "zstd":
		return compress.Zstd
	case "lz4":
		return compress.LZ4
	case "none":
		return compress.None
	default:
		return compress.Unknown
	}
}
