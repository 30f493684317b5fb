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
	"io"
	"os"

	"github.com/holocm/go-drpm/internal/rpmhead"
)

// fileReader is the narrow io.Reader view the rpm-only header parser and
// the body parser need; the standard header parser additionally needs
// Seek and so takes a concrete *os.File.
type fileReader = io.Reader

// magicRPMOnly is the drpm rpm-only framing's outer magic, "drpm" in ASCII.
const magicRPMOnly = uint32(0x6472706d)

// Read implements spec §4.6, the entry point: opens filename, dispatches on
// the leading magic to the appropriate header parser, then always runs the
// body parser. The file descriptor is closed on every exit path; on any
// error the partially populated record is released and zeroed.
func Read(filename string) (*DeltaRecord, error) {
	if filename == "" {
		return nil, newError(KindProg, "read", "filename must not be empty")
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, wrapIO("read: open", err)
	}
	defer f.Close()

	rec := &DeltaRecord{Filename: filename}

	if err := rec.parse(f); err != nil {
		rec.reset()
		return nil, err
	}
	return rec, nil
}

func (rec *DeltaRecord) parse(f *os.File) error {
	magic, err := readBE32(f, "read: leading magic")
	if err != nil {
		return err
	}

	switch magic {
	case magicRPMOnly:
		rec.Type = RPMOnly
		if err := rec.parseRPMOnlyHeader(f); err != nil {
			return err
		}
	case rpmhead.MagicRPM:
		rec.Type = Standard
		if err := rec.parseStandardHeader(f); err != nil {
			return err
		}
	default:
		return newError(KindFormat, "read", "unrecognized leading magic 0x%08x", magic)
	}

	return rec.parseBody(f)
}
