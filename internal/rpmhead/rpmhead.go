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
	"fmt"
	"io"
)

// Header is the opaque RPM handle spec §6 calls rpm_read's output: enough
// decoded state to answer rpm_get_comp, rpm_size_full, and rpm_get_nevr.
// The payload/archive itself is never read (RPM_ARCHIVE_DONT_READ).
type Header struct {
	nevr        string
	compressor  string
	totalSize   int64
}

// Read parses the RPM lead, signature header, and main header from r
// (starting right after the caller has already consumed the 4-byte lead
// magic to dispatch into the standard-delta path) without reading the
// archive payload that follows, mirroring rpm_read(..., RPM_ARCHIVE_DONT_READ, ...).
func Read(r io.Reader, leadMagic uint32) (*Header, error) {
	if err := readLead(r, leadMagic); err != nil {
		return nil, err
	}

	sig, err := readHeaderSection(r, true) // signature section is 8-byte aligned
	if err != nil {
		return nil, fmt.Errorf("reading RPM signature header: %w", err)
	}
	hdr, err := readHeaderSection(r, false)
	if err != nil {
		return nil, fmt.Errorf("reading RPM main header: %w", err)
	}

	nevr := buildNEVR(hdr.strings)
	compressor := hdr.strings[tagPayloadCompressor]
	if compressor == "" {
		compressor = "gzip" // RPM's documented default when the tag is absent
	}

	return &Header{
		nevr:       nevr,
		compressor: compressor,
		totalSize:  leadSize + sig.size + hdr.size,
	}, nil
}

func buildNEVR(strs map[uint32]string) string {
	name := strs[tagName]
	version := strs[tagVersion]
	release := strs[tagRelease]
	return fmt.Sprintf("%s-%s-%s", name, version, release)
}

// NEVR returns the target package's identifier as "name-version-release".
// The epoch is not included, even when the header carries one.
func (h *Header) NEVR() string {
	return h.nevr
}

// CompressorName returns the payload compressor RPM declared via the
// PAYLOADCOMPRESSOR tag (or RPM's documented "gzip" default if absent).
func (h *Header) CompressorName() string {
	return h.compressor
}

// FullSize returns the total on-disk size of lead+signature+header, i.e.
// the byte offset at which the compressed drpm body begins for a standard
// delta.
func (h *Header) FullSize() int64 {
	return h.totalSize
}
