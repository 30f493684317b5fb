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

package main

import (
	"fmt"
	"strings"

	"github.com/holocm/go-drpm/drpm"
)

// indent is a general-purpose helper for pretty-printing nested data,
// ported verbatim from dump-package/impl/core.go's Indent: indent every
// line except a trailing blank one, and keep a single trailing newline.
func indent(dump string) string {
	dump = strings.TrimSuffix(dump, "\n")
	const pad = "    "
	dump = pad + strings.Replace(dump, "\n", "\n"+pad, -1)
	return dump + "\n"
}

// renderText produces the same kind of indented-section dump
// dump-package/impl/rpm.go builds for RPM headers, specialized to a single
// drpm Info value.
func renderText(info *drpm.Info) string {
	var b strings.Builder
	fmt.Fprintf(&b, "DeltaRPM package\n")
	b.WriteString(indent(fmt.Sprintf("type: %s\n", info.Type)))
	b.WriteString(indent(fmt.Sprintf("wire version: %d\n", info.Version)))
	b.WriteString(indent(fmt.Sprintf("compression: %s\n", info.Comp)))
	b.WriteString(indent(fmt.Sprintf("source NEVR: %s\n", info.SrcNEVR)))
	b.WriteString(indent(fmt.Sprintf("target NEVR: %s\n", info.TgtNEVR)))
	b.WriteString(indent(fmt.Sprintf("target MD5: %s\n", info.TgtMD5Hex)))
	b.WriteString(indent(fmt.Sprintf("target size: %d\n", info.TgtSize)))
	b.WriteString(indent(fmt.Sprintf("target compression: %s (level %d)\n", info.TgtComp, info.TgtCompLevel)))
	b.WriteString(indent(fmt.Sprintf("target header length: %d\n", info.TgtHeaderLen)))
	b.WriteString(indent(fmt.Sprintf("offset-adjustment words: %d\n", info.OffAdjWords)))
	b.WriteString(indent(fmt.Sprintf("internal-copy words: %d\n", info.IntCopiesWords)))
	b.WriteString(indent(fmt.Sprintf("external-copy words: %d\n", info.ExtCopiesWords)))
	b.WriteString(indent(fmt.Sprintf("external data length: %d\n", info.ExtDataLen)))
	b.WriteString(indent(fmt.Sprintf("internal data length: %d\n", info.IntDataLen)))
	return b.String()
}
