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

package compress

import (
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// newLZMAReader opens a streaming raw-LZMA decompressor. Unlike xz, raw LZMA
// has no container magic; its properties/dictionary-size header is consumed
// by lzma.NewReader itself from the same leading bytes Detect used for its
// heuristic.
func newLZMAReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := lzma.NewReader(r)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(zr), nil
}
