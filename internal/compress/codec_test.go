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

import "testing"

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		peek []byte
		want Algorithm
	}{
		{"gzip", []byte{0x1f, 0x8b, 0x08, 0x00}, Gzip},
		{"bzip2", []byte("BZh91AY&SY"), Bzip2},
		{"xz", []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}, XZ},
		{"zstd", []byte{0x28, 0xb5, 0x2f, 0xfd, 0x00}, Zstd},
		{"lz4", []byte{0x04, 0x22, 0x4d, 0x18}, LZ4},
		{"lzma fallback", []byte{0x5d, 0x00, 0x00, 0x00, 0x01}, LZMA},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Detect(c.peek)
			if got != c.want {
				t.Fatalf("Detect(%x) = %v, want %v", c.peek, got, c.want)
			}
		})
	}
}

func TestDetectEmptyIsUnknown(t *testing.T) {
	if got := Detect(nil); got != Unknown {
		t.Fatalf("Detect(nil) = %v, want Unknown", got)
	}
}
