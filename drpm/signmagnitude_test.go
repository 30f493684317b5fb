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

import "testing"

func TestDecodeSignedMagnitude(t *testing.T) {
	cases := []struct {
		name string
		in   uint32
		want int32
	}{
		{"zero", 0x00000000, 0},
		{"positive magnitude", 0x00000005, 5},
		{"max positive magnitude", 0x7fffffff, 0x7fffffff},
		{"negative five", 0x80000005, -5},
		{"negative max magnitude", 0xffffffff, -0x7fffffff},
		{"sign bit only", 0x80000000, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := decodeSignedMagnitude(c.in)
			if got != c.want {
				t.Fatalf("decodeSignedMagnitude(0x%08x) = %d, want %d", c.in, got, c.want)
			}
		})
	}
}

// TestSignedMagnitudeRoundTrip checks encode-then-decode is the identity on
// the representable range, as spec §8 requires for offadj_elems.
func TestSignedMagnitudeRoundTrip(t *testing.T) {
	encode := func(v int32) uint32 {
		if v >= 0 {
			return uint32(v)
		}
		return uint32(-v) | 0x80000000
	}

	for _, v := range []int32{0, 1, -1, 5, -5, 0x7fffffff, -0x7fffffff} {
		wire := encode(v)
		got := decodeSignedMagnitude(wire)
		if got != v {
			t.Fatalf("round-trip failed for %d: wire=0x%08x decoded=%d", v, wire, got)
		}
	}
}
