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

// decodeSignedMagnitude decodes the drpm wire format's custom "high bit is
// sign" 32-bit encoding: when the MSB is clear, v is the non-negative value
// itself; when the MSB is set, the magnitude is v&0x7fffffff and the value
// is negative. The result is returned as a native int32 in two's-complement
// form, so that all arithmetic after this point uses ordinary signed
// semantics instead of the wire's sign-magnitude convention.
func decodeSignedMagnitude(v uint32) int32 {
	const signBit = uint32(0x80000000)
	if v&signBit == 0 {
		return int32(v)
	}
	magnitude := v &^ signBit
	return -int32(magnitude)
}

// encodeSignedMagnitude is the inverse of decodeSignedMagnitude, used by
// tests to build wire-format fixtures for negative ext_copies offsets.
func encodeSignedMagnitude(v int32) uint32 {
	const signBit = uint32(0x80000000)
	if v >= 0 {
		return uint32(v)
	}
	return signBit | uint32(-v)
}
