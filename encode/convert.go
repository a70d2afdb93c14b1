// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package encode defines the bit packing helpers used by the Mute codecs.
package encode

// PackGroup24 packs up to three bytes of b into the low 24 bits of an
// uint32, most significant byte first. Missing bytes are treated as zero,
// so PackGroup24([]byte{0x4d}) == 0x4d0000.
// If b is longer than 3 bytes the function panics.
func PackGroup24(b []byte) (u uint32) {
	if len(b) > 3 {
		panic("encode: PackGroup24(): len(b) > 3")
	}
	for i := 0; i < 3; i++ {
		u <<= 8
		if i < len(b) {
			u |= uint32(b[i])
		}
	}
	return
}

// UnpackGroup24 converts the low 24 bits of u to three bytes, most
// significant byte first. The upper 8 bits of u are ignored.
func UnpackGroup24(u uint32) [3]byte {
	return [3]byte{
		byte(u >> 16),
		byte(u >> 8),
		byte(u),
	}
}

// Sextet returns the i-th 6-bit value (0 <= i < 4) of the 24-bit group u,
// counted from the most significant end.
func Sextet(u uint32, i int) byte {
	return byte(u>>uint(18-6*i)) & 0x3f
}
