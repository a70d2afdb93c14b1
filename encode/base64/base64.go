// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base64 implements the unpadded base64 codec used in Mute.
//
// The standard alphabet (RFC 4648, section 4) is used, but no padding
// character is ever emitted or accepted: a short final group is truncated to
// the characters which carry input bits. A 1 byte remainder therefore
// encodes to 2 characters and a 2 byte remainder to 3 characters.
package base64

import (
	"strings"

	"github.com/mutecomm/b64/encode"
	"github.com/mutecomm/b64/log"
)

// Alphabet is the ordered set of 64 characters which represent the 6-bit
// values 0 to 63.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// invalid marks bytes in decodeMap which are not part of the Alphabet.
const invalid = 0xff

// decodeMap is the inverse of Alphabet.
var decodeMap [256]byte

func init() {
	for i := range decodeMap {
		decodeMap[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeMap[Alphabet[i]] = byte(i)
	}
}

// EncodedLen returns the length of the encoding of n source bytes.
func EncodedLen(n int) int {
	l := n / 3 * 4
	if rest := n % 3; rest != 0 {
		l += rest + 1
	}
	return l
}

// DecodedLen returns the number of bytes represented by n encoded
// characters. A remainder of a single character carries less than 8 bits
// and does not contribute a byte.
func DecodedLen(n int) int {
	l := n / 4 * 3
	if rest := n % 4; rest != 0 {
		l += rest - 1
	}
	return l
}

// Encode returns the unpadded base64 encoding of src.
func Encode(src []byte) string {
	n := EncodedLen(len(src))
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < len(src); i += 3 {
		end := i + 3
		if end > len(src) {
			end = len(src)
		}
		group := encode.PackGroup24(src[i:end])
		for j := 0; j < 4 && b.Len() < n; j++ {
			b.WriteByte(Alphabet[encode.Sextet(group, j)])
		}
	}
	return b.String()
}

// Decode returns the bytes represented by the unpadded base64 string s.
// If s contains a character which is not part of the Alphabet an
// *InvalidCharacterError is returned and no bytes are decoded.
func Decode(s string) ([]byte, error) {
	n := DecodedLen(len(s))
	dst := make([]byte, n)
	out := 0
	for i := 0; i < len(s); i += 4 {
		var group uint32
		for j := i; j < i+4; j++ {
			group <<= 6
			if j < len(s) {
				v := decodeMap[s[j]]
				if v == invalid {
					return nil, log.Error(&InvalidCharacterError{Char: s[j], Offset: j})
				}
				group |= uint32(v)
			}
		}
		for _, c := range encode.UnpackGroup24(group) {
			if out < n {
				dst[out] = c
				out++
			}
		}
	}
	return dst, nil
}
