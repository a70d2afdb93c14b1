// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter is matched by every *InvalidCharacterError via
// errors.Is.
var ErrInvalidCharacter = errors.New("base64: invalid character")

// InvalidCharacterError is returned by Decode if the input contains a byte
// outside of the Alphabet.
type InvalidCharacterError struct {
	Char   byte // offending byte
	Offset int  // position of Char in the decoded string
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("base64: invalid character %q at offset %d", e.Char, e.Offset)
}

// Is reports whether target is ErrInvalidCharacter.
func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}
