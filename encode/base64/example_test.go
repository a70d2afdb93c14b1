package base64_test

import (
	"fmt"

	"github.com/mutecomm/b64/encode/base64"
)

func ExampleEncode() {
	fmt.Println(base64.Encode([]byte("Ma")))
	// Output: TWE
}

func ExampleDecode() {
	dec, err := base64.Decode("bGlnaHQgd29yay4")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(dec))
	_, err = base64.Decode("TW!u")
	fmt.Println(err)
	// Output:
	// light work.
	// base64: invalid character '!' at offset 2
}
