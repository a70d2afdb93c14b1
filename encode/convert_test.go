package encode

import "testing"

func TestPackGroup24(t *testing.T) {
	if PackGroup24(nil) != 0 {
		t.Error("PackGroup24(nil) != 0")
	}
	if PackGroup24([]byte("Man")) != 0x4d616e {
		t.Error("PackGroup24(\"Man\") != 0x4d616e")
	}
	if PackGroup24([]byte("Ma")) != 0x4d6100 {
		t.Error("PackGroup24(\"Ma\") != 0x4d6100")
	}
	if PackGroup24([]byte{0xff}) != 0xff0000 {
		t.Error("PackGroup24([]byte{0xff}) != 0xff0000")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("PackGroup24(b) with len(b) > 3 is supposed to panic")
		}
	}()
	PackGroup24(make([]byte, 4))
}

func TestUnpackGroup24(t *testing.T) {
	b := UnpackGroup24(0x4d616e)
	if string(b[:]) != "Man" {
		t.Error("UnpackGroup24(0x4d616e) != \"Man\"")
	}
	b = UnpackGroup24(0xff000001)
	if b != [3]byte{0, 0, 1} {
		t.Error("UnpackGroup24() must ignore the upper 8 bits")
	}
}

func TestSextet(t *testing.T) {
	// "Man" -> 19, 22, 5, 46 ("TWFu")
	u := PackGroup24([]byte("Man"))
	want := []byte{19, 22, 5, 46}
	for i, w := range want {
		if s := Sextet(u, i); s != w {
			t.Errorf("Sextet(u, %d) == %d, want %d", i, s, w)
		}
	}
	if Sextet(0xffffff, 3) != 0x3f {
		t.Error("Sextet(0xffffff, 3) != 0x3f")
	}
}
