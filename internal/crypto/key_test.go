package crypto

import (
	"errors"
	"testing"
)

func TestParseKeyKeepsLeadingZeros(t *testing.T) {
	k, err := ParseKey("10002000300040005000600070008")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := k.String(), "00010002000300040005000600070008"; got != want {
		t.Errorf("key = %s, want %s", got, want)
	}
	for i := 0; i < 15; i++ {
		if k.Bit(i) != 0 {
			t.Fatalf("bit %d = 1, want 0", i)
		}
	}
	if k.Bit(15) != 1 {
		t.Error("bit 15 = 0, want 1")
	}
}

func TestParseKeyErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"000100020003000400050006000700080", // 33 digits
		"00010002000300040005000600070g08",
		"0x10",
	} {
		if _, err := ParseKey(s); !errors.Is(err, ErrMalformedKey) {
			t.Errorf("ParseKey(%q) err = %v, want ErrMalformedKey", s, err)
		}
	}
}

func TestKeyWindowWraps(t *testing.T) {
	k, err := ParseKey("80000000000000000000000000000001")
	if err != nil {
		t.Fatal(err)
	}
	// Bits 120..127 hold 0x01, bits 0..7 hold 0x80.
	if got := k.Window(120); got != 0x0180 {
		t.Errorf("Window(120) = %#04x, want 0x0180", got)
	}
	if got := k.Window(0); got != 0x8000 {
		t.Errorf("Window(0) = %#04x, want 0x8000", got)
	}
	if got := k.Window(127); got != 0xC000 {
		t.Errorf("Window(127) = %#04x, want 0xc000", got)
	}
}
