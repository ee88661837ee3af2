package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// KeyBits is the master key length.
const KeyBits = 128

// Key is a 128-bit master key, most significant byte first.
type Key [KeyBits / 8]byte

// ParseKey reads a key of 1 to 32 hex digits. Shorter keys are zero-extended
// on the left; leading zero bits are never dropped.
func ParseKey(s string) (Key, error) {
	var k Key
	if len(s) == 0 || len(s) > KeyBits/4 {
		return k, fmt.Errorf("%w: want 1 to %d hex digits, got %d", ErrMalformedKey, KeyBits/4, len(s))
	}

	padded := strings.Repeat("0", KeyBits/4-len(s)) + s
	if _, err := hex.Decode(k[:], []byte(padded)); err != nil {
		return Key{}, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}
	return k, nil
}

// Bit returns bit i of the key, counting from the most significant bit.
// Indices wrap around at 128.
func (k Key) Bit(i int) uint16 {
	i = ((i % KeyBits) + KeyBits) % KeyBits
	return uint16(k[i/8]>>(7-i%8)) & 1
}

// Window returns the 16 bits starting at bit start, wrapping past the end of
// the key back to bit 0.
func (k Key) Window(start int) uint16 {
	var v uint16
	for i := 0; i < 16; i++ {
		v = v<<1 | k.Bit(start+i)
	}
	return v
}

// String returns the key as 32 lower-case hex digits.
func (k Key) String() string {
	return fmt.Sprintf("%x", k[:])
}
