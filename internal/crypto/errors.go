package crypto

import "errors"

var (
	// ErrMalformedKey is returned for keys that are empty, longer than 128
	// bits, or not hexadecimal.
	ErrMalformedKey = errors.New("crypto: malformed key")

	// ErrMalformedHex is returned for plaintext or ciphertext containing
	// non-hexadecimal characters.
	ErrMalformedHex = errors.New("crypto: malformed hex input")

	// ErrCiphertextLength is returned when a ciphertext is not a whole
	// number of 16-digit blocks.
	ErrCiphertextLength = errors.New("crypto: ciphertext is not a multiple of the block size")

	// ErrPadding means the decrypted padding is inconsistent: the ciphertext
	// is corrupted or the key is wrong.
	ErrPadding = errors.New("crypto: invalid padding")

	// ErrOddNibbles is returned when a decrypted message cannot be turned
	// back into whole bytes.
	ErrOddNibbles = errors.New("crypto: plaintext has an odd number of hex digits")
)
