package crypto

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockNibbles is the number of hex digits in one block.
const BlockNibbles = BlockSize * 2

// Pad splits a hex message into 64-bit blocks and appends nibble padding.
//
// A final chunk of L digits (0 < L < 16) is filled up with 16-L digits of
// value 15-L. When the message ends on a block boundary (or is empty), a
// whole block of f digits is appended. The last digit of a padded message
// is therefore always the number of padding digits minus one.
func Pad(msg string) ([]uint64, error) {
	if err := checkHex(msg); err != nil {
		return nil, err
	}

	blocks := make([]uint64, 0, len(msg)/BlockNibbles+1)
	rest := msg
	for {
		var chunk string
		switch {
		case len(rest) == 0:
			chunk = strings.Repeat("f", BlockNibbles)
		case len(rest) < BlockNibbles:
			n := BlockNibbles - len(rest)
			chunk = rest + strings.Repeat(strconv.FormatUint(uint64(n-1), 16), n)
		default:
			chunk = rest[:BlockNibbles]
		}

		v, err := strconv.ParseUint(chunk, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
		}
		blocks = append(blocks, v)

		if len(rest) < BlockNibbles {
			return blocks, nil
		}
		rest = rest[BlockNibbles:]
	}
}

// Unpad strips the padding Pad added. The final digit gives the padding
// length minus one; every padding digit must carry that same value.
func Unpad(msg string) (string, error) {
	if len(msg) == 0 {
		return "", fmt.Errorf("%w: empty message", ErrPadding)
	}

	last := msg[len(msg)-1]
	v, err := strconv.ParseUint(string(last), 16, 8)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	count := int(v) + 1
	if count > len(msg) {
		return "", fmt.Errorf("%w: %d padding digits in a %d-digit message", ErrPadding, count, len(msg))
	}

	for i := len(msg) - count; i < len(msg)-1; i++ {
		if toLower(msg[i]) != toLower(last) {
			return "", fmt.Errorf("%w: digit %d is %q, want %q", ErrPadding, i, msg[i], last)
		}
	}
	return msg[:len(msg)-count], nil
}

// formatBlocks renders blocks as lower-case hex, 16 digits each.
func formatBlocks(blocks []uint64) string {
	var sb strings.Builder
	sb.Grow(len(blocks) * BlockNibbles)
	for _, b := range blocks {
		fmt.Fprintf(&sb, "%016x", b)
	}
	return sb.String()
}

// parseBlocks reads a ciphertext made of whole 16-digit blocks.
func parseBlocks(s string) ([]uint64, error) {
	if len(s)%BlockNibbles != 0 {
		return nil, fmt.Errorf("%w: %d hex digits", ErrCiphertextLength, len(s))
	}
	if err := checkHex(s); err != nil {
		return nil, err
	}

	blocks := make([]uint64, len(s)/BlockNibbles)
	for i := range blocks {
		v, err := strconv.ParseUint(s[i*BlockNibbles:(i+1)*BlockNibbles], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
		}
		blocks[i] = v
	}
	return blocks, nil
}

func checkHex(s string) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return fmt.Errorf("%w: invalid character %q at %d", ErrMalformedHex, c, i)
		}
	}
	return nil
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'F' {
		return c + 'a' - 'A'
	}
	return c
}
