package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
)

// EncryptBlocks encrypts already padded blocks in CBC mode, starting the
// chain from the profile IV.
func (c *Cipher) EncryptBlocks(plain []uint64) []uint64 {
	out := make([]uint64, len(plain))
	prev := c.profile.IV
	for i, p := range plain {
		prev = c.EncryptBlock(p ^ prev)
		out[i] = prev
	}
	return out
}

// DecryptBlocks reverses EncryptBlocks. Block transforms do not depend on
// each other, so they are spread over the cipher's workers; the chaining
// XOR runs afterwards in block order.
func (c *Cipher) DecryptBlocks(ct []uint64) []uint64 {
	out := make([]uint64, len(ct))
	c.decryptParallel(ct, out)

	prev := c.profile.IV
	for i := range out {
		out[i] ^= prev
		prev = ct[i]
	}
	return out
}

func (c *Cipher) decryptParallel(ct, out []uint64) {
	workers := c.workers
	if workers > len(ct) {
		workers = len(ct)
	}
	if workers <= 1 {
		for i, b := range ct {
			out[i] = c.DecryptBlock(b)
		}
		return
	}

	idxChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idxChan {
				out[i] = c.DecryptBlock(ct[i])
			}
		}()
	}

	for i := range ct {
		idxChan <- i
	}
	close(idxChan)
	wg.Wait()
}

// EncryptHex pads and encrypts a hex message. The result is lower-case hex
// and always a whole number of 16-digit blocks. Input digits may be of
// either case; they are lower-cased first, so DecryptHex returns the same
// hex value in lower case.
func (c *Cipher) EncryptHex(plain string) (string, error) {
	blocks, err := Pad(strings.ToLower(plain))
	if err != nil {
		return "", err
	}
	return formatBlocks(c.EncryptBlocks(blocks)), nil
}

// DecryptHex decrypts a hex ciphertext produced by EncryptHex and strips
// its padding. Every padding digit must equal the final count digit, so a
// damaged last block usually fails with ErrPadding instead of returning a
// garbled tail; use DecryptBlocks for the raw chained output.
func (c *Cipher) DecryptHex(ct string) (string, error) {
	blocks, err := parseBlocks(ct)
	if err != nil {
		return "", err
	}
	if len(blocks) == 0 {
		return "", fmt.Errorf("%w: empty ciphertext", ErrCiphertextLength)
	}
	return Unpad(formatBlocks(c.DecryptBlocks(blocks)))
}

// EncryptBytes hex-encodes data and encrypts it with EncryptHex.
func (c *Cipher) EncryptBytes(data []byte) (string, error) {
	return c.EncryptHex(hex.EncodeToString(data))
}

// DecryptBytes decrypts a ciphertext whose plaintext is a whole number of
// bytes.
func (c *Cipher) DecryptBytes(ct string) ([]byte, error) {
	plain, err := c.DecryptHex(ct)
	if err != nil {
		return nil, err
	}
	if len(plain)%2 != 0 {
		return nil, fmt.Errorf("%w: %d digits", ErrOddNibbles, len(plain))
	}
	data, err := hex.DecodeString(plain)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return data, nil
}
