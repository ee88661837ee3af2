// Package crypto implements an IDEA-style 64-bit block cipher with a
// 128-bit key, CBC chaining and hex nibble padding.
//
// The round network multiplies the first two subblocks and adds into the
// last two (mul, mul, add, add), which differs from the published IDEA
// layout, so ciphertexts are not interchangeable with other IDEA
// implementations.
package crypto

import (
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"runtime"
)

// DefaultIV seeds the CBC chain of every encrypt and decrypt call.
const DefaultIV uint64 = 0x0123456789ABCDEF

// Profile fixes the tunable parameters of the cipher.
type Profile struct {
	// RoundConstant is XORed into every encryption subkey.
	RoundConstant uint16
	// IV is the first "previous block" of every CBC call.
	IV uint64
}

// DefaultProfile is the profile used unless WithProfile says otherwise.
var DefaultProfile = Profile{
	RoundConstant: 0,
	IV:            DefaultIV,
}

// Cipher encrypts and decrypts with one key. It holds no mutable state and
// is safe for concurrent use.
type Cipher struct {
	key     Key
	profile Profile
	sched   *Schedule
	workers int
	tracer  Tracer
}

// Option configures a Cipher.
type Option func(*Cipher)

// WithProfile replaces DefaultProfile.
func WithProfile(p Profile) Option {
	return func(c *Cipher) { c.profile = p }
}

// WithWorkers sets how many goroutines decrypt blocks in parallel.
// Values below 1 mean runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(c *Cipher) { c.workers = n }
}

// WithTracer installs a round tracer.
func WithTracer(t Tracer) Option {
	return func(c *Cipher) { c.tracer = t }
}

// New parses keyHex and derives its key schedule.
func New(keyHex string, opts ...Option) (*Cipher, error) {
	k, err := ParseKey(keyHex)
	if err != nil {
		return nil, err
	}
	return NewWithKey(k, opts...), nil
}

// NewWithKey derives the key schedule for an already parsed key.
func NewWithKey(k Key, opts ...Option) *Cipher {
	c := &Cipher{
		key:     k,
		profile: DefaultProfile,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.workers < 1 {
		c.workers = runtime.NumCPU()
	}
	if c.tracer != nil {
		c.workers = 1
	}
	c.sched = NewSchedule(k, c.profile.RoundConstant)
	return c
}

// Key returns the master key.
func (c *Cipher) Key() Key { return c.key }

// Profile returns the cipher profile in use.
func (c *Cipher) Profile() Profile { return c.profile }

// Schedule returns the derived subkeys.
func (c *Cipher) Schedule() *Schedule { return c.sched }

// EncryptBlock runs the round network with the encryption subkeys.
func (c *Cipher) EncryptBlock(b uint64) uint64 {
	return transform(b, &c.sched.enc, c.tracer)
}

// DecryptBlock runs the round network with the decryption subkeys.
func (c *Cipher) DecryptBlock(b uint64) uint64 {
	return transform(b, &c.sched.dec, c.tracer)
}

var _ cipher.Block = (*Cipher)(nil)

// BlockSize implements cipher.Block.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt implements cipher.Block on one big-endian 8-byte block.
func (c *Cipher) Encrypt(dst, src []byte) {
	checkBlock(dst, src)
	binary.BigEndian.PutUint64(dst, c.EncryptBlock(binary.BigEndian.Uint64(src)))
}

// Decrypt implements cipher.Block on one big-endian 8-byte block.
func (c *Cipher) Decrypt(dst, src []byte) {
	checkBlock(dst, src)
	binary.BigEndian.PutUint64(dst, c.DecryptBlock(binary.BigEndian.Uint64(src)))
}

func checkBlock(dst, src []byte) {
	if len(src) < BlockSize {
		panic(fmt.Sprintf("crypto: input not full block: %d bytes", len(src)))
	}
	if len(dst) < BlockSize {
		panic(fmt.Sprintf("crypto: output not full block: %d bytes", len(dst)))
	}
}
