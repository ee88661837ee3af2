package crypto

// Arithmetic over the two groups used by the round network.
//
// Multiplication is done in the multiplicative group of integers modulo
// 65537 (2^16 + 1, prime). A 16-bit value of 0 stands for 2^16, so every
// value in [0, 65535] has an inverse.

const (
	subblockMod = 0x10000 // additive group size
	mulModulus  = 0x10001 // multiplicative ring size
)

// mulMod returns a*b in the ring mod 65537, reading and writing 2^16 as 0.
func mulMod(a, b uint16) uint16 {
	ai, bi := uint32(a), uint32(b)
	if ai == 0 {
		ai = subblockMod
	}
	if bi == 0 {
		bi = subblockMod
	}
	r := (uint64(ai) * uint64(bi)) % mulModulus
	if r == subblockMod {
		return 0
	}
	return uint16(r)
}

// addMod adds in the 16-bit group; uint16 overflow is the reduction.
func addMod(a, b uint16) uint16 {
	return a + b
}

// mulInverse computes the multiplicative inverse mod 65537 using the
// extended Euclidean algorithm, with the same 0 <-> 2^16 substitution as
// mulMod on both argument and result.
func mulInverse(x uint16) uint16 {
	v := int64(x)
	if v == 0 {
		v = subblockMod
	}

	// Invariant: s0*v ≡ r0 and s1*v ≡ r1 (mod 65537).
	r0, r1 := int64(mulModulus), v
	s0, s1 := int64(0), int64(1)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, s0-q*s1
	}
	// 65537 is prime, so r0 == 1 here.
	inv := s0 % mulModulus
	if inv < 0 {
		inv += mulModulus
	}
	if inv == subblockMod {
		return 0
	}
	return uint16(inv)
}

func addInverse(x uint16) uint16 {
	return uint16(subblockMod-uint32(x)) & 0xFFFF
}
