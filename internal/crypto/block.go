package crypto

// BlockSize is the cipher block size in bytes.
const BlockSize = 8

// splitBlock breaks a 64-bit block into four 16-bit subblocks, most
// significant first.
func splitBlock(b uint64) [4]uint16 {
	return [4]uint16{
		uint16(b >> 48),
		uint16(b >> 32),
		uint16(b >> 16),
		uint16(b),
	}
}

func joinBlock(x [4]uint16) uint64 {
	return uint64(x[0])<<48 | uint64(x[1])<<32 | uint64(x[2])<<16 | uint64(x[3])
}

// transform runs 8 rounds and the output transform over b. The same function
// encrypts or decrypts depending on which half of a Schedule is passed in.
func transform(b uint64, K *[numSubkeys]uint16, tr Tracer) uint64 {
	x := splitBlock(b)

	p := 0
	for round := 0; round < rounds; round++ {
		x0 := mulMod(x[0], K[p])
		x1 := mulMod(x[1], K[p+1])
		x2 := addMod(x[2], K[p+2])
		x3 := addMod(x[3], K[p+3])

		t1 := mulMod(x0^x2, K[p+4])
		t2 := addMod(x1^x3, t1)
		t2 = mulMod(t2, K[p+5])
		t1 = addMod(t1, t2)

		x = [4]uint16{x2 ^ t2, x3 ^ t1, x0 ^ t2, x1 ^ t1}

		if tr != nil {
			tr.Round(round, K[p:p+keysPerRnd], x)
		}
		p += keysPerRnd
	}

	// Output transform
	x[0] = mulMod(x[0], K[p])
	x[1] = mulMod(x[1], K[p+1])
	x[2] = addMod(x[2], K[p+2])
	x[3] = addMod(x[3], K[p+3])

	if tr != nil {
		tr.Output(x)
	}
	return joinBlock(x)
}
