package crypto

const (
	rounds      = 8
	keysPerRnd  = 6
	numSubkeys  = rounds*keysPerRnd + 4 // 52
	keyRotation = 25
)

// Schedule holds the 52 encryption and 52 decryption subkeys derived from one
// master key. It is never modified after NewSchedule returns.
type Schedule struct {
	enc [numSubkeys]uint16
	dec [numSubkeys]uint16
}

// NewSchedule derives the subkeys for k. Each encryption subkey is XORed with
// roundConstant.
//
// Subkeys are consecutive 16-bit windows of the key. After every 8 subkeys
// the window origin moves 25 bits further, which is the same as rotating the
// key left by 25 bits without ever materializing the rotated key.
func NewSchedule(k Key, roundConstant uint16) *Schedule {
	s := &Schedule{}

	currentBit, offset := 0, 0
	for i := 0; i < numSubkeys; i++ {
		s.enc[i] = k.Window((currentBit+offset)%KeyBits) ^ roundConstant
		if i%8 == 7 {
			currentBit = 0
			offset = (offset + keyRotation) % KeyBits
		} else {
			currentBit = (currentBit + 16) % KeyBits
		}
	}

	s.dec = invertKeys(s.enc)
	return s
}

// Encryption returns a copy of the encryption subkeys.
func (s *Schedule) Encryption() [numSubkeys]uint16 { return s.enc }

// Decryption returns a copy of the decryption subkeys.
func (s *Schedule) Decryption() [numSubkeys]uint16 { return s.dec }

// invertKeys lays out decryption subkeys so that running the round network
// with them undoes a run with enc. Decryption round r undoes the key mixing
// of encryption round 8-r (the output transform for r = 0) and reuses the
// MA subkeys of encryption round 7-r unchanged.
func invertKeys(enc [numSubkeys]uint16) [numSubkeys]uint16 {
	var dec [numSubkeys]uint16
	for i := 0; i < rounds*keysPerRnd; i += keysPerRnd {
		dec[i] = mulInverse(enc[48-i])
		dec[i+1] = mulInverse(enc[49-i])
		dec[i+2] = addInverse(enc[50-i])
		dec[i+3] = addInverse(enc[51-i])

		dec[i+4] = enc[46-i]
		dec[i+5] = enc[47-i]
	}

	dec[48] = mulInverse(enc[0])
	dec[49] = mulInverse(enc[1])
	dec[50] = addInverse(enc[2])
	dec[51] = addInverse(enc[3])
	return dec
}
