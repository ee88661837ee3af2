package crypto

import (
	"math/rand"
	"testing"
)

const testKey = "10002000300040005000600070008"

func TestScheduleEncryptionKeys(t *testing.T) {
	k, err := ParseKey(testKey)
	if err != nil {
		t.Fatal(err)
	}
	enc := NewSchedule(k, 0).Encryption()

	want := []uint16{
		1, 2, 3, 4, 5, 6, 7, 8,
		1024, 1536, 2048, 2560, 3072, 3584, 4096, 512,
		16, 20, 24, 28, 32, 4, 8, 12,
	}
	for i, w := range want {
		if enc[i] != w {
			t.Errorf("enc[%d] = %d, want %d", i, enc[i], w)
		}
	}
	if enc[47] != 57345 || enc[51] != 320 {
		t.Errorf("enc[47], enc[51] = %d, %d, want 57345, 320", enc[47], enc[51])
	}
}

func TestScheduleDecryptionKeys(t *testing.T) {
	k, _ := ParseKey(testKey)
	dec := NewSchedule(k, 0).Decryption()

	want := map[int]uint16{
		0: 65025, 1: 43350, 2: 65280, 3: 65216, 4: 49152, 5: 57345,
		48: 1, 49: 32769, 50: 65533, 51: 65532,
	}
	for i, w := range want {
		if dec[i] != w {
			t.Errorf("dec[%d] = %d, want %d", i, dec[i], w)
		}
	}
}

func TestScheduleRoundConstant(t *testing.T) {
	k, _ := ParseKey(testKey)
	plain := NewSchedule(k, 0).Encryption()
	mixed := NewSchedule(k, 3502).Encryption()
	for i := range plain {
		if mixed[i] != plain[i]^3502 {
			t.Fatalf("enc[%d] = %d, want %d", i, mixed[i], plain[i]^3502)
		}
	}
}

func TestScheduleDeterministic(t *testing.T) {
	a, _ := ParseKey(testKey)
	b, _ := ParseKey("00010002000300040005000600070008")
	sa, sb := NewSchedule(a, 0), NewSchedule(b, 0)
	if sa.Encryption() != sb.Encryption() || sa.Decryption() != sb.Decryption() {
		t.Error("schedules differ for equal keys")
	}
}

func TestScheduleCopiesAreIndependent(t *testing.T) {
	k, _ := ParseKey(testKey)
	s := NewSchedule(k, 0)
	enc := s.Encryption()
	enc[0] = 999
	if s.Encryption()[0] != 1 {
		t.Error("mutating a copy changed the schedule")
	}
}

func TestScheduleDuality(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 200; n++ {
		var k Key
		rng.Read(k[:])
		s := NewSchedule(k, uint16(rng.Intn(1<<16)))

		blocks := []uint64{0, ^uint64(0), rng.Uint64(), rng.Uint64()}
		for _, b := range blocks {
			ct := transform(b, &s.enc, nil)
			if got := transform(ct, &s.dec, nil); got != b {
				t.Fatalf("key %s: dec(enc(%016x)) = %016x", k, b, got)
			}
		}
	}
}
