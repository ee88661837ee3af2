package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/crypto"
)

func TestTextRoundTrip(t *testing.T) {
	c, err := crypto.New("10002000300040005000600070008")
	if err != nil {
		t.Fatal(err)
	}
	ct, err := runEncrypt(c, "Привет", true, "koi8-r")
	if err != nil {
		t.Fatal(err)
	}
	got, err := runDecrypt(c, ct, true, "koi8-r")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Привет" {
		t.Errorf("round trip = %q", got)
	}
}

func TestCloseTraceClosesFile(t *testing.T) {
	closeTrace(nil)

	f, err := os.Create(filepath.Join(t.TempDir(), "trace.txt"))
	if err != nil {
		t.Fatal(err)
	}
	closeTrace(f)
	if _, err := f.Write([]byte("x")); err == nil {
		t.Error("trace file still open after closeTrace")
	}
}
