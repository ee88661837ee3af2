package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/crypto"
)

func TestLoadAndResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"key": "10002000300040005000600070008", "round_constant": 3502, "workers": 3, "charset": "koi8-r"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Resolve(Flags{RoundConstant: -1, Workers: 5})

	if cfg.Workers != 5 {
		t.Errorf("Workers = %d, want flag value 5", cfg.Workers)
	}
	if cfg.RoundConstant != 3502 {
		t.Errorf("RoundConstant = %d, want 3502", cfg.RoundConstant)
	}
	if cfg.Charset != "koi8-r" {
		t.Errorf("Charset = %q", cfg.Charset)
	}
	if cfg.ListenAddr != ":8080" || cfg.MaxImage != 512 || cfg.OutputDir != "out" {
		t.Errorf("defaults not applied: %+v", cfg)
	}

	p, err := cfg.Profile()
	if err != nil {
		t.Fatal(err)
	}
	if p.RoundConstant != 3502 || p.IV != crypto.DefaultIV {
		t.Errorf("Profile = %+v", p)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestProfileErrors(t *testing.T) {
	tests := []Config{
		{RoundConstant: 70000},
		{IV: "0123"},
		{IV: "0123456789abcdeg"},
	}
	for _, cfg := range tests {
		if _, err := cfg.Profile(); err == nil {
			t.Errorf("Profile(%+v) succeeded, want error", cfg)
		}
	}
}

func TestNewCipher(t *testing.T) {
	cfg := Config{}
	cfg.Resolve(Flags{RoundConstant: -1})
	if _, err := cfg.NewCipher(); err == nil {
		t.Error("expected error without key")
	}

	cfg.Key = "10002000300040005000600070008"
	c, err := cfg.NewCipher()
	if err != nil {
		t.Fatal(err)
	}
	ct, err := c.EncryptHex("0000000100020003")
	if err != nil {
		t.Fatal(err)
	}
	if ct != "afa59bd967311345f5f33e5d3aad8921" {
		t.Errorf("EncryptHex = %s", ct)
	}
}
