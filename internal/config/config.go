package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/charset"
	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/crypto"
)

// Config holds the cipher profile and tool settings.
type Config struct {
	// Cipher
	Key           string `json:"key"`
	RoundConstant int    `json:"round_constant"`
	IV            string `json:"iv"`

	// Runtime
	Workers    int    `json:"workers"`
	Charset    string `json:"charset"`
	ListenAddr string `json:"listen_addr"`
	InputDir   string `json:"input_dir"`
	OutputDir  string `json:"output_dir"`
	MaxImage   int    `json:"max_image_size"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Key           string
	RoundConstant int // negative means unset
	Workers       int
	Charset       string
	ListenAddr    string
	InputDir      string
	OutputDir     string
	MaxImage      int
}

// Resolve applies CLI overrides and fills in defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Key != "" {
		c.Key = flags.Key
	}
	if flags.RoundConstant >= 0 {
		c.RoundConstant = flags.RoundConstant
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Charset != "" {
		c.Charset = flags.Charset
	}
	if flags.ListenAddr != "" {
		c.ListenAddr = flags.ListenAddr
	}
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.MaxImage > 0 {
		c.MaxImage = flags.MaxImage
	}

	if c.IV == "" {
		c.IV = fmt.Sprintf("%016x", crypto.DefaultIV)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Charset == "" {
		c.Charset = charset.UTF8
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.OutputDir == "" {
		c.OutputDir = "out"
	}
	if c.MaxImage <= 0 {
		c.MaxImage = 512
	}
}

// Profile converts the cipher settings to a crypto.Profile.
func (c *Config) Profile() (crypto.Profile, error) {
	if c.RoundConstant < 0 || c.RoundConstant > 0xFFFF {
		return crypto.Profile{}, fmt.Errorf("config: round_constant %d out of range 0-65535", c.RoundConstant)
	}
	p := crypto.Profile{RoundConstant: uint16(c.RoundConstant), IV: crypto.DefaultIV}
	if c.IV != "" {
		if len(c.IV) != crypto.BlockNibbles {
			return crypto.Profile{}, fmt.Errorf("config: iv must be %d hex digits, got %q", crypto.BlockNibbles, c.IV)
		}
		iv, err := strconv.ParseUint(c.IV, 16, 64)
		if err != nil {
			return crypto.Profile{}, fmt.Errorf("config: iv %q: %w", c.IV, err)
		}
		p.IV = iv
	}
	return p, nil
}

// NewCipher builds a cipher from the resolved settings.
func (c *Config) NewCipher(opts ...crypto.Option) (*crypto.Cipher, error) {
	if c.Key == "" {
		return nil, fmt.Errorf("config: no key given")
	}
	p, err := c.Profile()
	if err != nil {
		return nil, err
	}
	opts = append([]crypto.Option{crypto.WithProfile(p), crypto.WithWorkers(c.Workers)}, opts...)
	return crypto.New(c.Key, opts...)
}
