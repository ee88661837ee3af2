// cmd/ideaimage: show what block chaining does to an image.
//
// Usage:
//
//	go run ./cmd/ideaimage -key 10002000300040005000600070008 -in logo.png -out out/logo
//
// Writes <out>_plain.webp (the scaled input), <out>_block.webp (every block
// encrypted on its own) and <out>_cbc.webp (CBC-chained). Flat regions stay
// recognizable in the _block image and turn into noise in the _cbc image.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/config"
	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/imaging"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	key := flag.String("key", "", "Key, up to 32 hex digits")
	in := flag.String("in", "", "Input image (png, jpeg, tga, bmp)")
	out := flag.String("out", "", "Output path prefix (default: out/<input name>)")
	maxSize := flag.Int("max", 0, "Scale the image so no side exceeds this (default: 512)")

	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Error: -in is required")
		os.Exit(2)
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Key: *key, RoundConstant: -1, MaxImage: *maxSize})

	c, err := cfg.NewCipher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	img, err := imaging.Load(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	img = imaging.Fit(img, cfg.MaxImage)

	prefix := *out
	if prefix == "" {
		name := filepath.Base(*in)
		prefix = filepath.Join(cfg.OutputDir, strings.TrimSuffix(name, filepath.Ext(name)))
	}

	iv := c.Profile().IV
	outputs := []struct {
		suffix string
		img    image.Image
	}{
		{"_plain.webp", img},
		{"_block.webp", imaging.EncryptPixels(img, c, false, iv)},
		{"_cbc.webp", imaging.EncryptPixels(img, c, true, iv)},
	}
	for _, o := range outputs {
		path := prefix + o.suffix
		if err := imaging.Save(path, o.img); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
	}
}
