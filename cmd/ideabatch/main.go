package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/batch"
	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/config"
	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/crypto"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	key := flag.String("key", "", "Key, up to 32 hex digits")
	decrypt := flag.Bool("d", false, "Decrypt *"+batch.Ext+" files instead of encrypting")
	inputDir := flag.String("input", "", "Directory of files to process")
	outputDir := flag.String("output", "", "Output directory (default: out)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "Process only first N files for testing")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Key:           *key,
		RoundConstant: -1,
		Workers:       *workers,
		InputDir:      *inputDir,
		OutputDir:     *outputDir,
	})

	if cfg.InputDir == "" {
		fmt.Fprintln(os.Stderr, "Error: no input directory. Use -input flag or config.json.")
		os.Exit(1)
	}

	// Batch parallelism is per file, so each file decrypts on one goroutine.
	c, err := cfg.NewCipher(crypto.WithWorkers(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	files, err := batch.Collect(cfg.InputDir, *decrypt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing input: %v\n", err)
		os.Exit(1)
	}

	// Limit for testing
	if *testN > 0 && *testN < len(files) {
		files = files[:*testN]
	}

	if len(files) == 0 {
		fmt.Println("No files to process.")
		os.Exit(0)
	}

	op := "Encrypt"
	if *decrypt {
		op = "Decrypt"
	}
	fmt.Printf("IDEA-CBC batch %s\n", op)
	fmt.Printf("Files: %d, Workers: %d\n", len(files), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		Cipher:    c,
		OutputDir: cfg.OutputDir,
		Decrypt:   *decrypt,
		Workers:   cfg.Workers,
		Progress:  2 * time.Second,
	}, files)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Processed: %d/%d\n", success, len(files))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", filepath.Base(e.Input), e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
