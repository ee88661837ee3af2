package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/crypto"
)

// Ext is appended to encrypted file names.
const Ext = ".idea"

// Config holds all shared resources for a batch run.
type Config struct {
	Cipher    *crypto.Cipher
	OutputDir string
	Decrypt   bool
	Workers   int
	// Progress is the interval between progress lines; 0 disables them.
	Progress time.Duration
}

// Result holds the outcome of processing one file.
type Result struct {
	Input   string
	Output  string
	Bytes   int
	Success bool
	Error   string
}

// Collect lists the regular files in dir that a run should process:
// every file when encrypting, only *.idea files when decrypting.
func Collect(dir string, decrypt bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if decrypt && !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Run processes all files using a worker pool.
func Run(cfg Config, files []string) []Result {
	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f files/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	fileChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range fileChan {
				results[idx] = processFile(cfg, files[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range files {
		fileChan <- i
	}
	close(fileChan)

	wg.Wait()
	close(done)

	return results
}

func processFile(cfg Config, path string) Result {
	res := Result{Input: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	var out []byte
	name := filepath.Base(path)
	if cfg.Decrypt {
		out, err = cfg.Cipher.DecryptBytes(strings.TrimSpace(string(raw)))
		name = strings.TrimSuffix(name, Ext)
	} else {
		var ct string
		ct, err = cfg.Cipher.EncryptBytes(raw)
		out = []byte(ct + "\n")
		name += Ext
	}
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Output = filepath.Join(cfg.OutputDir, name)
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		res.Error = err.Error()
		return res
	}
	if err := os.WriteFile(res.Output, out, 0644); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Bytes = len(out)
	res.Success = true
	return res
}
