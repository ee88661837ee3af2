// cmd/idea: encrypt or decrypt one message with the IDEA-CBC cipher.
//
// Usage:
//
//	go run ./cmd/idea -e -key 10002000300040005000600070008 -in 0000000100020003
//	go run ./cmd/idea -e -key ... -text "Привет" -charset koi8-r
//	go run ./cmd/idea -d -key ... -in afa59bd967311345f5f33e5d3aad8921
//	go run ./cmd/idea -d -key ... -in ... -text        (print plaintext as text)
//
// Without -in the message is read from stdin. Without -key (and no key in
// -config) the key is prompted for on the terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/charset"
	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/config"
	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/crypto"
)

func main() {
	encrypt := flag.Bool("e", false, "Encrypt")
	decrypt := flag.Bool("d", false, "Decrypt")
	configFile := flag.String("config", "", "Path to config.json file")
	key := flag.String("key", "", "Key, up to 32 hex digits")
	roundConst := flag.Int("round-constant", -1, "Round-key XOR constant (default: from config, else 0)")
	in := flag.String("in", "", "Message (hex, or text with -text); default: stdin")
	text := flag.Bool("text", false, "Treat plaintext as text instead of hex")
	cs := flag.String("charset", "", "Text charset: "+strings.Join(charset.Names(), ", "))
	traceFile := flag.String("trace", "", "Write a per-round dump to this file")

	flag.Parse()

	if *encrypt == *decrypt {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -e or -d is required")
		flag.Usage()
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

	cfg.Resolve(config.Flags{
		Key:           *key,
		RoundConstant: *roundConst,
		Charset:       *cs,
	})

	if cfg.Key == "" {
		k, err := promptKey()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Key = k
	}

	var opts []crypto.Option
	var tracer *crypto.WriterTracer
	var traceOut *os.File
	if *traceFile != "" {
		var err error
		traceOut, err = os.Create(*traceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating trace file: %v\n", err)
			os.Exit(1)
		}
		tracer = crypto.NewWriterTracer(traceOut)
		opts = append(opts, crypto.WithTracer(tracer))
	}

	c, err := cfg.NewCipher(opts...)
	if err != nil {
		closeTrace(traceOut)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	msg := *in
	if msg == "" {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			closeTrace(traceOut)
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		msg = strings.TrimRight(string(data), "\r\n")
	}
	if !(*text && *encrypt) {
		msg = strings.TrimSpace(msg)
	}

	var out string
	if *encrypt {
		out, err = runEncrypt(c, msg, *text, cfg.Charset)
	} else {
		out, err = runDecrypt(c, msg, *text, cfg.Charset)
	}

	if tracer != nil {
		if ferr := tracer.Flush(); ferr != nil {
			fmt.Fprintf(os.Stderr, "Warning: trace write failed: %v\n", ferr)
		}
		closeTrace(traceOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func runEncrypt(c *crypto.Cipher, msg string, text bool, cs string) (string, error) {
	if !text {
		return c.EncryptHex(msg)
	}
	data, err := charset.Encode(msg, cs)
	if err != nil {
		return "", err
	}
	return c.EncryptBytes(data)
}

func runDecrypt(c *crypto.Cipher, msg string, text bool, cs string) (string, error) {
	if !text {
		return c.DecryptHex(msg)
	}
	data, err := c.DecryptBytes(msg)
	if err != nil {
		return "", err
	}
	return charset.Decode(data, cs)
}

func closeTrace(f *os.File) {
	if f == nil {
		return
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: trace close failed: %v\n", err)
	}
}

// promptKey reads the key from the terminal without echoing it.
func promptKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no key given: use -key, a config file, or run on a terminal")
	}
	fmt.Fprint(os.Stderr, "Key (hex): ")
	k, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read key: %w", err)
	}
	return strings.TrimSpace(string(k)), nil
}
