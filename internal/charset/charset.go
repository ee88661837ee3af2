// Package charset converts text between UTF-8 and the legacy single-byte
// encodings accepted for plaintext input.
package charset

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// UTF8 is the default; it leaves bytes untouched.
const UTF8 = "utf-8"

var charmaps = map[string]*charmap.Charmap{
	"windows-1252": charmap.Windows1252,
	"windows-1251": charmap.Windows1251,
	"iso-8859-1":   charmap.ISO8859_1,
	"koi8-r":       charmap.KOI8R,
	"cp866":        charmap.CodePage866,
}

// Names lists the supported charset names.
func Names() []string {
	names := []string{UTF8}
	for n := range charmaps {
		names = append(names, n)
	}
	sort.Strings(names[1:])
	return names
}

// Encode converts UTF-8 text to bytes in the named charset. Characters the
// charset cannot represent are an error.
func Encode(text, name string) ([]byte, error) {
	cm, err := lookup(name)
	if err != nil {
		return nil, err
	}
	if cm == nil {
		return []byte(text), nil
	}
	b, err := cm.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("charset: encode %s: %w", name, err)
	}
	return b, nil
}

// Decode converts bytes in the named charset back to UTF-8 text.
func Decode(b []byte, name string) (string, error) {
	cm, err := lookup(name)
	if err != nil {
		return "", err
	}
	if cm == nil {
		return string(b), nil
	}
	out, err := cm.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("charset: decode %s: %w", name, err)
	}
	return string(out), nil
}

func lookup(name string) (*charmap.Charmap, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" || n == UTF8 || n == "utf8" {
		return nil, nil
	}
	cm, ok := charmaps[n]
	if !ok {
		return nil, fmt.Errorf("charset: unknown charset %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
	return cm, nil
}
