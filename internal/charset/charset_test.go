package charset

import (
	"bytes"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name, charset, text string
		want                []byte
	}{
		{"utf-8 passthrough", "utf-8", "héllo", []byte("héllo")},
		{"default", "", "abc", []byte("abc")},
		{"windows-1252", "windows-1252", "café", []byte{'c', 'a', 'f', 0xE9}},
		{"windows-1251", "Windows-1251", "Да", []byte{0xC4, 0xE0}},
		{"koi8-r", "koi8-r", "Да", []byte{0xE4, 0xC1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.text, tt.charset)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode = %x, want %x", got, tt.want)
			}
			back, err := Decode(got, tt.charset)
			if err != nil {
				t.Fatal(err)
			}
			if back != tt.text {
				t.Errorf("Decode = %q, want %q", back, tt.text)
			}
		})
	}
}

func TestUnknownCharset(t *testing.T) {
	if _, err := Encode("x", "ebcdic"); err == nil {
		t.Error("expected error for unknown charset")
	}
	if _, err := Decode([]byte("x"), "ebcdic"); err == nil {
		t.Error("expected error for unknown charset")
	}
}

func TestUnrepresentable(t *testing.T) {
	if _, err := Encode("日本", "iso-8859-1"); err == nil {
		t.Error("expected error for characters outside the charset")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if names[0] != UTF8 {
		t.Errorf("Names()[0] = %s, want %s", names[0], UTF8)
	}
	if len(names) != 6 {
		t.Errorf("got %d names, want 6", len(names))
	}
}
