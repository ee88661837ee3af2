package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/crypto"
	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/helpers"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	c, err := crypto.New("10002000300040005000600070008")
	if err != nil {
		t.Fatal(err)
	}
	s := New(":0", c, helpers.NewLoggerTo(io.Discard, "test"))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) (int, Response) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var r Response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, r
}

func TestEncryptDecrypt(t *testing.T) {
	ts := newTestServer(t)

	code, r := post(t, ts.URL+"/api/encrypt", `{"data": "0000000100020003"}`)
	if code != http.StatusOK {
		t.Fatalf("encrypt status %d: %s", code, r.Error)
	}
	if r.Data != "afa59bd967311345f5f33e5d3aad8921" {
		t.Errorf("encrypt = %s", r.Data)
	}

	body, _ := json.Marshal(Request{Data: r.Data})
	code, r = post(t, ts.URL+"/api/decrypt", string(body))
	if code != http.StatusOK {
		t.Fatalf("decrypt status %d: %s", code, r.Error)
	}
	if r.Data != "0000000100020003" {
		t.Errorf("decrypt = %s", r.Data)
	}
}

func TestErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name, path, body string
		want             int
	}{
		{"bad json", "/api/encrypt", "{", http.StatusBadRequest},
		{"non hex plaintext", "/api/encrypt", `{"data": "xyz"}`, http.StatusBadRequest},
		{"short ciphertext", "/api/decrypt", `{"data": "abcd"}`, http.StatusBadRequest},
		{"bad padding", "/api/decrypt", `{"data": "0000000000000000"}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, r := post(t, ts.URL+tt.path, tt.body)
			if code != tt.want {
				t.Errorf("status = %d, want %d", code, tt.want)
			}
			if r.Error == "" {
				t.Error("missing error message")
			}
		})
	}
}

func TestProfileAndRoutes(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/profile")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var p ProfileResponse
	json.NewDecoder(resp.Body).Decode(&p)
	if p.IV != "0123456789abcdef" || p.BlockSize != 8 || p.RoundConstant != 0 {
		t.Errorf("profile = %+v", p)
	}

	resp, err = http.Get(ts.URL + "/api/encrypt")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET /api/encrypt status = %d, want 405", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/api/encrypt", bytes.NewReader(nil))
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS header on preflight")
	}
}
