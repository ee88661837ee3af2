// Package server exposes the cipher over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/crypto"
	"github.com/StephenGiesbrecht/ZombieRabbitIDEA/internal/helpers"
)

// maxBody bounds request bodies.
const maxBody = 1 << 20

// Server serves encrypt and decrypt requests for one key.
type Server struct {
	addr   string
	cipher *crypto.Cipher
	log    *helpers.Logger
}

// Request is the body of encrypt and decrypt calls.
type Request struct {
	Data string `json:"data"`
}

// Response carries either the result or an error message.
type Response struct {
	Data  string `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// ProfileResponse describes the cipher configuration, never the key.
type ProfileResponse struct {
	RoundConstant uint16 `json:"round_constant"`
	IV            string `json:"iv"`
	BlockSize     int    `json:"block_size"`
}

// New creates a new server
func New(addr string, c *crypto.Cipher, log *helpers.Logger) *Server {
	return &Server{addr: addr, cipher: c, log: log}
}

// corsMiddleware adds CORS headers to all responses
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("IDEA-CBC API Server"))
	}).Methods("GET", "OPTIONS")

	router.HandleFunc("/api/profile", s.handleProfile).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/encrypt", s.handleEncrypt).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/decrypt", s.handleDecrypt).Methods("POST", "OPTIONS")

	return corsMiddleware(router)
}

// Start starts the server and blocks until it fails.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info("listening", s.addr)
	return srv.ListenAndServe()
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	p := s.cipher.Profile()
	writeJSON(w, http.StatusOK, ProfileResponse{
		RoundConstant: p.RoundConstant,
		IV:            fmt.Sprintf("%016x", p.IV),
		BlockSize:     s.cipher.BlockSize(),
	})
}

func (s *Server) handleEncrypt(w http.ResponseWriter, r *http.Request) {
	s.handle(w, r, "encrypt", s.cipher.EncryptHex)
}

func (s *Server) handleDecrypt(w http.ResponseWriter, r *http.Request) {
	s.handle(w, r, "decrypt", s.cipher.DecryptHex)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request, op string, fn func(string) (string, error)) {
	var req Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		s.log.Warn("bad request body", op, err)
		writeJSON(w, http.StatusBadRequest, Response{Error: "invalid request body"})
		return
	}

	out, err := fn(req.Data)
	if err != nil {
		status := statusFor(err)
		s.log.Warn(op+" failed", status, err)
		writeJSON(w, status, Response{Error: err.Error()})
		return
	}

	s.log.Debug(op, len(req.Data), len(out))
	writeJSON(w, http.StatusOK, Response{Data: out})
}

func statusFor(err error) int {
	if errors.Is(err, crypto.ErrPadding) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
