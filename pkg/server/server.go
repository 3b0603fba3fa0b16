package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mnembus/mnembus/internal/logger"
	"github.com/mnembus/mnembus/internal/utils"
	"github.com/mnembus/mnembus/pkg/mnemonic"
	"github.com/vmihailenco/msgpack/v5"
)

const codeBadRequest = 400

// Searcher is what the server needs from the engine.
type Searcher interface {
	Search(label, target string) *mnemonic.Result
}

// Server handles msgpack IPC for mnemonic lookups.
type Server struct {
	searcher  Searcher
	maxDigits int
	dec       *msgpack.Decoder
	enc       *msgpack.Encoder
	out       *bufio.Writer
	log       *log.Logger
	requests  int
}

// NewServer creates a server using stdin/stdout for IPC.
func NewServer(searcher Searcher, maxDigits int) *Server {
	return NewServerWithIO(searcher, maxDigits, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over the given streams.
func NewServerWithIO(searcher Searcher, maxDigits int, r io.Reader, w io.Writer) *Server {
	out := bufio.NewWriter(w)
	return &Server{
		searcher:  searcher,
		maxDigits: maxDigits,
		dec:       msgpack.NewDecoder(bufio.NewReader(r)),
		enc:       msgpack.NewEncoder(out),
		out:       out,
		// stdout carries the protocol, so logs go to stderr
		log: logger.NewWithWriter(os.Stderr, "server"),
	}
}

// Start sends the ready signal and serves requests until the input ends.
func (s *Server) Start() error {
	s.log.Debug("Starting server")
	if err := s.send(StatusMessage{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req LookupRequest
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debugf("Input closed after %d requests", s.requests)
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			// the stream cannot be resynchronised after a bad message
			_ = s.sendError("", "invalid msgpack request", codeBadRequest)
			return fmt.Errorf("decode request: %w", err)
		}
		s.requests++
		if err := s.handleLookup(req); err != nil {
			return err
		}
	}
}

// handleLookup validates one request, runs the search and writes the answer.
func (s *Server) handleLookup(req LookupRequest) error {
	digits := utils.DigitsOnly(req.Number)
	switch {
	case digits == "":
		s.log.Debug("Request without digits", "id", req.ID)
		return s.sendError(req.ID, "number has no digits", codeBadRequest)
	case len(digits) > s.maxDigits:
		s.log.Debug("Request too long", "id", req.ID, "digits", len(digits))
		return s.sendError(req.ID,
			fmt.Sprintf("number exceeds maximum of %d digits", s.maxDigits), codeBadRequest)
	}

	label := req.Label
	if label == "" {
		label = req.Number
	}

	start := time.Now()
	res := s.searcher.Search(label, digits)
	elapsed := time.Since(start)

	return s.send(buildResponse(req.ID, res, elapsed))
}

func buildResponse(id string, res *mnemonic.Result, elapsed time.Duration) LookupResponse {
	phrases := make([]PhraseResult, len(res.Phrases))
	for i, p := range res.Phrases {
		pr := PhraseResult{
			Segments: make([]string, len(p.Segments)),
			Words:    make([][]string, len(p.Segments)),
			Tail:     words(p.Tail),
		}
		for j, seg := range p.Segments {
			pr.Segments[j] = seg.Digits
			pr.Words[j] = words(seg.Words)
		}
		phrases[i] = pr
	}
	return LookupResponse{
		ID:        id,
		Digits:    res.Digits,
		WordCount: res.WordCount,
		Phrases:   phrases,
		Count:     len(phrases),
		TimeTaken: elapsed.Microseconds(),
	}
}

func words(entries []mnemonic.Entry) []string {
	if len(entries) == 0 {
		return nil
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Word
	}
	return out
}

// send encodes one message and flushes it so the client sees it immediately.
func (s *Server) send(v any) error {
	if err := s.enc.Encode(v); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encode response: %w", err)
	}
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(LookupError{ID: id, Error: message, Code: code})
}
