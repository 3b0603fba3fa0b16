// Package cli provides the interactive mode: numbers typed on stdin are
// answered with the same report batch mode prints.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mnembus/mnembus/internal/logger"
	"github.com/mnembus/mnembus/internal/utils"
	"github.com/mnembus/mnembus/pkg/batch"
	"github.com/mnembus/mnembus/pkg/mnemonic"
)

// Reporter renders the mnemonic report for a labelled number.
type Reporter interface {
	Report(label, target string) string
}

// InputHandler reads one request per line. A line is either
// "label<TAB>number" or a bare number, which is then its own label.
type InputHandler struct {
	reporter  Reporter
	maxDigits int
	in        io.Reader
	out       io.Writer
	log       *log.Logger
	requests  int
}

// NewInputHandler handles initialization of the InputHandler on stdin/stdout
func NewInputHandler(reporter Reporter, maxDigits int) *InputHandler {
	return NewInputHandlerWithIO(reporter, maxDigits, os.Stdin, os.Stdout)
}

// NewInputHandlerWithIO is NewInputHandler over the given streams.
func NewInputHandlerWithIO(reporter Reporter, maxDigits int, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		reporter:  reporter,
		maxDigits: maxDigits,
		in:        in,
		out:       out,
		log:       logger.New("cli"),
	}
}

// Start begins the interface loop. It returns nil when the input ends.
func (h *InputHandler) Start() error {
	h.log.Print("mnembus interactive mode")
	h.log.Print("type a number, or a label and a number separated by a tab (Ctrl+D to exit):")

	scanner := bufio.NewScanner(h.in)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := h.handleInput(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	h.log.Debugf("Input closed after %d requests", h.requests)
	return nil
}

// handleInput answers a single line. Only write failures are returned;
// unusable input is logged and skipped.
func (h *InputHandler) handleInput(line string) error {
	var label, number string
	if strings.Contains(line, "\t") {
		entry, err := batch.ParseLine(line)
		if err != nil {
			h.log.Errorf("%v", err)
			return nil
		}
		label, number = entry.Label, entry.Numbers
	} else if line = strings.TrimSpace(line); utils.IsValidTarget(line) {
		label, number = line, line
	} else {
		h.log.Errorf("Not a number: %q", line)
		return nil
	}

	digits := utils.DigitsOnly(number)
	if digits == "" {
		h.log.Errorf("No digits in %q", number)
		return nil
	}
	if len(digits) > h.maxDigits {
		h.log.Errorf("Too many digits: %d > %d", len(digits), h.maxDigits)
		return nil
	}

	h.requests++
	start := time.Now()
	report := h.reporter.Report(label, digits)
	h.log.Debugf("Took [ %v ] for %q", time.Since(start), label)

	_, err := io.WriteString(h.out, utils.CollapseBlankLines(report))
	return err
}

var _ Reporter = (*mnemonic.Searcher)(nil)
