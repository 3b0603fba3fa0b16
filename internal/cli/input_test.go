package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

// fakeReporter echoes what it was asked for.
type fakeReporter struct {
	calls []string
}

func (f *fakeReporter) Report(label, target string) string {
	f.calls = append(f.calls, label+"|"+target)
	return fmt.Sprintf("%s\n\n\n%s\n", label, target)
}

func TestInputHandler(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"Brian\t206-890-9233",
		"",
		"555 0100",
		"hello",
		"\t123",
		"12345678901",
	}, "\n"))
	var out bytes.Buffer
	rep := &fakeReporter{}

	h := NewInputHandlerWithIO(rep, 10, in, &out)
	require.NoError(t, h.Start())

	assert.Equal(t, []string{
		"Brian|2068909233",
		"555 0100|5550100",
	}, rep.calls)
	assert.Equal(t, "Brian\n\n2068909233\n555 0100\n\n5550100\n", out.String())
	assert.Equal(t, 2, h.requests)
}

func TestInputHandler_LabelWithoutDigits(t *testing.T) {
	var out bytes.Buffer
	rep := &fakeReporter{}
	h := NewInputHandlerWithIO(rep, 32, strings.NewReader("Office\text. only"), &out)
	require.NoError(t, h.Start())

	assert.Empty(t, rep.calls)
	assert.Empty(t, out.String())
}
