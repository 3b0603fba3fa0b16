package server

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mnembus/mnembus/pkg/dictionary"
	"github.com/mnembus/mnembus/pkg/mnemonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func testSearcher(t *testing.T) *mnemonic.Searcher {
	t.Helper()
	catalog := dictionary.NewCatalog()
	for _, w := range []struct {
		word string
		rank int
		key  string
	}{
		{"NIGHT", 500, "21"},
		{"CHEESE", 501, "60"},
		{"NIGHTS", 502, "210"},
		{"KNIGHTLY", 503, "215"},
	} {
		_, err := catalog.Add(dictionary.Word{Word: w.word, Rank: w.rank})
		require.NoError(t, err)
		catalog.SetMnemonic(w.word, w.key)
	}
	ix := mnemonic.Build(catalog, 5000)
	return mnemonic.NewSearcher(ix, mnemonic.Options{TailExtension: true})
}

func encodeRequests(t *testing.T, reqs ...LookupRequest) *bytes.Buffer {
	t.Helper()
	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range reqs {
		require.NoError(t, enc.Encode(r))
	}
	return &in
}

func TestServer_Lookup(t *testing.T) {
	in := encodeRequests(t,
		LookupRequest{ID: "r1", Label: "Brian", Number: "21-60"},
		LookupRequest{ID: "r2", Number: "21"},
	)
	var out bytes.Buffer
	srv := NewServerWithIO(testSearcher(t), 32, in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)

	var ready StatusMessage
	require.NoError(t, dec.Decode(&ready))
	assert.Equal(t, "ready", ready.Status)

	var first LookupResponse
	require.NoError(t, dec.Decode(&first))
	assert.Equal(t, "r1", first.ID)
	assert.Equal(t, "2160", first.Digits)
	assert.Equal(t, 2, first.WordCount)
	assert.Equal(t, 1, first.Count)
	require.Len(t, first.Phrases, 1)
	assert.Equal(t, []string{"21", "60"}, first.Phrases[0].Segments)
	assert.Equal(t, [][]string{{"NIGHT"}, {"CHEESE"}}, first.Phrases[0].Words)
	assert.Empty(t, first.Phrases[0].Tail)
	assert.GreaterOrEqual(t, first.TimeTaken, int64(0))

	var second LookupResponse
	require.NoError(t, dec.Decode(&second))
	assert.Equal(t, "r2", second.ID)
	assert.Equal(t, 1, second.WordCount)
	require.Len(t, second.Phrases, 1)
	assert.Equal(t, []string{"KNIGHTLY", "NIGHTS"}, second.Phrases[0].Tail)
}

func TestServer_RejectsBadNumbers(t *testing.T) {
	in := encodeRequests(t,
		LookupRequest{ID: "empty", Number: "no digits here"},
		LookupRequest{ID: "long", Number: "123456789"},
	)
	var out bytes.Buffer
	srv := NewServerWithIO(testSearcher(t), 8, in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusMessage
	require.NoError(t, dec.Decode(&ready))

	for _, id := range []string{"empty", "long"} {
		var resp LookupError
		require.NoError(t, dec.Decode(&resp))
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, codeBadRequest, resp.Code)
		assert.NotEmpty(t, resp.Error)
	}
}

func TestServer_UnmatchedNumber(t *testing.T) {
	in := encodeRequests(t, LookupRequest{ID: "r", Number: "9"})
	var out bytes.Buffer
	require.NoError(t, NewServerWithIO(testSearcher(t), 32, in, &out).Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusMessage
	require.NoError(t, dec.Decode(&ready))

	var resp LookupResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "9", resp.Digits)
	assert.Zero(t, resp.WordCount)
	assert.Zero(t, resp.Count)
	assert.Empty(t, resp.Phrases)
}

func TestServer_InvalidMessage(t *testing.T) {
	// 0xc1 is never used by msgpack
	in := bytes.NewBuffer([]byte{0xc1})
	var out bytes.Buffer
	err := NewServerWithIO(testSearcher(t), 32, in, &out).Start()
	require.Error(t, err)

	dec := msgpack.NewDecoder(&out)
	var ready StatusMessage
	require.NoError(t, dec.Decode(&ready))
	var resp LookupError
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, codeBadRequest, resp.Code)
}
