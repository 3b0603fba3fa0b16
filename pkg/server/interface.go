/*
Package server implements msgpack IPC for mnemonic lookups.

Clients write a stream of msgpack maps to stdin and read one msgpack map per
request from stdout. There is no framing beyond msgpack itself.

On start the server writes a ready signal:

	{"status": "ready"}

A lookup request carries an optional label and the number to encode:

	{"id": "req_001", "l": "Brian", "n": "206-890-9233"}

The response lists every shortest phrase. Each phrase has its segment digits,
the words for each segment and, when tail extension is on, the longer words
that start with the last segment:

	{"id": "req_001", "d": "2068909233", "k": 4,
	 "p": [{"s": ["20", "689", ...], "w": [["NOSE", ...], ...], "x": [...]}],
	 "c": 3, "t": 412}

"t" is the search time in microseconds. A number without digits, or with more
digits than the server accepts, gets an error instead:

	{"id": "req_002", "e": "number has no digits", "c": 400}
*/
package server

// LookupRequest asks for the mnemonics of a number.
type LookupRequest struct {
	ID     string `msgpack:"id"`
	Label  string `msgpack:"l,omitempty"`
	Number string `msgpack:"n"`
}

// PhraseResult is one shortest phrase.
type PhraseResult struct {
	Segments []string   `msgpack:"s"`
	Words    [][]string `msgpack:"w"`
	Tail     []string   `msgpack:"x,omitempty"`
}

// LookupResponse is the answer to a LookupRequest.
type LookupResponse struct {
	ID        string         `msgpack:"id"`
	Digits    string         `msgpack:"d"`
	WordCount int            `msgpack:"k"`
	Phrases   []PhraseResult `msgpack:"p"`
	Count     int            `msgpack:"c"`
	TimeTaken int64          `msgpack:"t"`
}

// LookupError holds basic error information for lookup requests
type LookupError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// StatusMessage signals server state, e.g. ready.
type StatusMessage struct {
	Status string `msgpack:"status"`
}
