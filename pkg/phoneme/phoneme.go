/*
Package phoneme encodes ARPAbet phone sequences into Major System digit strings.

Every consonant phone maps to exactly one decimal digit and every vowel or
semivowel phone is silent. The digits produced by a pronunciation, in order,
form its mnemonic key:

	CH IY Z    -> "60"   (cheese)
	N AY T     -> "21"   (night)
	AH0 B AW1 T -> "91"  (about)

The table is closed. A phone that is not in it yields an *UnknownPhoneError
so callers can skip the offending pronunciation without aborting a load.
*/
package phoneme

import (
	"errors"
	"strings"
)

// silent marks phones that contribute no digit.
const silent = ""

// ErrUnknownPhone is matched by every *UnknownPhoneError via errors.Is.
var ErrUnknownPhone = errors.New("unknown phone")

// table maps stress-free ARPAbet phones to their digit. DH is silent and ER is
// treated as r-colouring, so it encodes as 4 like R.
var table = map[string]string{
	"AA": silent, "AE": silent, "AH": silent, "AO": silent, "AW": silent, "AY": silent,
	"DH": silent, "EH": silent, "EY": silent,
	"HH": silent, "IH": silent, "IY": silent,
	"OW": silent, "OY": silent,
	"UH": silent, "UW": silent, "W": silent, "Y": silent,

	"S": "0", "Z": "0",
	"D": "1", "T": "1", "TH": "1",
	"N": "2", "NG": "2",
	"M": "3",
	"R": "4", "ER": "4",
	"L":  "5",
	"CH": "6", "JH": "6", "SH": "6", "ZH": "6",
	"G": "7", "K": "7",
	"F": "8", "V": "8",
	"B": "9", "P": "9",
}

// UnknownPhoneError reports a phone that is missing from the encoding table.
type UnknownPhoneError struct {
	Phone string
}

func (e *UnknownPhoneError) Error() string {
	return "Unexpected phone = " + e.Phone
}

// Is lets errors.Is(err, ErrUnknownPhone) match.
func (e *UnknownPhoneError) Is(target error) bool {
	return target == ErrUnknownPhone
}

// StripStress removes the trailing stress marker (0, 1 or 2) of a two-letter phone.
// One-letter phones never carry stress and are returned unchanged.
func StripStress(phone string) string {
	if len(phone) != 3 {
		return phone
	}
	switch phone[2] {
	case '0', '1', '2':
		return phone[:2]
	}
	return phone
}

// Digit returns the digit for a single phone, or "" for a silent phone.
func Digit(phone string) (string, error) {
	digit, ok := table[StripStress(phone)]
	if !ok {
		return "", &UnknownPhoneError{Phone: phone}
	}
	return digit, nil
}

// Encode concatenates the digits of phones in order. Silent phones add nothing,
// so an empty or all-vowel sequence encodes to the empty key.
func Encode(phones []string) (string, error) {
	var b strings.Builder
	b.Grow(len(phones))
	for _, p := range phones {
		digit, err := Digit(p)
		if err != nil {
			return "", err
		}
		b.WriteString(digit)
	}
	return b.String(), nil
}

// IsKey reports whether s is a non-empty string of decimal digits.
func IsKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
