package pwgen

import "errors"

var (
	// ErrEmptyAlphabetSet indicates that no alphabets were given.
	ErrEmptyAlphabetSet = errors.New("no alphabets given")

	// ErrLengthTooShort indicates there is no room for one symbol per alphabet.
	ErrLengthTooShort = errors.New("password length is shorter than the number of alphabets")

	// ErrEmptyAlphabet indicates an alphabet without symbols.
	ErrEmptyAlphabet = errors.New("alphabet has no symbols")
)
