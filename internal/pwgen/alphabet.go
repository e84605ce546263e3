package pwgen

// Alphabet is an immutable, ordered collection of symbols used as a
// sampling source. Duplicates are kept and increase a symbol's weight.
type Alphabet struct {
	symbols []rune
}

// NewAlphabet creates an alphabet from the symbols of source, in order.
func NewAlphabet(source string) Alphabet {
	return Alphabet{symbols: []rune(source)}
}

// NewAlphabets creates one alphabet per source string.
func NewAlphabets(sources ...string) []Alphabet {
	alphabets := make([]Alphabet, 0, len(sources))
	for _, s := range sources {
		alphabets = append(alphabets, NewAlphabet(s))
	}
	return alphabets
}

// Symbols returns a copy of the stored symbols.
func (a Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Len returns the number of symbols.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// At returns the symbol at position i. It panics if i is out of range.
func (a Alphabet) At(i int) rune {
	return a.symbols[i]
}

func (a Alphabet) String() string {
	return string(a.symbols)
}
