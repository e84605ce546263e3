package pwgen

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand returns pre-recorded draws and records every n it was asked for.
type scriptedRand struct {
	draws []int
	asked []int
}

func (r *scriptedRand) IntN(n int) int {
	r.asked = append(r.asked, n)
	if len(r.draws) == 0 {
		return 0
	}
	d := r.draws[0]
	r.draws = r.draws[1:]
	return d % n
}

func TestGenerate_Preconditions(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		alphabets []Alphabet
		wantErr   error
	}{
		{"no alphabets", 8, nil, ErrEmptyAlphabetSet},
		{"no alphabets zero length", 0, []Alphabet{}, ErrEmptyAlphabetSet},
		{"zero length", 0, NewAlphabets("abc"), ErrLengthTooShort},
		{"negative length", -1, NewAlphabets("abc"), ErrLengthTooShort},
		{"shorter than alphabet count", 1, NewAlphabets("ABCD", "12"), ErrLengthTooShort},
		{"empty alphabet", 8, NewAlphabets("ABCD", ""), ErrEmptyAlphabet},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := &scriptedRand{}
			p, err := Generate(r, tc.length, tc.alphabets)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, p)
			assert.Empty(t, r.asked, "no randomness may be consumed on failure")
		})
	}
}

func TestGenerate_LengthExact(t *testing.T) {
	r := NewSeededRand(1)
	alphabets := NewAlphabets("abc", "XYZ", "äöü")

	for length := len(alphabets); length < 64; length++ {
		p, err := Generate(r, length, alphabets)
		require.NoError(t, err)
		assert.Equal(t, length, utf8.RuneCountInString(p))
	}
}

func TestGenerate_Coverage(t *testing.T) {
	r := NewCryptoRand()
	sets := []string{"abcd", "ABCD", "0123", "!?"}
	alphabets := NewAlphabets(sets...)

	for i := 0; i < 1000; i++ {
		p, err := Generate(r, len(sets), alphabets)
		require.NoError(t, err)
		for _, set := range sets {
			assert.True(t, strings.ContainsAny(p, set), "password %q has no symbol of %q", p, set)
		}
	}
}

func TestGenerate_Boundary(t *testing.T) {
	r := NewSeededRand(7)
	alphabets := NewAlphabets("AB", "12", "xy")

	for i := 0; i < 100; i++ {
		p, err := Generate(r, 3, alphabets)
		require.NoError(t, err)
		require.Len(t, p, 3)
		assert.Equal(t, 1, countAny(p, "AB"))
		assert.Equal(t, 1, countAny(p, "12"))
		assert.Equal(t, 1, countAny(p, "xy"))
	}
}

func TestGenerate_EndToEnd(t *testing.T) {
	r := NewCryptoRand()
	alphabets := NewAlphabets("AB", "12")

	for i := 0; i < 500; i++ {
		p, err := Generate(r, 6, alphabets)
		require.NoError(t, err)
		assert.Len(t, p, 6)
		assert.True(t, strings.ContainsAny(p, "AB"))
		assert.True(t, strings.ContainsAny(p, "12"))
		for _, c := range p {
			assert.True(t, strings.ContainsRune("AB12", c), "unexpected symbol %q in %q", c, p)
		}
	}
}

func TestGenerate_Draws(t *testing.T) {
	// Coverage draws n=2, n=2, fill draws n=4 over "AB12", shuffle draws n=4..2.
	r := &scriptedRand{draws: []int{1, 0, 3, 0, 0, 0, 0}}
	p, err := Generate(r, 4, NewAlphabets("AB", "12"))
	require.NoError(t, err)

	assert.Equal(t, []int{2, 2, 4, 4, 4, 3, 2}, r.asked)
	// Buffer before shuffle: B 1 2 A; swaps (3,0) (2,0) (1,0).
	assert.Equal(t, "12AB", p)
}

func TestGenerate_UnionKeepsDuplicates(t *testing.T) {
	r := &scriptedRand{}
	_, err := Generate(r, 3, NewAlphabets("AB", "AB"))
	require.NoError(t, err)
	// Two coverage draws over 2, one fill draw over the 4-symbol union.
	assert.Equal(t, 4, r.asked[2])
}

func TestGenerate_Distribution(t *testing.T) {
	r := NewSeededRand(42)
	alphabets := NewAlphabets("AB")
	var a, b int

	for i := 0; i < 100; i++ {
		p, err := Generate(r, 1000, alphabets)
		require.NoError(t, err)
		a += strings.Count(p, "A")
		b += strings.Count(p, "B")
	}

	total := float64(a + b)
	require.Equal(t, 100000.0, total)
	assert.InDelta(t, 0.5, float64(a)/total, 0.01)
}

func TestGenerate_NonDeterministic(t *testing.T) {
	r := NewCryptoRand()
	alphabets := NewAlphabets("ABCD", "12")

	p1, err := Generate(r, 8, alphabets)
	require.NoError(t, err)
	p2, err := Generate(r, 8, alphabets)
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
	for _, p := range []string{p1, p2} {
		assert.True(t, strings.ContainsAny(p, "ABCD"))
		assert.True(t, strings.ContainsAny(p, "12"))
	}
}

func TestGenerate_SeededIsReproducible(t *testing.T) {
	alphabets := NewAlphabets("abcdef", "123456")

	p1, err := Generate(NewSeededRand(99), 20, alphabets)
	require.NoError(t, err)
	p2, err := Generate(NewSeededRand(99), 20, alphabets)
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
}

func TestEntropy(t *testing.T) {
	assert.InDelta(t, 8.0, Entropy(8, NewAlphabets("AB")), 1e-9)
	assert.InDelta(t, 8.0, Entropy(8, NewAlphabets("AB", "BA")), 1e-9, "duplicates do not add entropy")
	assert.InDelta(t, 16.0, Entropy(4, NewAlphabets("0123456789abcdef")), 1e-9)
	assert.Zero(t, Entropy(0, NewAlphabets("AB")))
	assert.Zero(t, Entropy(8, nil))
}

func countAny(s, chars string) int {
	n := 0
	for _, c := range s {
		if strings.ContainsRune(chars, c) {
			n++
		}
	}
	return n
}
