package pwgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphabet_Len(t *testing.T) {
	assert.Equal(t, 4, NewAlphabet("ABCD").Len())
	assert.Equal(t, 0, NewAlphabet("").Len())
	assert.Equal(t, 3, NewAlphabet("äöü").Len(), "multi-byte symbols count once")
}

func TestAlphabet_Symbols(t *testing.T) {
	abc := NewAlphabet("ABCD")
	assert.Equal(t, []rune{'A', 'B', 'C', 'D'}, abc.Symbols())

	// Mutating the returned slice must not change the alphabet.
	s := abc.Symbols()
	s[0] = 'Z'
	assert.Equal(t, 'A', abc.At(0))
}

func TestAlphabet_KeepsDuplicates(t *testing.T) {
	abc := NewAlphabet("AAB")
	assert.Equal(t, 3, abc.Len())
	assert.Equal(t, "AAB", abc.String())
}

func TestAlphabet_At(t *testing.T) {
	abc := NewAlphabet("ABCD")
	assert.Equal(t, 'A', abc.At(0))
	assert.Equal(t, 'D', abc.At(3))
}

func TestAlphabet_AtOutOfBounds(t *testing.T) {
	abc := NewAlphabet("ABCD")
	assert.Panics(t, func() { abc.At(4) })
	assert.Panics(t, func() { abc.At(-1) })
}

func TestNewAlphabets(t *testing.T) {
	abcs := NewAlphabets("AB", "12", "")
	assert.Len(t, abcs, 3)
	assert.Equal(t, "12", abcs[1].String())
	assert.Equal(t, 0, abcs[2].Len())
}
