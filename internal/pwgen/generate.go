// Package pwgen builds random passwords from one or more alphabets,
// guaranteeing that every alphabet contributes at least one symbol.
package pwgen

import (
	"fmt"
	"math"
)

// Generate creates a password of exactly length symbols.
//
// One symbol is drawn from each alphabet first, the rest is filled from the
// union of all alphabets, and the result is shuffled so the mandatory symbols
// do not cluster at the front. Preconditions are checked before any draw.
func Generate(r Rand, length int, alphabets []Alphabet) (string, error) {
	if err := validate(length, alphabets); err != nil {
		return "", err
	}

	password := make([]rune, 0, length)

	// Coverage: one symbol per alphabet.
	for _, abc := range alphabets {
		password = append(password, abc.At(r.IntN(abc.Len())))
	}

	// Fill from the union, duplicates included.
	union := merge(alphabets)
	for len(password) < length {
		password = append(password, union[r.IntN(len(union))])
	}

	shuffle(r, password)

	return string(password), nil
}

func validate(length int, alphabets []Alphabet) error {
	if len(alphabets) == 0 {
		return ErrEmptyAlphabetSet
	}
	for i, abc := range alphabets {
		if abc.Len() == 0 {
			return fmt.Errorf("alphabet %d: %w", i+1, ErrEmptyAlphabet)
		}
	}
	if length < len(alphabets) {
		return fmt.Errorf("length %d with %d alphabets: %w", length, len(alphabets), ErrLengthTooShort)
	}
	return nil
}

func merge(alphabets []Alphabet) []rune {
	n := 0
	for _, abc := range alphabets {
		n += abc.Len()
	}
	union := make([]rune, 0, n)
	for _, abc := range alphabets {
		union = append(union, abc.symbols...)
	}
	return union
}

// shuffle is a Fisher-Yates shuffle driven by r.
func shuffle(r Rand, s []rune) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Entropy estimates the bits of entropy of a password of the given length,
// treating every distinct symbol of the union as equally likely.
func Entropy(length int, alphabets []Alphabet) float64 {
	distinct := make(map[rune]struct{})
	for _, abc := range alphabets {
		for _, s := range abc.symbols {
			distinct[s] = struct{}{}
		}
	}
	if length <= 0 || len(distinct) == 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(len(distinct)))
}
