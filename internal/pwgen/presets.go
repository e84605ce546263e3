package pwgen

import (
	"sort"
	"strings"
)

// Built-in alphabets
var presets = map[string]string{
	"lower":   "abcdefghijklmnopqrstuvwxyz",
	"upper":   "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	"digits":  "0123456789",
	"special": "!#$%&()*+,-./:;<=>?@[]^_{|}~",
	"hex":     "0123456789abcdef",
	// Alphanumerics without 0, O, I, l, 1
	"unambiguous": "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz",
}

// Preset returns the built-in alphabet with the given name (case-insensitive).
func Preset(name string) (Alphabet, bool) {
	s, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Alphabet{}, false
	}
	return NewAlphabet(s), true
}

// PresetNames returns the names of all built-in alphabets, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
