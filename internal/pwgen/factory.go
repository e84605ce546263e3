package pwgen

// Factory produces passwords with fixed settings.
type Factory struct {
	rand      Rand
	length    int
	alphabets []Alphabet
}

// NewFactory validates the settings once and returns a Factory for them.
func NewFactory(r Rand, length int, alphabets []Alphabet) (*Factory, error) {
	if err := validate(length, alphabets); err != nil {
		return nil, err
	}
	abcs := make([]Alphabet, len(alphabets))
	copy(abcs, alphabets)
	return &Factory{rand: r, length: length, alphabets: abcs}, nil
}

// Produce creates one password.
func (f *Factory) Produce() string {
	// Settings were validated in NewFactory.
	p, _ := Generate(f.rand, f.length, f.alphabets)
	return p
}

// ProduceN creates n independent passwords.
func (f *Factory) ProduceN(n int) []string {
	if n < 0 {
		n = 0
	}
	passwords := make([]string, 0, n)
	for i := 0; i < n; i++ {
		passwords = append(passwords, f.Produce())
	}
	return passwords
}

// Length returns the configured password length.
func (f *Factory) Length() int {
	return f.length
}

// Alphabets returns the configured alphabets.
func (f *Factory) Alphabets() []Alphabet {
	out := make([]Alphabet, len(f.alphabets))
	copy(out, f.alphabets)
	return out
}
