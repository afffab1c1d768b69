//nolint:funcorder
package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates |X(f)|^2 of the samples processed since the last Reset
// at one normalized frequency f (cycles per sample).
//
// Unlike an FFT bin, f does not have to be a multiple of 1/N, so the analyzer
// can probe a window's response between bins: at main-lobe edges, nulls and
// sidelobe peaks. Evaluation near f = 0 loses precision as the block grows,
// which is acceptable for window lengths up to a few thousand samples.
type Goertzel struct {
	frequency float64
	coeff     float64
	s0, s1    float64
}

// NewGoertzel creates an analyzer for the normalized frequency f, which must
// lie in [0, 0.5].
func NewGoertzel(frequency float64) (*Goertzel, error) {
	if err := validateFrequency(frequency); err != nil {
		return nil, err
	}

	g := &Goertzel{frequency: frequency}
	g.updateCoeff()

	return g, nil
}

func validateFrequency(f float64) error {
	if f < 0 || f > 0.5 || math.IsNaN(f) {
		return fmt.Errorf("goertzel: normalized frequency must be in [0, 0.5]: %v", f)
	}

	return nil
}

func (g *Goertzel) updateCoeff() {
	g.coeff = 2 * math.Cos(2*math.Pi*g.frequency)
}

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
}

// ProcessSample updates the internal state with a single input sample.
func (g *Goertzel) ProcessSample(input float64) {
	s := input + g.coeff*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
}

// ProcessBlock updates the internal state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
}

// Power returns the squared magnitude of the DTFT at the target frequency.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns the magnitude of the DTFT at the target frequency.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}

	return math.Sqrt(p)
}

// PowerDB returns the power in decibels (dB) with a safe floor at -300 dB.
func (g *Goertzel) PowerDB() float64 {
	p := g.Power()
	if p <= 1e-30 {
		return -300
	}

	return 10 * math.Log10(p)
}

// SetFrequency retunes the analyzer. The accumulated state is kept.
func (g *Goertzel) SetFrequency(frequency float64) error {
	if err := validateFrequency(frequency); err != nil {
		return err
	}

	g.frequency = frequency
	g.updateCoeff()

	return nil
}

// Frequency returns the normalized target frequency.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// PowerAt returns |X(f)|^2 of input at the normalized frequency f in one shot.
func PowerAt(input []float64, frequency float64) (float64, error) {
	g, err := NewGoertzel(frequency)
	if err != nil {
		return 0, err
	}

	g.ProcessBlock(input)

	return g.Power(), nil
}

// Bank evaluates a fixed set of normalized frequencies over the same input.
type Bank struct {
	analyzers []*Goertzel
}

// NewBank creates one analyzer per frequency.
func NewBank(frequencies []float64) (*Bank, error) {
	analyzers := make([]*Goertzel, len(frequencies))
	for i, f := range frequencies {
		g, err := NewGoertzel(f)
		if err != nil {
			return nil, err
		}

		analyzers[i] = g
	}

	return &Bank{analyzers: analyzers}, nil
}

// ProcessBlock updates all analyzers with the same input block.
func (b *Bank) ProcessBlock(input []float64) {
	for _, g := range b.analyzers {
		g.ProcessBlock(input)
	}
}

// Powers returns the power of every analyzer, in frequency order.
func (b *Bank) Powers() []float64 {
	p := make([]float64, len(b.analyzers))
	for i, g := range b.analyzers {
		p[i] = g.Power()
	}

	return p
}

// Reset resets all analyzers.
func (b *Bank) Reset() {
	for _, g := range b.analyzers {
		g.Reset()
	}
}
