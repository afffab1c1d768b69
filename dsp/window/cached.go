package window

// Cached holds a generated window and regenerates it only when its type,
// length or options change. It is not safe for concurrent mutation.
type Cached struct {
	typ     Type
	length  int
	cfg     config
	samples []float64
	valid   bool
}

// NewCached generates the window t of the given length and caches it.
func NewCached(t Type, length int, opts ...Option) (*Cached, error) {
	c := &Cached{}
	if _, err := c.Set(t, length, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Set updates the cached window. It reports whether the samples were
// regenerated. On error the previous samples are kept.
func (c *Cached) Set(t Type, length int, opts ...Option) (bool, error) {
	cfg := applyOptions(opts)
	if c.valid && c.typ == t && c.length == length && c.cfg == cfg {
		return false, nil
	}

	samples, err := Generate(t, length, opts...)
	if err != nil {
		return false, err
	}

	c.typ = t
	c.length = length
	c.cfg = cfg
	c.samples = samples
	c.valid = true

	return true, nil
}

// At returns the i-th window sample. It panics if i is out of range.
func (c *Cached) At(i int) float64 {
	return c.samples[i]
}

// Samples returns a copy of the cached window.
func (c *Cached) Samples() []float64 {
	return append([]float64(nil), c.samples...)
}

// Len returns the window length.
func (c *Cached) Len() int {
	return len(c.samples)
}

// Type returns the cached window type.
func (c *Cached) Type() Type {
	return c.typ
}

// Apply multiplies buf in-place by the cached window.
func (c *Cached) Apply(buf []float64) error {
	return ApplyCoefficientsInPlace(buf, c.samples)
}
