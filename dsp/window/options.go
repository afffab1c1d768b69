package window

// Option configures window generation through the name-indexed layer.
type Option func(*config)

type symmetry int

const (
	symmetryDefault symmetry = iota
	symmetrySymmetric
	symmetryPeriodic
)

type config struct {
	symmetry  symmetry
	alpha     float64
	hasAlpha  bool
	gain      bool
	invert    bool
	dcRemoval bool
}

func applyOptions(opts []Option) config {
	var cfg config

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSymmetric selects the symmetric form (filter design).
func WithSymmetric() Option {
	return func(c *config) {
		c.symmetry = symmetrySymmetric
	}
}

// WithPeriodic selects the periodic form (FFT framing).
func WithPeriodic() Option {
	return func(c *config) {
		c.symmetry = symmetryPeriodic
	}
}

// WithSymmetry selects the symmetric form when sym is true and the periodic
// form otherwise.
func WithSymmetry(sym bool) Option {
	if sym {
		return WithSymmetric()
	}

	return WithPeriodic()
}

// WithAlpha sets the shape parameter of parametric windows: alpha for
// exponential, Hann-Poisson and Tukey, the standard deviation for Gaussian and
// beta for Kaiser. The value is used as given. Non-parametric windows ignore it.
func WithAlpha(v float64) Option {
	return func(c *config) {
		c.alpha = v
		c.hasAlpha = true
	}
}

// WithGainCompensation scales the window so that its coherent gain (mean) is 1.
func WithGainCompensation() Option {
	return func(c *config) {
		c.gain = true
	}
}

// WithInvert inverts coefficients (1 - w[n]).
func WithInvert() Option {
	return func(c *config) {
		c.invert = true
	}
}

// WithDCRemoval subtracts the mean after window generation.
func WithDCRemoval() Option {
	return func(c *config) {
		c.dcRemoval = true
	}
}
