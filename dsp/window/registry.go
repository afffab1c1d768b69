package window

import (
	"fmt"
	"strings"
)

// Type identifies a window family.
type Type int

const (
	TypeBoxcar Type = iota
	TypeBartlett
	TypeBartlettHann
	TypeParzen
	TypeWelch
	TypeCosine
	TypeBohman
	TypeLanczos
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris
	TypeBlackmanNuttall
	TypeKaiserBessel
	TypeFlatTop
	TypeExponential
	TypeGaussian
	TypeHannPoisson
	TypeTukey
	TypeKaiser
)

// Metadata holds the reference spectral figures of a window family.
// Parametric families only carry Name and Parametric; their figures depend on
// the shape parameter.
type Metadata struct {
	Name                string
	Parametric          bool
	CoherentGain        float64
	HighestSidelobe     float64 // dB
	StopbandAttenuation float64 // dB
	TransitionWidth     float64 // normalized to the window length
}

// TransitionWidthAt returns the transition width for a window of length n as a
// fraction of the sample rate.
func (m Metadata) TransitionWidthAt(n int) float64 {
	return m.TransitionWidth / float64(n)
}

type entry struct {
	name   string
	sym    symmetry
	fn     Func
	shaped func(n int, sym bool, p float64) []float64
	param  float64
	meta   Metadata
}

var catalog = [...]entry{
	TypeBoxcar: {
		name: "boxcar", sym: symmetrySymmetric, fn: Boxcar,
		meta: Metadata{CoherentGain: 1, HighestSidelobe: -13.2, StopbandAttenuation: -21, TransitionWidth: 0.9},
	},
	TypeBartlett: {
		name: "bartlett", sym: symmetryPeriodic, fn: Bartlett,
		meta: Metadata{CoherentGain: 0.5, HighestSidelobe: -26.4, StopbandAttenuation: -25, TransitionWidth: 1.8},
	},
	TypeBartlettHann: {
		name: "barthann", sym: symmetryPeriodic, fn: BartlettHann,
		meta: Metadata{CoherentGain: 0.5, HighestSidelobe: -35.7, StopbandAttenuation: -42, TransitionWidth: 3.2},
	},
	TypeParzen: {
		name: "parzen", sym: symmetrySymmetric, fn: Parzen,
		meta: Metadata{CoherentGain: 0.375, HighestSidelobe: -53, StopbandAttenuation: -31, TransitionWidth: 4},
	},
	TypeWelch: {
		name: "welch", sym: symmetryPeriodic, fn: Welch,
		meta: Metadata{CoherentGain: 0.667317, HighestSidelobe: -21.2, StopbandAttenuation: -31, TransitionWidth: 3.3},
	},
	TypeCosine: {
		name: "cosine", sym: symmetryPeriodic, fn: Cosine,
		meta: Metadata{CoherentGain: 0.63724, HighestSidelobe: -22.8, StopbandAttenuation: -33, TransitionWidth: 3.1},
	},
	TypeBohman: {
		name: "bohman", sym: symmetryPeriodic, fn: Bohman,
		meta: Metadata{CoherentGain: 0.405285, HighestSidelobe: -46, StopbandAttenuation: -28, TransitionWidth: 3.3},
	},
	TypeLanczos: {
		name: "lanczos", sym: symmetryPeriodic, fn: Lanczos,
		meta: Metadata{CoherentGain: 0.58949, HighestSidelobe: -26.3, StopbandAttenuation: -28, TransitionWidth: 3.3},
	},
	TypeHann: {
		name: "hann", sym: symmetrySymmetric, fn: Hann,
		meta: Metadata{CoherentGain: 0.5, HighestSidelobe: -31.5, StopbandAttenuation: -44, TransitionWidth: 3.1},
	},
	TypeHamming: {
		name: "hamming", sym: symmetryPeriodic, fn: Hamming,
		meta: Metadata{CoherentGain: 0.54, HighestSidelobe: -41.7, StopbandAttenuation: -53, TransitionWidth: 3.3},
	},
	TypeBlackman: {
		name: "blackman", sym: symmetryPeriodic, fn: Blackman,
		meta: Metadata{CoherentGain: 0.42, HighestSidelobe: -58.1, StopbandAttenuation: -74, TransitionWidth: 5.5},
	},
	TypeBlackmanHarris: {
		name: "blackmanharris", sym: symmetryPeriodic, fn: BlackmanHarris,
		meta: Metadata{CoherentGain: 0.35875, HighestSidelobe: -91.8, StopbandAttenuation: -92, TransitionWidth: 6.3},
	},
	TypeBlackmanNuttall: {
		name: "blackmannuttall", sym: symmetryPeriodic, fn: BlackmanNuttall,
		meta: Metadata{CoherentGain: 0.363582, HighestSidelobe: -88.7, StopbandAttenuation: -93, TransitionWidth: 6.4},
	},
	TypeKaiserBessel: {
		name: "kaiserbessel", sym: symmetryDefault, fn: KaiserBessel,
		meta: Metadata{CoherentGain: 0.402, HighestSidelobe: -65.4, StopbandAttenuation: -60, TransitionWidth: 3.6},
	},
	TypeFlatTop: {
		name: "flattop", sym: symmetryPeriodic, fn: FlatTop,
		meta: Metadata{CoherentGain: 0.215579, HighestSidelobe: -83, StopbandAttenuation: -99, TransitionWidth: 7.5},
	},
	TypeExponential: {
		name: "exponential", sym: symmetryPeriodic, shaped: Exponential, param: DefaultExponentialAlpha,
	},
	TypeGaussian: {
		name: "gaussian", sym: symmetryPeriodic, shaped: Gaussian, param: DefaultGaussianStd,
	},
	TypeHannPoisson: {
		name: "hannpoisson", sym: symmetryPeriodic, shaped: HannPoisson, param: DefaultHannPoissonAlpha,
	},
	TypeTukey: {
		name: "tukey", sym: symmetryPeriodic, shaped: Tukey, param: DefaultTukeyAlpha,
	},
	TypeKaiser: {
		name: "kaiser", sym: symmetrySymmetric, shaped: Kaiser, param: DefaultKaiserBeta,
	},
}

var aliases = map[string]Type{
	"rectangular":  TypeBoxcar,
	"rect":         TypeBoxcar,
	"triangular":   TypeBartlett,
	"bartletthann": TypeBartlettHann,
	"hanning":      TypeHann,
	"sine":         TypeCosine,
	"poisson":      TypeExponential,
	"gauss":        TypeGaussian,
	"nuttall":      TypeBlackmanNuttall,
	"flat-top":     TypeFlatTop,
}

func lookup(t Type) (entry, bool) {
	if t < 0 || int(t) >= len(catalog) {
		return entry{}, false
	}

	return catalog[t], true
}

func (t Type) String() string {
	if e, ok := lookup(t); ok {
		return e.name
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType resolves a window name (case-insensitive) to its Type.
func ParseType(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	for i := range catalog {
		if catalog[i].name == key {
			return Type(i), nil
		}
	}

	if t, ok := aliases[key]; ok {
		return t, nil
	}

	return 0, unknownName(name)
}

// Types returns every window type in catalog order.
func Types() []Type {
	out := make([]Type, len(catalog))
	for i := range out {
		out[i] = Type(i)
	}

	return out
}

// Names returns the canonical name of every window type in catalog order.
func Names() []string {
	out := make([]string, len(catalog))
	for i := range catalog {
		out[i] = catalog[i].name
	}

	return out
}

// DefaultSymmetric reports the symmetry used by Generate when no symmetry
// option is given. ok is false for unknown types and for Kaiser-Bessel, which
// has no default.
func DefaultSymmetric(t Type) (sym, ok bool) {
	e, found := lookup(t)
	if !found || e.sym == symmetryDefault {
		return false, false
	}

	return e.sym == symmetrySymmetric, true
}

// DefaultParameter returns the default shape parameter of a parametric family.
func DefaultParameter(t Type) (float64, bool) {
	e, found := lookup(t)
	if !found || e.shaped == nil {
		return 0, false
	}

	return e.param, true
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	e, ok := lookup(t)
	if !ok {
		return Metadata{}
	}

	m := e.meta
	m.Name = e.name
	m.Parametric = e.shaped != nil

	return m
}

// Generate returns window coefficients of the given length. Symmetry defaults
// to the family's documented default; post-processing options are applied after
// evaluation in the order gain compensation, inversion, DC removal.
func Generate(t Type, length int, opts ...Option) ([]float64, error) {
	e, ok := lookup(t)
	if !ok {
		return nil, unknownType(t)
	}

	cfg := applyOptions(opts)

	sym, err := e.resolveSymmetry(t, cfg)
	if err != nil {
		return nil, err
	}

	out := e.eval(length, sym, cfg)
	postProcess(out, cfg)

	return out, nil
}

// Bind returns a generator for t with the shape parameter and post-processing
// options fixed. Symmetry options are ignored: the returned Func takes the
// symmetry at call time.
func Bind(t Type, opts ...Option) (Func, error) {
	e, ok := lookup(t)
	if !ok {
		return nil, unknownType(t)
	}

	cfg := applyOptions(opts)

	return func(n int, sym bool) []float64 {
		out := e.eval(n, sym, cfg)
		postProcess(out, cfg)

		return out
	}, nil
}

func (e entry) resolveSymmetry(t Type, cfg config) (bool, error) {
	s := cfg.symmetry
	if s == symmetryDefault {
		s = e.sym
	}

	switch s {
	case symmetrySymmetric:
		return true, nil
	case symmetryPeriodic:
		return false, nil
	default:
		return false, symmetryRequired(t)
	}
}

func (e entry) eval(n int, sym bool, cfg config) []float64 {
	if e.shaped == nil {
		return e.fn(n, sym)
	}

	p := e.param
	if cfg.hasAlpha {
		p = cfg.alpha
	}

	return e.shaped(n, sym, p)
}
