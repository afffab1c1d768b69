// Command wininfo prints spectral properties of DSP window functions.
//
// Usage:
//
//	wininfo [flags] [window-name ...]
//
// Without arguments it prints info for all known window types.
//
// Examples:
//
//	wininfo hann
//	wininfo -size 1024 blackman kaiser
//	wininfo -size 4096 -alpha 8 kaiser
//	wininfo -symmetric -compare hann hamming blackman
//	wininfo -response 256 -size 64 blackmanharris
//	wininfo -all -periodic
//	wininfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"sort"
	"text/tabwriter"

	"github.com/cwbudde/algo-window/dsp/freqz"
	"github.com/cwbudde/algo-window/dsp/window"
	"github.com/cwbudde/algo-window/dsp/window/compare"
	"github.com/cwbudde/algo-window/measure/leakage"
	"golang.org/x/sync/errgroup"
)

var errUsage = errors.New("usage error")

type options struct {
	size      int
	alpha     float64
	all       bool
	list      bool
	symmetric bool
	periodic  bool
	coeffs    bool
	compare   string
	response  int
	workers   int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wininfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.IntVar(&o.size, "size", 1024, "window length in samples")
	fs.Float64Var(&o.alpha, "alpha", math.NaN(), "shape parameter for parametric windows (exponential, gaussian, hannpoisson, tukey, kaiser)")
	fs.BoolVar(&o.all, "all", false, "show all window types")
	fs.BoolVar(&o.list, "list", false, "list available window names")
	fs.BoolVar(&o.symmetric, "symmetric", false, "use the symmetric (filter design) form")
	fs.BoolVar(&o.periodic, "periodic", false, "use the periodic (FFT) form")
	fs.BoolVar(&o.coeffs, "coeffs", false, "print the window samples instead of the analysis")
	fs.StringVar(&o.compare, "compare", "", "print the max abs difference of each window against this reference window")
	fs.IntVar(&o.response, "response", 0, "print a frequency response table with this many points for the first window")
	fs.IntVar(&o.workers, "workers", runtime.GOMAXPROCS(0), "number of windows analyzed concurrently")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: wininfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(stderr, "Prints spectral properties of DSP window functions.\n")
		fmt.Fprintf(stderr, "Without arguments or with -all, prints info for all windows.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  wininfo hann blackman\n")
		fmt.Fprintf(stderr, "  wininfo -size 4096 -alpha 8 kaiser\n")
		fmt.Fprintf(stderr, "  wininfo -symmetric -compare hann hamming\n")
		fmt.Fprintf(stderr, "  wininfo -response 256 blackmanharris\n")
		fmt.Fprintf(stderr, "  wininfo -list\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 1
	}

	if err := execute(o, fs.Args(), stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func execute(o options, names []string, stdout, stderr io.Writer) error {
	if o.list {
		return printList(stdout)
	}

	if o.symmetric && o.periodic {
		return fmt.Errorf("%w: -symmetric and -periodic are mutually exclusive", errUsage)
	}

	if o.size < 0 {
		return fmt.Errorf("%w: -size must be >= 0: %d", errUsage, o.size)
	}

	if len(names) == 0 || o.all {
		names = window.Names()
	}

	types := resolveTypes(names, stderr)
	if len(types) == 0 {
		return errors.New("no matching window types")
	}

	opts := baseOptions(o)

	switch {
	case o.compare != "":
		return printCompare(stdout, types, o, opts)
	case o.response > 0:
		return printResponse(stdout, types[0], o.size, o.response, opts)
	case o.coeffs:
		return printCoeffs(stdout, types, o, opts)
	default:
		return printAnalysis(stdout, stderr, types, o, opts)
	}
}

func printList(w io.Writer) error {
	names := window.Names()
	sort.Strings(names)

	for _, n := range names {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}

	return nil
}

func resolveTypes(names []string, stderr io.Writer) []window.Type {
	var types []window.Type

	for _, name := range names {
		t, err := window.ParseType(name)
		if err != nil {
			fmt.Fprintf(stderr, "warning: %v (use -list to see available)\n", err)
			continue
		}

		types = append(types, t)
	}

	return types
}

func baseOptions(o options) []window.Option {
	var opts []window.Option

	switch {
	case o.symmetric:
		opts = append(opts, window.WithSymmetric())
	case o.periodic:
		opts = append(opts, window.WithPeriodic())
	}

	if !math.IsNaN(o.alpha) {
		opts = append(opts, window.WithAlpha(o.alpha))
	}

	return opts
}

// label names a window together with the shape parameter it is evaluated with.
func label(t window.Type, alpha float64) string {
	def, ok := window.DefaultParameter(t)
	if !ok {
		return t.String()
	}

	if !math.IsNaN(alpha) {
		def = alpha
	}

	return fmt.Sprintf("%s (a=%.2f)", t, def)
}

// symmetryFor resolves the symmetry flags against the default of t.
func symmetryFor(t window.Type, o options) (bool, error) {
	switch {
	case o.symmetric:
		return true, nil
	case o.periodic:
		return false, nil
	}

	sym, ok := window.DefaultSymmetric(t)
	if !ok {
		return false, fmt.Errorf("%w: %s", window.ErrSymmetryRequired, t)
	}

	return sym, nil
}

func printAnalysis(stdout, stderr io.Writer, types []window.Type, o options, opts []window.Option) error {
	results := make([]leakage.Analysis, len(types))
	errs := make([]error, len(types))

	var g errgroup.Group
	g.SetLimit(max(o.workers, 1))

	for i, t := range types {
		g.Go(func() error {
			results[i], errs[i] = leakage.AnalyzeType(t, o.size, opts...)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tSidelobe [dB]\t1st Min [bins]\tScallop [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t----------\t-------------\t-------------\t--------------\t-----------\n")

	rows := 0

	for i, t := range types {
		if errs[i] != nil {
			fmt.Fprintf(stderr, "warning: %s: %v\n", t, errs[i])
			continue
		}

		a := results[i]
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.2f\t%.4f\t%.4f\n",
			label(t, o.alpha),
			o.size,
			a.CoherentGain,
			a.ENBW,
			a.Bandwidth3dB,
			a.HighestSidelobedB,
			a.FirstMinimumBins,
			a.ScallopLossdB,
		)
		rows++
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if rows == 0 {
		return errors.New("no window could be analyzed")
	}

	return nil
}

func printCoeffs(w io.Writer, types []window.Type, o options, opts []window.Option) error {
	var cache window.Cached

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for _, t := range types {
		if _, err := cache.Set(t, o.size, opts...); err != nil {
			return err
		}

		fmt.Fprintf(tw, "# %s\n", label(t, o.alpha))

		for i, v := range cache.Samples() {
			fmt.Fprintf(tw, "%d\t%.12g\n", i, v)
		}
	}

	return tw.Flush()
}

func printCompare(w io.Writer, types []window.Type, o options, opts []window.Option) error {
	refType, err := window.ParseType(o.compare)
	if err != nil {
		return err
	}

	ref, err := window.Bind(refType, opts...)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tReference\tSize\tSymmetric\tMax |diff|\n")
	fmt.Fprintf(tw, "------\t---------\t----\t---------\t----------\n")

	for _, t := range types {
		fn, err := window.Bind(t, opts...)
		if err != nil {
			return err
		}

		sym, err := symmetryFor(t, o)
		if err != nil {
			return err
		}

		r := compare.Compare(o.size, fn, ref, sym)
		fmt.Fprintf(tw, "%s\t%s\t%d\t%t\t%.6g\n", t, refType, o.size, sym, r.MaxAbsDiff)
	}

	return tw.Flush()
}

func printResponse(w io.Writer, t window.Type, size, points int, opts []window.Option) error {
	coeffs, err := window.Generate(t, size, opts...)
	if err != nil {
		return err
	}

	resp, err := freqz.Compute(coeffs, points)
	if err != nil {
		return err
	}

	s, err := resp.Curves()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frequency [x pi]\tMagnitude [dB]\tPhase [rad]\n")
	fmt.Fprintf(tw, "----------------\t--------------\t-----------\n")

	for i := range s.Frequency {
		fmt.Fprintf(tw, "%.4f\t%.4f\t%.4f\n", s.Frequency[i], s.MagnitudeDB[i], s.Phase[i])
	}

	return tw.Flush()
}
