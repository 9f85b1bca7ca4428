// Command wininfo prints spectral properties of the built-in window
// functions.
//
// Usage:
//
//	wininfo [flags] [window-name ...]
//
// Without arguments it prints info for all known window functions.
//
// Examples:
//
//	wininfo hann
//	wininfo -size 4096 blackman flat-top
//	wininfo -periodic hann
//	wininfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectral/dsp/window"
)

var registry = map[string]window.Function{
	"boxcar":           window.Boxcar,
	"bartlett":         window.Bartlett,
	"bartlett-hann":    window.BartlettHann,
	"parzen":           window.Parzen,
	"welch":            window.Welch,
	"cosine":           window.Cosine,
	"bohman":           window.Bohman,
	"lanczos":          window.Lanczos,
	"hann":             window.Hann,
	"hamming":          window.Hamming,
	"blackman":         window.Blackman,
	"blackman-harris":  window.BlackmanHarris,
	"blackman-nuttall": window.BlackmanNuttall,
	"kaiser-bessel":    window.KaiserBessel,
	"flat-top":         window.FlatTop,
}

func main() {
	size := flag.Int("size", 1024, "window length in samples")
	periodic := flag.Bool("periodic", false, "use periodic (FFT) form instead of symmetric")
	list := flag.Bool("list", false, "list available window names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wininfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints spectral properties of window functions.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all windows.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wininfo hann blackman\n")
		fmt.Fprintf(os.Stderr, "  wininfo -size 4096 -periodic flat-top\n")
		fmt.Fprintf(os.Stderr, "  wininfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for n := range registry {
			names = append(names, n)
		}
		sort.Strings(names)
	}

	var functions []window.Function
	var labels []string
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		fn, ok := registry[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown window %q (use -list to see available)\n", name)
			continue
		}
		functions = append(functions, fn)
		labels = append(labels, name)
	}
	if len(functions) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching window functions\n")
		os.Exit(1)
	}

	printAnalysis(labels, functions, *size, *periodic)
}

func printList() {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func printAnalysis(labels []string, functions []window.Function, size int, periodic bool) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tSidelobe [dB]\tStopband [dB]\tTransition [bins]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-------------\t-------------\t-----------------\n")

	var opts []window.Option
	if periodic {
		opts = append(opts, window.WithPeriodic())
	}

	for i, fn := range functions {
		if _, err := window.Generate(fn, size, opts...); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", labels[i], err)
			continue
		}

		gain, err := window.CoherentGain(fn)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", labels[i], err)
			continue
		}
		sidelobe, err := window.SideLobeLevel(fn)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", labels[i], err)
			continue
		}
		stopband, err := window.StopbandAttenuation(fn)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", labels[i], err)
			continue
		}
		transition, err := window.TransitionWidth(fn, size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", labels[i], err)
			continue
		}

		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.1f\t%.1f\t%.2f\n",
			labels[i], size, gain, sidelobe, stopband, transition*float64(size))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
