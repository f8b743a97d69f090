package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across modes.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// markerFlags holds the sentinel line overrides.
type markerFlags struct {
	begin string
	end   string
}

// formatFlags holds list rendering flags.
type formatFlags struct {
	format       string
	bullet       string
	indent       int
	includeTitle bool
}

// modeFlags holds output mode flags.
type modeFlags struct {
	output  string
	inPlace bool
	check   bool
	workers int
}

// tocFlags holds all flags for the mdtoc command.
type tocFlags struct {
	common  commonFlags
	markers markerFlags
	format  formatFlags
	mode    modeFlags
	version bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing")
}

// addMarkerFlags adds marker override flags to a FlagSet.
func addMarkerFlags(fs *flag.FlagSet, f *markerFlags) {
	fs.StringVarP(&f.begin, "begin-marker", "b", "", "line that opens the TOC region")
	fs.StringVarP(&f.end, "end-marker", "e", "", "line that closes the TOC region")
}

// addFormatFlags adds list rendering flags to a FlagSet.
func addFormatFlags(fs *flag.FlagSet, f *formatFlags) {
	fs.StringVarP(&f.format, "format", "f", "", "list style: alternating, asterisks, dashes, numbers, pluses")
	fs.StringVar(&f.bullet, "bullet", "", "custom bullet glyph (implies a custom style)")
	fs.IntVar(&f.indent, "indent", 0, "spaces per nesting level (0 = default 2)")
	fs.BoolVar(&f.includeTitle, "include-title", false, "keep the level-1 document title in the list")
}

// addModeFlags adds output mode flags to a FlagSet.
func addModeFlags(fs *flag.FlagSet, f *modeFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "write result to this file instead of stdout")
	fs.BoolVarP(&f.inPlace, "in-place", "i", false, "rewrite the input files in place")
	fs.BoolVar(&f.check, "check", false, "verify documents are up to date without writing")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
}

// parseFlags parses command-line flags and returns the positional args.
func parseFlags(args []string) (*tocFlags, []string, error) {
	fs := flag.NewFlagSet("mdtoc", flag.ContinueOnError)
	f := &tocFlags{}

	addCommonFlags(fs, &f.common)
	addMarkerFlags(fs, &f.markers)
	addFormatFlags(fs, &f.format)
	addModeFlags(fs, &f.mode)
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
