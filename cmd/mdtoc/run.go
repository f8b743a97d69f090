package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	mdtoc "github.com/alnah/go-mdtoc"
	"github.com/alnah/go-mdtoc/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrReadDocument  = errors.New("failed to read markdown file")
	ErrWriteDocument = errors.New("failed to write document")
	ErrTOCOutdated   = errors.New("table of contents out of date")
	ErrModeConflict  = errors.New("conflicting output modes")
	ErrSingleInput   = errors.New("mode requires a single input")
	ErrInvalidFlags  = errors.New("invalid flags")
)

// run orchestrates one CLI invocation.
func run(args []string, env *Environment) error {
	flags, inputs, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "mdtoc %s\n", Version)
		return nil
	}

	if err := validateWorkers(flags.mode.workers); err != nil {
		return err
	}
	if flags.format.indent < 0 {
		return fmt.Errorf("%w: --indent must not be negative, got %d", ErrInvalidFlags, flags.format.indent)
	}
	if err := validateModes(flags, inputs); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins), then re-validate the result.
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	svc := mdtoc.New(serviceOptions(cfg)...)

	mode := resolveMode(flags)
	files, err := resolveJobs(inputs, flags)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no markdown files found")
	}

	workers := resolveWorkers(flags.mode.workers, cfg.Batch.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	results := processBatch(svc, files, mode, workers, env)
	summary := printResults(results, flags.common.quiet, flags.common.verbose, mode, env)

	if summary.Failed == 0 {
		return nil
	}
	if len(results) == 1 {
		// Single document: surface the underlying error so the exit code
		// reflects its kind.
		return results[0].Err
	}
	if summary.Stale == summary.Failed {
		return fmt.Errorf("%w: %d file(s)", ErrTOCOutdated, summary.Stale)
	}
	return fmt.Errorf("%d file(s) failed", summary.Failed)
}

// validateModes rejects contradictory mode combinations before any work.
func validateModes(flags *tocFlags, inputs []string) error {
	if flags.mode.inPlace && flags.mode.output != "" {
		return fmt.Errorf("%w: --in-place and --output", ErrModeConflict)
	}
	if flags.mode.check && (flags.mode.inPlace || flags.mode.output != "") {
		return fmt.Errorf("%w: --check writes nothing", ErrModeConflict)
	}
	if flags.mode.inPlace && len(inputs) == 0 {
		return fmt.Errorf("%w: --in-place requires file arguments", ErrModeConflict)
	}
	if flags.mode.output != "" && len(inputs) > 1 {
		return fmt.Errorf("%w: --output with %d inputs", ErrSingleInput, len(inputs))
	}
	if !flags.mode.inPlace && !flags.mode.check && flags.mode.output == "" && len(inputs) > 1 {
		return fmt.Errorf("%w: writing %d inputs to stdout; use --in-place", ErrSingleInput, len(inputs))
	}
	return nil
}

// resolveMode picks the output mode from flags.
func resolveMode(flags *tocFlags) runMode {
	switch {
	case flags.mode.check:
		return modeCheck
	case flags.mode.inPlace:
		return modeInPlace
	case flags.mode.output != "":
		return modeOutputFile
	default:
		return modeStdout
	}
}

// resolveJobs expands positional args into jobs; no args means stdin.
func resolveJobs(inputs []string, flags *tocFlags) ([]FileJob, error) {
	if len(inputs) == 0 {
		return []FileJob{{OutputPath: flags.mode.output}}, nil
	}

	files, err := discoverFiles(inputs)
	if err != nil {
		return nil, err
	}
	if flags.mode.output != "" && len(files) == 1 {
		files[0].OutputPath = flags.mode.output
	}
	return files, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *tocFlags, cfg *config.Config) {
	if flags.markers.begin != "" {
		cfg.Markers.Start = flags.markers.begin
	}
	if flags.markers.end != "" {
		cfg.Markers.Stop = flags.markers.end
	}
	if flags.format.format != "" {
		cfg.Format.Style = flags.format.format
	}
	if flags.format.bullet != "" {
		cfg.Format.Bullet = flags.format.bullet
		if flags.format.format == "" {
			cfg.Format.Style = "custom"
		}
	}
	if flags.format.indent > 0 {
		cfg.Format.IndentWidth = flags.format.indent
	}
	if flags.format.includeTitle {
		cfg.Format.IncludeTitle = true
	}
	if flags.mode.workers > 0 {
		cfg.Batch.Workers = flags.mode.workers
	}
}

// serviceOptions translates a validated config into Service options.
func serviceOptions(cfg *config.Config) []mdtoc.Option {
	var opts []mdtoc.Option

	if cfg.Markers.Start != "" {
		opts = append(opts, mdtoc.WithStartMarker(cfg.Markers.Start))
	}
	if cfg.Markers.Stop != "" {
		opts = append(opts, mdtoc.WithStopMarker(cfg.Markers.Stop))
	}

	switch cfg.Format.Style {
	case "numbers":
		opts = append(opts, mdtoc.WithStyle(mdtoc.Numbers()))
	case "dashes":
		opts = append(opts, mdtoc.WithStyle(mdtoc.Custom("-")))
	case "asterisks":
		opts = append(opts, mdtoc.WithStyle(mdtoc.Custom("*")))
	case "pluses":
		opts = append(opts, mdtoc.WithStyle(mdtoc.Custom("+")))
	case "custom":
		opts = append(opts, mdtoc.WithStyle(mdtoc.Custom(cfg.Format.Bullet)))
	}
	// "" and "alternating" are the library default.

	if cfg.Format.IndentWidth > 0 {
		opts = append(opts, mdtoc.WithIndentWidth(cfg.Format.IndentWidth))
	}
	if cfg.Format.IncludeTitle {
		opts = append(opts, mdtoc.WithTitleEntry())
	}
	return opts
}
