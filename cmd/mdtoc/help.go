package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdtoc [flags] [file ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a GitHub-compatible table of contents between marker lines")
	fmt.Fprintln(w, "of Markdown documents. Without files, reads stdin and writes stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  file    Markdown file or directory (directories are scanned for *.md)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Modes:")
	fmt.Fprintln(w, "  -o, --output <path>       Write result to this file instead of stdout")
	fmt.Fprintln(w, "  -i, --in-place            Rewrite the input files in place")
	fmt.Fprintln(w, "      --check               Verify documents are up to date (exit 4 if not)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Format:")
	fmt.Fprintln(w, "  -f, --format <s>          List style: alternating, asterisks, dashes,")
	fmt.Fprintln(w, "                            numbers, pluses (default: alternating)")
	fmt.Fprintln(w, "      --bullet <s>          Custom bullet glyph (implies a custom style)")
	fmt.Fprintln(w, "      --indent <n>          Spaces per nesting level (default: 2)")
	fmt.Fprintln(w, "      --include-title       Keep the level-1 document title in the list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markers:")
	fmt.Fprintln(w, "  -b, --begin-marker <s>    Line that opens the TOC region")
	fmt.Fprintln(w, "                            (default: \"<!-- toc -->\")")
	fmt.Fprintln(w, "  -e, --end-marker <s>      Line that closes the TOC region")
	fmt.Fprintln(w, "                            (default: \"<!-- tocstop -->\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-file timing")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success")
	fmt.Fprintln(w, "  1  general error")
	fmt.Fprintln(w, "  2  invalid flags or config")
	fmt.Fprintln(w, "  3  file not found or unreadable")
	fmt.Fprintln(w, "  4  --check found an outdated table of contents")
}
