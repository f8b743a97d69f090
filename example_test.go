package mdtoc_test

import (
	"fmt"
	"strings"

	"github.com/alnah/go-mdtoc"
)

// Example demonstrates injecting a table of contents into a document that
// carries the default marker lines.
func Example() {
	source := "# Guide\n\n<!-- toc -->\n<!-- tocstop -->\n\n## Install\n\n## Usage\n\n### Flags\n"

	var b strings.Builder
	if err := mdtoc.New().Write(&b, source); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(b.String())
	// Output:
	// # Guide
	//
	// <!-- toc -->
	//
	// - [Install](#install)
	// - [Usage](#usage)
	//   * [Flags](#flags)
	//
	// <!-- tocstop -->
	//
	// ## Install
	//
	// ## Usage
	//
	// ### Flags
}

// ExampleService_TOC renders just the list, without touching a document.
func ExampleService_TOC() {
	source := "# Guide\n\n## Install\n\n## Usage\n"

	toc, err := mdtoc.New(mdtoc.WithStyle(mdtoc.Numbers())).TOC(source)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(toc)
	// Output:
	// 1. [Install](#install)
	// 1. [Usage](#usage)
}

// ExampleScan walks the heading sequence directly.
func ExampleScan() {
	source := "# Guide\n\n## Usage\n\n## Usage\n"

	for h := range mdtoc.Scan(source).All() {
		fmt.Printf("%d %s #%s\n", h.Level(), h.Title(), h.Anchor())
	}
	// Output:
	// 1 Guide #guide
	// 2 Usage #usage
	// 2 Usage #usage-1
}
