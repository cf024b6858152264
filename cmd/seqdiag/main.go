// Command seqdiag compiles a .diag file (or standard input) into an
// ASCII-art sequence diagram on standard output.
//
// Usage:
//
//	seqdiag [flags] [PATH]
//
// PATH is the .diag file to render, or "-" for standard input (the
// default). On a syntax error the details are printed to standard error
// and the process exits with status 1.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dshills/seqdiag/pkg/seq"
)

const version = "1.0.0"

// CLI flags
var (
	checkF      = flag.Bool("check", false, "Verify the rendered frame's structural invariants and report to stderr")
	dumpLayoutF = flag.Bool("dump-layout", false, "Write the solved layout geometry as JSON to stderr")
	versionF    = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if *versionF {
		fmt.Printf("seqdiag version %s\n", version)
		os.Exit(0)
	}

	path := flag.Arg(0)
	if path == "" {
		path = "-"
	}

	input, verbosePath, err := readInput(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", verbosePath, err)
		os.Exit(1)
	}

	output, err := seq.Transform(input)
	if err != nil {
		var perr *seq.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintf(os.Stderr, "Invalid syntax:\n%s\n", perr.Error())
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}

	if *dumpLayoutF {
		dumpLayout(input)
	}
	if *checkF {
		fmt.Fprintln(os.Stderr, seq.VerifyFrame(output).Summary())
	}

	if output == "" {
		fmt.Fprintln(os.Stderr, "Warning: No diagram was generated")
		return
	}
	fmt.Println(output)
}

// readInput loads the diagram source from a file or standard input.
// The second return value is the name used in error messages.
func readInput(path string) (string, string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), "STDIN", err
	}
	data, err := os.ReadFile(path)
	// The message is printed as "<path>: <error>"; unwrap the path the
	// os layer already baked in so it is not repeated.
	var perr *fs.PathError
	if errors.As(err, &perr) {
		err = perr.Err
	}
	return string(data), path, err
}

// dumpLayout writes the solved geometry to stderr. The input has already
// parsed successfully at this point, so geometry errors cannot occur.
func dumpLayout(input string) {
	geo, err := seq.DiagramGeometry(input)
	if err != nil {
		return
	}
	data, err := json.MarshalIndent(geo, "", "  ")
	if err != nil {
		return
	}
	fmt.Fprintln(os.Stderr, string(data))
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: seqdiag [flags] [PATH]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Renders a diagrams-as-code file as an ASCII sequence diagram.")
	fmt.Fprintln(os.Stderr, "PATH is the .diag file to render, or - for standard input (default).")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}
