package main

import (
	"fmt"
	"os"
)

const usage = `randcheck - deterministic random generation and property checking

Usage:
  randcheck <command> [arguments]

Commands:
  sample <kind>  Draw values from a generator and print them with summary
                 statistics (kinds: int, float, finite-float, bool, string)
  check          Run the built-in demo properties

Options:
  -h, --help    Show this help message

Run 'randcheck <command> --help' for more information on a specific command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]

	switch cmd {
	case "-h", "--help", "help":
		fmt.Print(usage)
		os.Exit(0)

	case "sample":
		sampleCmd(os.Args[2:])

	case "check":
		checkCmd(os.Args[2:])

	default:
		fmt.Fprintf(os.Stderr, "error: unknown command: %s\n", cmd)
		fmt.Fprintln(os.Stderr, "Run 'randcheck --help' for usage.")
		os.Exit(1)
	}
}
