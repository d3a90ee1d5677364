// 19 Oct 2026
// Read a multiple sequence alignment and write the identity of every
// pair of sequences.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/andrew-torda/pairident/pkg/pairident"
	. "github.com/andrew-torda/pairident/pkg/seq/common"
)

func mymain() int {
	flags, err := pairident.ParseArgs(os.Args[1:], os.Stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return ExitUsageError
	case err != nil:
		fmt.Fprintln(os.Stderr, "[ERROR]:", err)
		return ExitUsageError
	}
	if err := pairident.Mymain(flags); err != nil {
		fmt.Fprintln(os.Stderr, "[ERROR]:", err)
		return ExitFailure
	}
	return ExitSuccess
}

func main() {
	os.Exit(mymain())
}
