// 31 July 2020

// randseq writes a random alignment, useful for trying out pairident
// on something big.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/andrew-torda/pairident/pkg/randseq"
	. "github.com/andrew-torda/pairident/pkg/seq/common"
)

func main() {
	os.Exit(mymain())
}

func mymain() int {
	f := flag.NewFlagSet("randseq", flag.ContinueOnError)
	const iseed int64 = 1637
	var args randseq.RandSeqArgs

	f.BoolVar(&args.NoGap, "g", false, "do not put gaps in sequences")
	f.BoolVar(&args.NoX, "x", false, "do not put unknown residues (X) in sequences")
	f.BoolVar(&args.MkErr, "e", false, "provoke errors, last sequence is one short")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	f.StringVar(&args.Cmmt, "c", "seq", "prefix for sequence names")
	if err := f.Parse(os.Args[1:]); err != nil {
		return ExitUsageError
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Too few args\nrandseq [..] file nseq length")
		f.PrintDefaults()
		return ExitUsageError
	}

	const emsg = "Failed converting %s to positive integer\n"
	if nseq, err := strconv.ParseUint(f.Arg(1), 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Arg(1))
		return ExitFailure
	} else {
		args.Nseq = int(nseq)
	}
	if nlen, err := strconv.ParseUint(f.Arg(2), 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Arg(2))
		return ExitFailure
	} else {
		args.Len = int(nlen)
	}

	fname := f.Arg(0)
	if fname == "-" || fname == "" {
		args.Wrtr = os.Stdout
	} else {
		ft, err := os.Create(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			return ExitFailure
		}
		defer ft.Close()
		args.Wrtr = ft
	}
	if err := randseq.RandSeqMain(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	return ExitSuccess
}
