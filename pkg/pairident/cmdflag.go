// 19 Oct 2026

package pairident

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// ErrConfig is wrapped by every complaint about the command line.
var ErrConfig = errors.New("configuration")

// Mode says what we write for each pair.
type Mode byte

const (
	Full      Mode = iota // both ids, identity, mismatches, gaps opposite
	RatioOnly             // just the identity
	Matrix                // square table of identities
)

// CmdFlag is literally command line flags after parsing. It is
// built once by ParseArgs and not changed afterwards.
type CmdFlag struct {
	InFname  string // fasta alignment
	OutFname string // "" or "-" means standard output
	Mode     Mode
	Vbsty    int
}

// onceString is a flag.Value which refuses to be set twice. The short
// and long names of an option share one, so "-i a --input b" is caught.
type onceString struct {
	val  string
	set  bool
	what string
}

func (o *onceString) String() string { return o.val }

func (o *onceString) Set(s string) error {
	if o.set {
		return fmt.Errorf("trying to redefine the %s file, it was already set to %s", o.what, o.val)
	}
	o.val, o.set = s, true
	return nil
}

const longUsage = `%[1]s reads a multiple sequence alignment in fasta format and
calculates all the pairwise identities.

Usage:
	%[1]s -i file.fa [-o out.tsv] [-r | -m] [-v N]

Mandatory options:
	-i, --input=FILE
		The fasta alignment. All sequences must have the same length.

Other options:
	-h, --help
		Show the options of the program.
	-o, --output=FILE
		Write to FILE. By default, results go to standard output.
	-r, --ratio
		Only write the identity for each pair.
	-m, --matrix
		Write a square matrix of identities instead of one line per pair.
	-v N
		Verbosity. With N > 0, say what is going on, on standard error.

Each line of output has the two sequence ids, identity, number of
mismatches and number of residues facing a gap. Identity is the
number of identical residues divided by the ungapped length of the
shorter sequence. X never counts as identical.
`

// usage writes the long help text
func usage(w io.Writer) {
	fmt.Fprintf(w, longUsage, path.Base(os.Args[0]))
}

// ParseArgs turns the command line (without the program name) into a
// CmdFlag. Help, or no arguments at all, gives flag.ErrHelp after
// writing usage to errWrtr. Anything else wrong gives an error wrapping
// ErrConfig. Nothing here reads the input file.
func ParseArgs(args []string, errWrtr io.Writer) (*CmdFlag, error) {
	var flags CmdFlag
	var ratio, mtrx bool
	in := &onceString{what: "input"}
	out := &onceString{what: "output"}

	f := flag.NewFlagSet("pairident", flag.ContinueOnError)
	f.SetOutput(io.Discard) // we write our own messages
	f.Usage = func() { usage(errWrtr) }
	for _, name := range []string{"i", "input"} {
		f.Var(in, name, "input fasta alignment")
	}
	for _, name := range []string{"o", "output"} {
		f.Var(out, name, "output file, default stdout")
	}
	for _, name := range []string{"r", "ratio"} {
		f.BoolVar(&ratio, name, false, "only write identities")
	}
	for _, name := range []string{"m", "matrix"} {
		f.BoolVar(&mtrx, name, false, "write a matrix of identities")
	}
	f.IntVar(&flags.Vbsty, "v", 0, "verbosity")

	if len(args) == 0 {
		f.Usage()
		return nil, flag.ErrHelp
	}
	if err := f.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if f.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", ErrConfig, f.Args())
	}

	if !in.set {
		return nil, fmt.Errorf("%w: input file not defined. Option -i / --input", ErrConfig)
	}
	if _, err := os.Stat(in.val); err != nil {
		return nil, fmt.Errorf("%w: input file %w", ErrConfig, err)
	}
	flags.InFname = in.val

	if out.set && out.val != "-" {
		dir := filepath.Dir(out.val) // "." if there is no directory part
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			return nil, fmt.Errorf("%w: path to write the output does not exist: %s", ErrConfig, dir)
		}
		flags.OutFname = out.val
	}

	switch {
	case ratio && mtrx:
		return nil, fmt.Errorf("%w: -r / --ratio and -m / --matrix cannot both be set", ErrConfig)
	case ratio:
		flags.Mode = RatioOnly
	case mtrx:
		flags.Mode = Matrix
	}
	return &flags, nil
}
