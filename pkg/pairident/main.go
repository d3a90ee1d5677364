// 19 Oct 2026

// Package pairident calculates the identity of every pair of sequences
// in a multiple sequence alignment.
package pairident

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/andrew-torda/pairident/pkg/seq"
)

// Mymain reads the alignment named in flags and writes the pairwise
// identities.
func Mymain(flags *CmdFlag) (err error) {
	startTime := time.Now()
	s_opts := &seq.Options{Vbsty: flags.Vbsty}
	seqgrp, err := seq.Readfile(flags.InFname, s_opts)
	if err != nil {
		return err
	}
	if err = preflight(seqgrp, flags.Mode); err != nil {
		return fmt.Errorf("%s: %w", flags.InFname, err)
	}

	var fp io.Writer
	if flags.OutFname == "" || flags.OutFname == "-" {
		fp = os.Stdout
	} else {
		f, e := os.Create(flags.OutFname)
		if e != nil {
			return fmt.Errorf("output file %v: %w", flags.OutFname, e)
		}
		defer func() {
			if e := f.Close(); e != nil && err == nil {
				err = fmt.Errorf("closing %v: %w", flags.OutFname, e)
			}
		}()
		fp = f
	}

	if err = Write(fp, seqgrp, flags.Mode); err != nil {
		return fmt.Errorf("%s: %w", flags.InFname, err)
	}
	if flags.Vbsty > 0 {
		n := seqgrp.NSeq()
		fmt.Fprintln(os.Stderr, "compared", n*(n-1)/2, "pairs in",
			time.Since(startTime).Milliseconds(), "ms")
	}
	return nil
}
