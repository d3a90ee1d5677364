// 20 Dec 2017

// Package seq provides functions for sequences,
// which usually begin their lives in fasta format. It can
// read and write them.
//
// Everything here assumes we have an alignment. Gaps are kept on
// reading and every sequence remembers how many residues it has once
// the gaps are taken away.
package seq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	. "github.com/andrew-torda/pairident/pkg/seq/common"
)

// ErrLoad is wrapped by anything that goes wrong getting sequences
// out of a file.
var ErrLoad = errors.New("loading sequences")

// ErrLenMismatch says two sequences in an alignment do not have the
// same length, so columns cannot be compared.
var ErrLenMismatch = errors.New("alignment length mismatch")

// seq is the exported type.
type seq struct {
	cmmt     string
	seq      []byte
	ungapped int // number of non-gap characters
}

// Options contains all the choices passed in from the caller.
type Options struct {
	Vbsty      int
	DiffLenSeq bool // false, unless we expect sequences to be different lengths
}

// Constants
const cmmt_char byte = '>' // and this introduces comments in fasta format

// SeqGrp is a group of sequences in the order they were read.
type SeqGrp struct {
	symUsed  [MaxSym]bool // which symbols are actually used
	seqs     []seq
	stype    SeqType
	usedKnwn bool // Do we know how many symbols are used ?
}

// newSeq sets up a sequence and counts its residues.
func newSeq(cmmt string, s []byte) seq {
	return seq{cmmt: cmmt, seq: s, ungapped: countNonGap(s)}
}

// countNonGap walks over a sequence once and counts everything that
// is not a gap.
func countNonGap(s []byte) int {
	n := 0
	for _, c := range s {
		if c != GapChar {
			n++
		}
	}
	return n
}

// GetSeq returns the sequence as the original byte slice
func (s seq) GetSeq() []byte { return s.seq }

// GetCmmt returns the comment, without the leading ">"
func (s seq) GetCmmt() string { return s.cmmt }

// Len is the aligned length, gaps included.
func (s seq) Len() int { return len(s.seq) }

// Ungapped is the number of residues once gaps are removed.
func (s seq) Ungapped() int { return s.ungapped }

// Id returns the identifier for a sequence. This is the first word
// in the comment. A sequence with nothing after the ">" has an empty
// identifier.
func (s seq) Id() string {
	tmp := strings.Fields(s.cmmt)
	if len(tmp) == 0 {
		return ""
	}
	return tmp[0]
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// String returns a sequence, with its comment at the start as
// a single string
func (s seq) String() (t string) {
	t = fmt.Sprintf("%c%s\n", cmmt_char, s.GetCmmt())
	t += string(s.GetSeq())
	return
}

// GetLen returns the length of the first sequence.
// If we are reading a multiple sequence alignment, this should be the length
// of all sequences.
func (seqgrp *SeqGrp) GetLen() int {
	if len(seqgrp.seqs) == 0 {
		return 0
	}
	return len(seqgrp.seqs[0].GetSeq())
}

// NSeq returns the number of sequences
func (seqgrp *SeqGrp) NSeq() int { return len(seqgrp.seqs) }

// SeqSlc return the slice of sequences
func (seqgrp *SeqGrp) SeqSlc() []seq { return seqgrp.seqs }

// CheckLengths makes sure every sequence is as long as the first one.
// If we have an alignment, anything else means the file is broken.
func (seqgrp *SeqGrp) CheckLengths() error {
	const msg = "first sequence length %d, but sequence %d has length %d. It starts \"%s\": %w"
	iwant := seqgrp.GetLen()
	for i := 1; i < len(seqgrp.seqs); i++ {
		if ilen := seqgrp.seqs[i].Len(); ilen != iwant {
			cmmt := trimStr(seqgrp.seqs[i].GetCmmt(), 40)
			return fmt.Errorf(msg, iwant, i+1, ilen, cmmt, ErrLenMismatch)
		}
	}
	return nil
}

// WriteToF takes a filename and a group of sequences.
// It writes the sequences to the file, or standard output if there
// is no name.
func WriteToF(outseq_fname string, seqgrp *SeqGrp, s_opts *Options) (err error) {
	const c_per_line = 60
	var outfile_fp io.Writer
	if outseq_fname == "" {
		outfile_fp = os.Stdout
	} else {
		t, err := os.Create(outseq_fname)
		if err != nil {
			return fmt.Errorf("Creating output sequence file: %w", err)
		}
		defer t.Close()
		outfile_fp = t
	}
	w := bufio.NewWriter(outfile_fp)
	for _, seq := range seqgrp.seqs {
		fmt.Fprintf(w, "%c%s\n", cmmt_char, seq.GetCmmt())
		s := seq.GetSeq()
		for ; len(s) > c_per_line; s = s[c_per_line:] {
			w.Write(s[:c_per_line])
			w.WriteByte('\n')
		}
		w.Write(s)
		w.WriteByte('\n')
	}
	if s_opts != nil && s_opts.Vbsty > 1 {
		fmt.Fprintln(os.Stderr, "wrote", len(seqgrp.seqs), "sequences to", outseq_fname)
	}
	return w.Flush()
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// sIn is a slice of strings which are the sequences.
// prefix is an optional argument. Sequences need names/comments. If
// prefix is not given, sequences will be called "s0", "s1", ...
func Str2SeqGrp(sIn []string, prefix ...string) *SeqGrp {
	var base string
	seqgrp := new(SeqGrp)
	if prefix == nil {
		base = "s"
	} else {
		base = prefix[0]
	}
	for i, s := range sIn {
		seqgrp.seqs = append(seqgrp.seqs, newSeq(fmt.Sprint(base, i), []byte(s)))
	}
	return seqgrp
}
