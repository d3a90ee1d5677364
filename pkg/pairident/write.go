// 19 Oct 2026

package pairident

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/pairident/pkg/seq"
)

// A rowWriter gets each pair as it is calculated. finish is called
// once after the last pair.
type rowWriter interface {
	row(i, j int, c Counts, ident float64) error
	finish() error
}

// fullWriter writes id_i, id_j, identity, mismatches, gaps opposite
type fullWriter struct {
	w   *bufio.Writer
	ids []string
}

func (fw *fullWriter) row(i, j int, c Counts, ident float64) error {
	_, err := fmt.Fprintf(fw.w, "%s\t%s\t%.8f\t%d\t%d\n", fw.ids[i], fw.ids[j], ident, c.Mismatch, c.GapOpp)
	return err
}

func (fw *fullWriter) finish() error { return fw.w.Flush() }

// ratioWriter only writes the identity
type ratioWriter struct {
	w *bufio.Writer
}

func (rw *ratioWriter) row(i, j int, c Counts, ident float64) error {
	_, err := fmt.Fprintf(rw.w, "%.8f\n", ident)
	return err
}

func (rw *ratioWriter) finish() error { return rw.w.Flush() }

// mtrxWriter collects everything and writes a symmetric table at the
// end. The diagonal is each sequence compared with itself, which is
// less than 1 if there are any X's.
type mtrxWriter struct {
	w      *bufio.Writer
	seqgrp *seq.SeqGrp
	ids    []string
	mat    *matrix.FMatrix2d
}

func (mw *mtrxWriter) row(i, j int, c Counts, ident float64) error {
	mw.mat.Mat[i][j] = float32(ident)
	mw.mat.Mat[j][i] = float32(ident)
	return nil
}

func (mw *mtrxWriter) finish() error {
	for i, s := range mw.seqgrp.SeqSlc() {
		c, err := Compare(s.GetSeq(), s.GetSeq())
		if err != nil {
			return err
		}
		ident, err := Identity(c, s.Ungapped(), s.Ungapped())
		if err != nil {
			return fmt.Errorf("%s against itself: %w", mw.ids[i], err)
		}
		mw.mat.Mat[i][i] = float32(ident)
	}
	for _, id := range mw.ids {
		fmt.Fprint(mw.w, "\t", id)
	}
	fmt.Fprintln(mw.w)
	for i, id := range mw.ids {
		fmt.Fprint(mw.w, id)
		for _, v := range mw.mat.Mat[i] {
			fmt.Fprintf(mw.w, "\t%.4f", v)
		}
		fmt.Fprintln(mw.w)
	}
	return mw.w.Flush()
}

// newRowWriter picks the writer for a mode.
func newRowWriter(w io.Writer, seqgrp *seq.SeqGrp, mode Mode) (rowWriter, error) {
	ids := make([]string, seqgrp.NSeq())
	for i, s := range seqgrp.SeqSlc() {
		ids[i] = s.Id()
	}
	bw := bufio.NewWriter(w)
	switch mode {
	case Full:
		return &fullWriter{w: bw, ids: ids}, nil
	case RatioOnly:
		return &ratioWriter{w: bw}, nil
	case Matrix:
		n := seqgrp.NSeq()
		return &mtrxWriter{w: bw, seqgrp: seqgrp, ids: ids, mat: matrix.NewFMatrix2d(n, n)}, nil
	}
	return nil, fmt.Errorf("program bug, unknown output mode %d", mode)
}

// preflight catches the things which would stop us half way through,
// so we never write part of an answer.
func preflight(seqgrp *seq.SeqGrp, mode Mode) error {
	if err := seqgrp.CheckLengths(); err != nil {
		return err
	}
	if seqgrp.NSeq() < 2 && mode != Matrix {
		return nil // no pairs, so nothing to divide by
	}
	for i, s := range seqgrp.SeqSlc() {
		if s.Ungapped() == 0 {
			return fmt.Errorf("sequence %d \"%s\" is all gaps: %w", i+1, s.Id(), ErrZeroLen)
		}
	}
	return nil
}

// Write compares all pairs in seqgrp and writes them to w. If the data
// is bad, nothing is written.
func Write(w io.Writer, seqgrp *seq.SeqGrp, mode Mode) error {
	if seqgrp.NSeq() == 0 {
		return errors.New("no sequences to compare")
	}
	if err := preflight(seqgrp, mode); err != nil {
		return err
	}
	rw, err := newRowWriter(w, seqgrp, mode)
	if err != nil {
		return err
	}
	if err := ForPairs(seqgrp, rw.row); err != nil {
		return err
	}
	return rw.finish()
}
