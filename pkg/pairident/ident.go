// 19 Oct 2026

package pairident

import (
	"errors"
	"fmt"
	"math"

	"github.com/andrew-torda/pairident/pkg/seq"
	. "github.com/andrew-torda/pairident/pkg/seq/common"
)

// ErrZeroLen means a sequence has nothing but gaps, so an identity
// relative to its length makes no sense.
var ErrZeroLen = errors.New("zero ungapped length")

// Counts is what we find when we walk down the columns of two aligned
// sequences. Columns where both have a gap are not counted anywhere.
type Counts struct {
	Ident    int // same residue, not X
	Mismatch int // different residues, or X against X
	GapOpp   int // residue facing a gap
}

// Compare classifies each column of a against b. The sequences come
// from one alignment, so they must be the same length.
func Compare(a, b []byte) (Counts, error) {
	var c Counts
	if len(a) != len(b) {
		return c, fmt.Errorf("lengths %d and %d: %w", len(a), len(b), seq.ErrLenMismatch)
	}
	for k, x := range a {
		y := b[k]
		switch {
		case x == GapChar && y == GapChar:
		case x == GapChar || y == GapChar:
			c.GapOpp++
		case x == y && x != UnknownChar:
			c.Ident++
		default: // different, or both X
			c.Mismatch++
		}
	}
	return c, nil
}

// Identity is the fraction of identical residues, relative to the
// shorter of the two ungapped lengths.
func Identity(c Counts, lenA, lenB int) (float64, error) {
	d := min(lenA, lenB)
	if d == 0 {
		return math.NaN(), ErrZeroLen
	}
	return float64(c.Ident) / float64(d), nil
}

// ForPairs compares every sequence with every one before it and calls
// fn with the result. Pairs come as (1,0), (2,0), (2,1), (3,0) ...
// so there are n(n-1)/2 calls. The first error stops everything.
func ForPairs(seqgrp *seq.SeqGrp, fn func(i, j int, c Counts, ident float64) error) error {
	slc := seqgrp.SeqSlc()
	for i := range slc {
		for j := 0; j < i; j++ {
			c, err := Compare(slc[i].GetSeq(), slc[j].GetSeq())
			if err != nil {
				return fmt.Errorf("comparing %s with %s: %w", slc[i].Id(), slc[j].Id(), err)
			}
			ident, err := Identity(c, slc[i].Ungapped(), slc[j].Ungapped())
			if err != nil {
				return fmt.Errorf("comparing %s with %s: %w", slc[i].Id(), slc[j].Id(), err)
			}
			if err := fn(i, j, c, ident); err != nil {
				return err
			}
		}
	}
	return nil
}
