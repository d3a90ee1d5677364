// 3 Aug 2020

package seq

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Readfile takes a filename and reads sequences from it.
// The file is mapped into memory rather than read through a buffer.
// Unless s_opts says otherwise, the sequences must all have the same
// length. It returns a SeqGrp and error.
func Readfile(fname string, s_opts *Options) (*SeqGrp, error) {
	if s_opts == nil {
		s_opts = &Options{}
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer fp.Close()

	fi, err := fp.Stat()
	switch {
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	case fi.IsDir():
		return nil, fmt.Errorf("%w: %s is a directory", ErrLoad, fname)
	case fi.Size() == 0: // mmap will not map an empty file
		return nil, fmt.Errorf("%w: %s is empty, no sequences found", ErrLoad, fname)
	}

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: mapping %s: %w", ErrLoad, fname, err)
	}
	defer mm.Unmap()

	seqgrp := new(SeqGrp)
	if err := ReadFasta(bytes.NewReader(mm), seqgrp, s_opts); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if !s_opts.DiffLenSeq {
		if err := seqgrp.CheckLengths(); err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
	}
	if s_opts.Vbsty > 0 {
		fmt.Fprintln(os.Stderr, "read", seqgrp.NSeq(), seqgrp.GetType(),
			"sequences, length", seqgrp.GetLen(), "from", fname)
	}
	return seqgrp, nil
}
