// Reader for fasta format files.

package seq

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// A comment is terminated by a newline. A sequence is terminated by
// the next comment character ">" at the start of a line, or the end
// of input.
const (
	NL       = '\n'
	cmmtChar = '>'
)

type lexer struct {
	rdr    *bufio.Reader
	seqgrp *SeqGrp
	line   []byte // current line, without the newline
	lineno int
	cmmt   string // comment of the sequence being read
	seq    []byte // partial sequence
	err    error
}

const defaultReadSize = 64 * 1024

var rdsize int = defaultReadSize

// setFastaRdSize is only used during testing and benchmarking
func setFastaRdSize(i int) { rdsize = i }

// next reads the next line into l.line. It returns false at the end
// of input or if there was a real error, which is left in l.err.
func (l *lexer) next() bool {
	line, err := l.rdr.ReadBytes(NL)
	if err != nil && err != io.EOF {
		l.err = err
		return false
	}
	if len(line) == 0 { // EOF and nothing left over
		return false
	}
	l.lineno++
	l.line = bytes.TrimRight(line, "\r\n")
	return true
}

// addSeq appends a line of sequence, dropping white space on the way.
func (l *lexer) addSeq() {
	const symerr = "line %d: bad sym \"%c\" at position %d after \"%s\""
	for i, c := range l.line {
		switch {
		case isWhite(c):
			continue
		case c >= MaxSym:
			l.err = fmt.Errorf(symerr, l.lineno, c, i, trimStr(l.cmmt, 40))
			return
		}
		l.seq = append(l.seq, c)
	}
}

// flush stores the sequence we have been collecting.
func (l *lexer) flush() bool {
	if len(l.seq) == 0 {
		l.err = fmt.Errorf("line %d: zero length sequence after \"%s\"", l.lineno, trimStr(l.cmmt, 40))
		return false
	}
	l.seqgrp.seqs = append(l.seqgrp.seqs, newSeq(l.cmmt, l.seq))
	l.cmmt = ""
	l.seq = nil
	return true
}

func isWhite(c byte) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\r', '\n':
		return true
	}
	return false
}

type stateFn func(*lexer) stateFn

// gstart skips blank lines until the first comment.
func gstart(l *lexer) stateFn {
	for l.next() {
		if len(bytes.TrimSpace(l.line)) == 0 {
			continue
		}
		if l.line[0] != cmmtChar {
			l.err = fmt.Errorf("line %d: not fasta, expected \"%c\" at start", l.lineno, cmmtChar)
			return nil
		}
		l.cmmt = string(l.line[1:])
		return gseq
	}
	return nil
}

// We are reading a sequence
func gseq(l *lexer) stateFn {
	if !l.next() {
		if l.err == nil {
			l.flush()
		}
		return nil
	}
	if len(l.line) > 0 && l.line[0] == cmmtChar {
		if !l.flush() {
			return nil
		}
		l.cmmt = string(l.line[1:])
		return gseq
	}
	if l.addSeq(); l.err != nil {
		return nil
	}
	return gseq
}

// ReadFasta reads fasta formatted files. Sequences are copied out of
// the reader's buffers, so the caller may throw away whatever rdr
// was reading from.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp, s_opts *Options) (err error) {
	l := lexer{rdr: bufio.NewReaderSize(rdr, rdsize), seqgrp: seqgrp}

	for state := gstart; state != nil; {
		state = state(&l)
	}
	if l.err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, l.err)
	}
	if seqgrp.NSeq() == 0 {
		return fmt.Errorf("%w: no sequences found", ErrLoad)
	}
	return nil
}
