// brokenio is a wrapper around an io.ReadCloser. It lets us make
// reads go wrong on purpose.
// Typical use: You have a reader for some fasta file. You write
// reader = brokenio.NewReader(reader) to wrap the old reader and then
// say after how many bytes things should break. Everything up to that
// point behaves as before.

package brokenio

import (
	"errors"
	"fmt"
	"io"
)

// ErrBroken is returned by a Read once the reader has broken.
var ErrBroken = errors.New("brokenio: read failed on purpose")

// BrknRdrClsr counts what has gone through it and fails after
// failAfter bytes. A negative failAfter means never fail.
// If verbose is true, print out the amount of data when the file is closed.
type BrknRdrClsr struct {
	rdr_orig  io.ReadCloser // Wrapped reader
	failAfter int
	zeroFile  bool // pretend the file is empty
	nCalled   int
	nByte     int
	verbose   bool
}

// NewReader returns a new Reader - a wrapper around the old one.
// By default it does not break.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{rdr_orig: rIn, failAfter: -1}
}

// SetVerbose sets the verbosity flag to true or false
func (r *BrknRdrClsr) SetVerbose(newV bool) { r.verbose = newV }

// SetFailAfter says how many bytes we pass through before failing.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// SetZeroFile makes the first read return nothing and io.EOF, which
// is what one sees with a zero length file.
func (r *BrknRdrClsr) SetZeroFile(z bool) { r.zeroFile = z }

// Read wraps the original reader. Once failAfter bytes have been
// handed out, it returns ErrBroken. The read that crosses the limit
// is cut short.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.nCalled++
	if r.zeroFile && r.nCalled == 1 {
		return 0, io.EOF
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, fmt.Errorf("after %d bytes: %w", r.nByte, ErrBroken)
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdr_orig.Read(p)
	r.nByte += n
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	return r.rdr_orig.Close()
}
