package brokenio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andrew-torda/pairident/pkg/brokenio"
)

// TestNeverBreaks checks that by default everything goes through.
func TestNeverBreaks(t *testing.T) {
	const s = "> s1\nACGT\n"
	r := brokenio.NewReader(io.NopCloser(strings.NewReader(s)))
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatal("unbroken reader gave", err)
	}
	if string(b) != s {
		t.Fatalf("got \"%s\" wanted \"%s\"", b, s)
	}
}

// TestFailAfter checks we get exactly n bytes, then the error
func TestFailAfter(t *testing.T) {
	s := strings.Repeat("A", 100)
	for _, n := range []int{0, 1, 17, 99} {
		r := brokenio.NewReader(io.NopCloser(strings.NewReader(s)))
		r.SetFailAfter(n)
		b, err := io.ReadAll(r)
		if !errors.Is(err, brokenio.ErrBroken) {
			t.Fatal("wanted ErrBroken, got", err)
		}
		if len(b) != n {
			t.Fatalf("got %d bytes before breaking, wanted %d", len(b), n)
		}
	}
}

func TestZeroFile(t *testing.T) {
	r := brokenio.NewReader(io.NopCloser(strings.NewReader("> s1\nA")))
	r.SetZeroFile(true)
	var buf [10]byte
	if n, err := r.Read(buf[:]); n != 0 || err != io.EOF {
		t.Fatal("zero file gave", n, err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
}
