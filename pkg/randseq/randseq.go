// 31 July 2020

// Package randseq writes random alignments in fasta format. Every
// sequence has the same length, unless we are asked to break one.
// White space is sprinkled into the sequences so readers have
// something to chew on.
package randseq

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"sync"
)

const (
	nPadWhite = 9 // For padding for adding whitespace to sequences
)

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Cmmt  string    // Comment for the sequences
	Nseq  int       // number of sequences
	Len   int       // Length of sequences
	NoGap bool      // Do not add gaps
	NoX   bool      // Do not add unknown residues
	MkErr bool      // Add an error, by changing a length
}

// alphabet gives us the letters to pick from. Residues are repeated so
// gaps and X are rarer than any one amino acid.
func alphabet(args *RandSeqArgs) []byte {
	letters := []byte("ACDEFGHIKLMNPQRSTVWY")
	letters = append(letters, letters...)
	if !args.NoGap {
		letters = append(letters, '-', '-', '-')
	}
	if !args.NoX {
		letters = append(letters, 'X')
	}
	return letters
}

// getseq returns a byte slice with a random sequence in it
func getseq(seqlen int, letters []byte, rnd *rand.Rand) []byte {
	space := seqlen + (seqlen / nPadWhite) // about 10% rubbish white space
	ret := make([]byte, seqlen, space)
	l := int32(len(letters))
	for i := 0; i < seqlen; i++ {
		ret[i] = letters[rnd.Int31n(l)]
	}
	return ret
}

// addInner is used by addspace to add a space or newline
func addInner(s []byte, n int, c byte, spacernd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := spacernd.Int31n(int32(len(s)))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addspace is given a byte array and adds white characters at random
// positions. We work out how much space is to be used. We flip a coin.
// Heads we don't add a newline. Tails we make about 1/10 (integer 1/9)
// of the spaces to be newlines.
func addspace(s []byte, spacernd *rand.Rand) []byte {
	toAdd := cap(s) - len(s)
	nNL := 0 // Number of new lines to add
	if spacernd.Int31n(2) == 0 {
		nNL = toAdd / 9
	}

	nSpace := toAdd - nNL
	s = addInner(s, nSpace, ' ', spacernd)
	s = addInner(s, nNL, '\n', spacernd)
	return s
}

// writeseq takes a bytestring which is our sequence. It adds a comment
// and sends it out for writing. n is the number of the sequence, so the
// output has comment lines "> something 1, > something 2..."
func writeseq(sChan <-chan []byte, args *RandSeqArgs, wg *sync.WaitGroup, err *error) {
	defer wg.Done()

	w := bufio.NewWriter(args.Wrtr)
	width := len(fmt.Sprintf("%d", args.Nseq))
	spacernd := rand.New(rand.NewSource(args.Iseed + 1))
	var i int
	for s := range sChan {
		i++
		if *err != nil { // keep draining so the sender is not stuck
			continue
		}
		s = addspace(s, spacernd)
		fmt.Fprintf(w, "> %s%0[2]*d\n", args.Cmmt, width, i)
		w.Write(s)
		if _, e := w.Write([]byte{'\n'}); e != nil {
			*err = e
		}
	}
	if *err == nil {
		*err = w.Flush()
	}
}

// RandSeqMain writes random sequences to an io.Writer. With MkErr set,
// the last sequence is one residue short.
func RandSeqMain(args *RandSeqArgs) error {
	var wg sync.WaitGroup
	var wrtErr error
	letters := alphabet(args)
	rnd := rand.New(rand.NewSource(args.Iseed))
	sChan := make(chan []byte)
	wg.Add(1)
	go writeseq(sChan, args, &wg, &wrtErr)
	for i := 0; i < args.Nseq; i++ {
		n := args.Len
		if args.MkErr && i == args.Nseq-1 && n > 0 {
			n--
		}
		sChan <- getseq(n, letters, rnd)
	}
	close(sChan)
	wg.Wait()
	return wrtErr
}
