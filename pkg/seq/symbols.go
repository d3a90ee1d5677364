// 6 Apr 2020

package seq

// A marker to say what type of sequence we have, protein, DNA, ...
type SeqType byte

const (
	Unchecked SeqType = iota // Has not been looked at yet
	Unknown                  // Really unknown, not a protein or nucleotide
	Protein                  //
	DNA                      //
	RNA                      //
	Ntide                    // Nucleotide
)

// We only read ascii characters, so anything bigger than this is not
// valid.
const (
	MaxSym uint8 = 127
)

func (t SeqType) String() string {
	switch t {
	case Unknown:
		return "unknown"
	case Protein:
		return "protein"
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	case Ntide:
		return "nucleotide"
	}
	return "unchecked"
}

// SetSymUsed fills out the bool slice which says whether or not a
// symbol was used.
func (seqgrp *SeqGrp) SetSymUsed() {
	for _, ss := range seqgrp.seqs {
		for _, c := range ss.GetSeq() {
			if c < MaxSym {
				seqgrp.symUsed[c] = true
			}
		}
	}
	seqgrp.usedKnwn = true
}

// GetType looks at a set of sequences and returns its best guess
// as to the type of file. Lower case is not folded, so "acgt" is
// unknown.
func (seqgrp *SeqGrp) GetType() SeqType {
	if seqgrp.stype != Unchecked { // If the sequence type has been
		return seqgrp.stype //      set, just return it.
	}

	if !seqgrp.usedKnwn {
		seqgrp.SetSymUsed()
	}
	protType := []byte{
		'D', 'E', 'F', 'H', 'I', 'K', 'L', 'M',
		'N', 'P', 'Q', 'R', 'S', 'V', 'W', 'Y'}

	used := seqgrp.symUsed
	seqgrp.stype = Unknown
	for _, c := range protType { // If we see an amino acid code,
		if used[c] { //          it is protein.
			seqgrp.stype = Protein
			return seqgrp.stype
		}
	}

	switch {
	case used['T'] && used['U']:
		seqgrp.stype = Ntide
	case used['A'] && used['C'] && used['G'] && !used['T'] && !used['U']:
		seqgrp.stype = Ntide // cannot tell if it is RNA or DNA
	case used['T']:
		seqgrp.stype = DNA
	case used['U']:
		seqgrp.stype = RNA
	}
	return seqgrp.stype
}
