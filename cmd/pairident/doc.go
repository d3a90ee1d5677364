// 19 Oct 2026

/*
Pairident calculates the identity of all pairs of sequences in a multiple
sequence alignment.

Usage:

	pairident -i file.fa [-o out.tsv] [-r | -m] [-v N]

Flags:

	-i, --input=FILE
		The alignment in fasta format. Mandatory.
	-o, --output=FILE
		Where to write results. Default is standard output. The
		directory must exist.
	-r, --ratio
		Only write the identity for each pair.
	-m, --matrix
		Write a square matrix of identities, with sequence names
		across the top and down the side.
	-v N
		Verbosity. Anything above 0 writes a little on standard error.
	-h, --help
		Print usage and exit.

With n sequences there are n(n-1)/2 lines of output. Sequence 2 is
compared with sequence 1, then 3 with 1, 3 with 2, 4 with 1 and so on.
Each line has

	id_i  id_j  identity  mismatches  gaps_opposite

separated by tabs, with identity written to 8 decimal places.

Identity is the number of identical columns divided by the ungapped
length of the shorter of the two sequences. Columns where both sequences
have a gap are ignored. An X is never identical to anything, not even
another X, so two X's count as a mismatch.

The sequence names are the first word after the ">".

All sequences must have the same length. If they do not, or if some
sequence has nothing but gaps, nothing is written and the program stops
with an error. Problems with the command line give exit status 2, other
errors give 1.
*/
package main
