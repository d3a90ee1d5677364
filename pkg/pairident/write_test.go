package pairident

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/andrew-torda/pairident/pkg/randseq"
	"github.com/andrew-torda/pairident/pkg/seq"
	"github.com/andrew-torda/pairident/pkg/seq/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteModes(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want string
	}{
		{"full", Full, "s1\ts0\t0.60000000\t2\t0\n"},
		{"ratio only", RatioOnly, "0.60000000\n"},
		{"matrix", Matrix, "\ts0\ts1\ns0\t1.0000\t0.6000\ns1\t0.6000\t0.8000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			seqgrp := seq.Str2SeqGrp([]string{"ACGT-A", "ACCT-X"})
			require.NoError(t, Write(&buf, seqgrp, tt.mode))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteBoundaries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, seq.Str2SeqGrp([]string{"ACDEF", "ACDEF"}), Full))
	assert.Equal(t, "s1\ts0\t1.00000000\t0\t0\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, seq.Str2SeqGrp([]string{"AC-GT", "CA-TG"}), Full))
	assert.Equal(t, "s1\ts0\t0.00000000\t4\t0\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, seq.Str2SeqGrp([]string{"A-"}), Full))
	assert.Empty(t, buf.String(), "one sequence, no pairs")
}

// TestWriteNothingOnBadData checks that bad data stops us before
// anything is written.
func TestWriteNothingOnBadData(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, seq.Str2SeqGrp([]string{"ACGT", "ACGT", "AAAA", "----"}), Full)
	assert.ErrorIs(t, err, ErrZeroLen)
	assert.Zero(t, buf.Len())

	err = Write(&buf, seq.Str2SeqGrp([]string{"ACGT", "ACGT", "ACG"}), RatioOnly)
	assert.ErrorIs(t, err, seq.ErrLenMismatch)
	assert.Zero(t, buf.Len())

	err = Write(&buf, seq.Str2SeqGrp([]string{"---"}), Matrix)
	assert.ErrorIs(t, err, ErrZeroLen)
	assert.Zero(t, buf.Len())
}

// randFile writes a random alignment and reads it back.
func randFile(t *testing.T, nseq, length int) *seq.SeqGrp {
	var sb strings.Builder
	args := randseq.RandSeqArgs{Iseed: 1637, Wrtr: &sb, Cmmt: "r", Nseq: nseq, Len: length}
	require.NoError(t, randseq.RandSeqMain(&args))
	fname, err := common.WrtTemp(sb.String())
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(fname) })
	seqgrp, err := seq.Readfile(fname, &seq.Options{})
	require.NoError(t, err)
	return seqgrp
}

func TestWriteRowCount(t *testing.T) {
	const n = 30
	seqgrp := randFile(t, n, 100)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, seqgrp, Full))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, n*(n-1)/2)
	for _, l := range lines {
		assert.Len(t, strings.Split(l, "\t"), 5)
	}
}

func TestWriteIdempotent(t *testing.T) {
	seqgrp := randFile(t, 15, 80)
	for _, mode := range []Mode{Full, RatioOnly, Matrix} {
		var b1, b2 bytes.Buffer
		require.NoError(t, Write(&b1, seqgrp, mode))
		require.NoError(t, Write(&b2, seqgrp, mode))
		assert.Equal(t, b1.Bytes(), b2.Bytes())
	}
}

func TestMatrixSymmetric(t *testing.T) {
	seqgrp := randFile(t, 8, 60)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, seqgrp, Matrix))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	var cells [][]string
	for _, l := range lines[1:] {
		cells = append(cells, strings.Split(l, "\t")[1:])
	}
	for i := range cells {
		for j := range cells {
			assert.Equal(t, cells[i][j], cells[j][i])
		}
	}
}
