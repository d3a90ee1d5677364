package seq

var SetFastaRdSize = setFastaRdSize

const DefaultReadSize = defaultReadSize

var CountNonGap = countNonGap
