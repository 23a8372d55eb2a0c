package swiftamr

import "errors"

// ErrNoIndex is returned (or reported to the host as a status string)
// when an operation that requires a built index is attempted before
// any Build has completed.
var ErrNoIndex = errors.New("swiftamr: no index loaded")

// ErrEmptyInput is returned by BuildFromFASTA for a zero-length buffer
// or one containing no '>' records.
var ErrEmptyInput = errors.New("swiftamr: empty or malformed FASTA input")

// ErrAllocFailed stands in for the source implementation's allocation
// failures. Go callers will essentially never observe this outside of
// pathological inputs, but it is kept as a distinct sentinel so the
// host boundary (wasmhost) can map it to the wire-level -1/ERROR:
// signaling spec.md requires.
var ErrAllocFailed = errors.New("swiftamr: allocation failed")

// ErrTruncated is returned instead of silently truncating a gene name
// or gene sequence when Index.StrictTruncation is enabled. FASTQ read
// names are always truncated silently.
var ErrTruncated = errors.New("swiftamr: name or sequence exceeded length ceiling")
