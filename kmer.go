// Copyright © 2018 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package swiftamr is an in-memory k-mer alignment engine for detecting
// antimicrobial-resistance genes in short-read sequencing data.
package swiftamr

import "errors"

// KmerSize is the fixed k-mer length used throughout the index and aligner.
const KmerSize = 16

// HashTableSize is the fixed number of buckets in the index's hash table.
const HashTableSize = 1 << 24

// MaxGeneName is the usable length of a gene/read name, in bytes.
const MaxGeneName = 255

// MaxSequenceLength caps a single FASTA record's sequence length.
const MaxSequenceLength = 100 << 20

// ErrInvalidBase means a byte outside {A,C,G,T,a,c,g,t} was found in a
// k-mer window. Unlike IUPAC-folding codecs, no ambiguity code is
// substituted: the window is simply unencodable.
var ErrInvalidBase = errors.New("swiftamr: invalid base in k-mer window")

// bit2base maps a 2-bit code back to its base.
var bit2base = [4]byte{'A', 'C', 'G', 'T'}

// KmerCode is a canonical 32-bit encoding of one KmerSize-base window:
// A=00 C=01 G=10 T=11, packed big-endian (the first base occupies the
// most-significant pair of bits).
type KmerCode struct {
	Code uint32
}

// Encode packs a KmerSize-byte window into a KmerCode. It returns
// ErrInvalidBase if any byte in the window is not one of
// {A,C,G,T,a,c,g,t}; the window must then be skipped by the caller
// (index build or read alignment), never substituted or indexed.
func Encode(kmer []byte) (KmerCode, error) {
	if len(kmer) != KmerSize {
		return KmerCode{}, ErrInvalidBase
	}
	var code uint32
	for i := 0; i < KmerSize; i++ {
		code <<= 2
		switch kmer[i] {
		case 'A', 'a':
			code |= 0
		case 'C', 'c':
			code |= 1
		case 'G', 'g':
			code |= 2
		case 'T', 't':
			code |= 3
		default:
			return KmerCode{}, ErrInvalidBase
		}
	}
	return KmerCode{Code: code}, nil
}

// Decode reverses Encode, returning the canonical uppercase representation.
func Decode(code KmerCode) []byte {
	kmer := make([]byte, KmerSize)
	c := code.Code
	for i := KmerSize - 1; i >= 0; i-- {
		kmer[i] = bit2base[c&3]
		c >>= 2
	}
	return kmer
}

// Bytes returns the kmer as an uppercase byte slice.
func (kcode KmerCode) Bytes() []byte {
	return Decode(kcode)
}

// String returns the kmer as an uppercase string.
func (kcode KmerCode) String() string {
	return string(Decode(kcode))
}

// Bucket returns the hash-table bucket this code falls into.
func (kcode KmerCode) Bucket() uint32 {
	return kcode.Code % HashTableSize
}

// validWindow reports whether seq[off:off+KmerSize] contains only
// {A,C,G,T,a,c,g,t}, without allocating. It is the validity probe used
// by AddGene and AlignRead to decide whether a window is worth
// encoding at all (I2).
func validWindow(seq []byte, off int) bool {
	for i := 0; i < KmerSize; i++ {
		switch seq[off+i] {
		case 'A', 'a', 'C', 'c', 'G', 'g', 'T', 't':
		default:
			return false
		}
	}
	return true
}
