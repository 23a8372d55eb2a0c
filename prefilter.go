package swiftamr

import "github.com/will-rowe/nthash"

// prefilterBits sizes the rolling-hash prefilter independently of
// HashTableSize: it only needs to be cheap and low-collision enough to
// skip most non-matching windows before the exact KmerCode lookup, not
// to be collision-free.
const prefilterBits = 1 << 22

// prefilter is an optional, approximate membership sketch of every
// k-mer window actually inserted into the index, built with an ntHash
// rolling hash the way the teacher's minimizer/syncmer Sketch type
// does (sketch.go's use of will-rowe/nthash). It never produces a
// false negative: a window that hashes to an unset bit is guaranteed
// absent from the index, so AlignRead can skip the exact Encode+Lookup
// for it. False positives fall through to the exact path and cost
// nothing but a wasted lookup.
type prefilter struct {
	bits *bitset
}

func newPrefilter() *prefilter {
	return &prefilter{bits: newBitset(prefilterBits)}
}

// rollingHashes returns one ntHash code per window of sequence, in the
// same left-to-right order AddGene/AlignRead walk KmerSize windows in.
// Unlike Encode, it does not validate bases: a window containing N or
// other non-ACGT bytes still gets a hash, so the returned slice has
// exactly len(sequence)-KmerSize+1 entries whenever sequence is at
// least KmerSize long, matching the index of every i in that loop.
func rollingHashes(sequence []byte) ([]uint64, error) {
	last := len(sequence) - KmerSize
	if last < 0 {
		return nil, nil
	}
	hasher, err := nthash.NewHasher(&sequence, uint(KmerSize))
	if err != nil {
		return nil, err
	}
	hashes := make([]uint64, 0, last+1)
	for {
		code, ok := hasher.Next(false)
		if !ok {
			break
		}
		hashes = append(hashes, code)
	}
	return hashes, nil
}

// add marks a window hash as present.
func (p *prefilter) add(h uint64) {
	p.bits.set(int(h % prefilterBits))
}

// mayContain reports whether the window whose ntHash code is h could
// possibly be in the index. false is a definitive no; true may be a
// false positive that the caller resolves with an exact Lookup.
func (p *prefilter) mayContain(h uint64) bool {
	return p.bits.test(int(h % prefilterBits))
}
