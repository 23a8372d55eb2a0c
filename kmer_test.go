package swiftamr

import (
	"bytes"
	"math/rand"
	"testing"
)

var randomKmers [][]byte
var randomKmersN = 10000

func init() {
	randomKmers = make([][]byte, randomKmersN)
	for i := 0; i < randomKmersN; i++ {
		randomKmers[i] = make([]byte, KmerSize)
		for j := range randomKmers[i] {
			randomKmers[i][j] = bit2base[rand.Intn(4)]
		}
	}
}

// TestEncodeDecode checks the round-trip property from spec.md §8:
// decode(encode(s)) == uppercase(s) for every valid 16-base string.
func TestEncodeDecode(t *testing.T) {
	for _, mer := range randomKmers {
		code, err := Encode(mer)
		if err != nil {
			t.Fatalf("Encode error: %s", mer)
		}
		if !bytes.Equal(mer, code.Bytes()) {
			t.Errorf("Decode error: %s != %s", mer, code.Bytes())
		}
	}
}

func TestEncodeDecodeLowercase(t *testing.T) {
	mer := []byte("acgtacgtacgtacgt")
	code, err := Encode(mer)
	if err != nil {
		t.Fatalf("Encode error: %s", mer)
	}
	if string(code.Bytes()) != "ACGTACGTACGTACGT" {
		t.Errorf("expected uppercase round-trip, got %s", code.Bytes())
	}
}

func TestEncodeInvalidBase(t *testing.T) {
	cases := [][]byte{
		[]byte("ACGTACGTACGTACGN"), // ambiguity code
		[]byte("ACGTACGTACGTACG "), // whitespace
		[]byte("ACGTACGTACGTACG1"), // digit
		[]byte("ACGTACGTACGTACGY"), // IUPAC, not folded
	}
	for _, c := range cases {
		if _, err := Encode(c); err != ErrInvalidBase {
			t.Errorf("Encode(%s): expected ErrInvalidBase, got %v", c, err)
		}
	}
}

func TestEncodeWrongLength(t *testing.T) {
	if _, err := Encode([]byte("ACGT")); err != ErrInvalidBase {
		t.Errorf("expected ErrInvalidBase for short window, got %v", err)
	}
}

func TestBucketRange(t *testing.T) {
	for _, mer := range randomKmers {
		code, err := Encode(mer)
		if err != nil {
			t.Fatalf("Encode error: %s", mer)
		}
		if code.Bucket() >= HashTableSize {
			t.Errorf("bucket %d out of range [0,%d)", code.Bucket(), HashTableSize)
		}
	}
}

func TestValidWindow(t *testing.T) {
	seq := []byte("ACGTNCGTACGTACGTACGTA")
	if validWindow(seq, 0) {
		t.Errorf("window overlapping N at position 4 should be invalid")
	}
	if !validWindow(seq, 5) {
		t.Errorf("window starting after N should be valid: %s", seq[5:5+KmerSize])
	}
}

var benchMer = []byte("ACGTACGTACGTACGT")
var benchCode KmerCode

func BenchmarkEncode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchCode, _ = Encode(benchMer)
	}
}

func BenchmarkDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Decode(benchCode)
	}
}
