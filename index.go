package swiftamr

// kmerHit is one occurrence of a k-mer in a gene.
type kmerHit struct {
	geneID   int32
	position uint32
}

const initialHitsCapacity = 4

// kmerEntry is one node in a bucket's collision chain: all hits for a
// single distinct KmerCode that happens to hash into this bucket. The
// full code is stored alongside the hits so a bucket walk can compare
// codes directly instead of rehashing (I4).
type kmerEntry struct {
	kmer uint32
	hits []kmerHit
}

func (e *kmerEntry) addHit(geneID int, position int) {
	if e.hits == nil {
		e.hits = make([]kmerHit, 0, initialHitsCapacity)
	}
	e.hits = append(e.hits, kmerHit{geneID: int32(geneID), position: uint32(position)})
}

// bucket is one slot of the index's fixed-size hash table: a chain of
// kmerEntry nodes, at most one per distinct KmerCode (I4).
type bucket struct {
	entries []*kmerEntry
}

func (b *bucket) find(kmer uint32) *kmerEntry {
	for _, e := range b.entries {
		if e.kmer == kmer {
			return e
		}
	}
	return nil
}

func (b *bucket) findOrCreate(kmer uint32) *kmerEntry {
	if e := b.find(kmer); e != nil {
		return e
	}
	e := &kmerEntry{kmer: kmer}
	b.entries = append(b.entries, e)
	return e
}

// Index is the process-wide state object: the gene table and the
// k-mer hash table built from it. Building a new Index atomically
// replaces any prior one from the caller's perspective (I5) — there is
// no in-place mutation shared between two Index values.
type Index struct {
	genes  *geneTable
	table  []bucket
	maxLen int
	pre    *prefilter

	// StrictTruncation, when true, makes AddGene/BuildFromFASTA
	// return ErrTruncated instead of silently truncating an
	// over-length name or sequence (an Open Question in spec.md,
	// decided in SPEC_FULL.md §9 item 2).
	StrictTruncation bool
}

// NewIndex allocates an empty Index: a hash table of HashTableSize
// buckets and a gene table of initial capacity 1024 (doubling as it
// grows). This never fails in Go — allocation failure is modeled at
// the host boundary (wasmhost), not here, per spec.md's own "Failure
// semantics" framing of build as the operation that may report
// ResourceExhausted.
func NewIndex() *Index {
	return &Index{
		genes: newGeneTable(),
		table: make([]bucket, HashTableSize),
		pre:   newPrefilter(),
	}
}

// NumGenes returns the number of genes currently in the index.
func (ix *Index) NumGenes() int {
	return ix.genes.len()
}

// Gene returns the gene with the given id, or nil if out of range.
func (ix *Index) Gene(id int) *Gene {
	return ix.genes.get(id)
}

// MaxGeneLength returns the length of the longest gene in the index,
// as reported by Stats. Per-read coverage sets are sized by each hit
// gene's own length, not by this value.
func (ix *Index) MaxGeneLength() int {
	return ix.maxLen
}

// AddGene validates name/sequence length, appends the gene to the
// table, and inserts every valid k-mer window of sequence into the
// hash table. The sequence is assumed already uppercased by the
// caller (FASTA ingest does this); AddGene does not re-case it so it
// can also be used directly by tests with pre-uppercased fixtures.
func (ix *Index) AddGene(name string, sequence []byte) (int, error) {
	if len(name) > MaxGeneName {
		if ix.StrictTruncation {
			return -1, ErrTruncated
		}
		name = name[:MaxGeneName]
	}
	if len(sequence) > MaxSequenceLength {
		if ix.StrictTruncation {
			return -1, ErrTruncated
		}
		sequence = sequence[:MaxSequenceLength]
	}

	g := ix.genes.add(name, sequence)
	if len(sequence) > ix.maxLen {
		ix.maxLen = len(sequence)
	}

	hashes, _ := rollingHashes(sequence)

	last := len(sequence) - KmerSize
	for i := 0; i <= last; i++ {
		if !validWindow(sequence, i) {
			continue
		}
		code, err := Encode(sequence[i : i+KmerSize])
		if err != nil {
			// validWindow already guarantees Encode succeeds;
			// defensive only, never expected to trigger.
			continue
		}
		b := &ix.table[code.Bucket()]
		b.findOrCreate(code.Code).addHit(g.ID, i)
		if i < len(hashes) {
			ix.pre.add(hashes[i])
		}
	}

	return g.ID, nil
}

// Lookup returns the chain entry whose stored k-mer equals code, or
// (nil, false) if no gene contains this k-mer.
func (ix *Index) Lookup(code KmerCode) (*kmerEntry, bool) {
	b := &ix.table[code.Bucket()]
	e := b.find(code.Code)
	if e == nil {
		return nil, false
	}
	return e, true
}
