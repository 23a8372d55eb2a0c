package swiftamr

// AlignRead computes the ReadAlignment for one read of length L >= K
// by scanning every valid k-mer window, accumulating a per-gene score
// and a per-gene sparse coverage set, then picking the highest-scoring
// gene (ties broken by smallest gene id — first inserted wins).
//
// Score and coverage scratch state live only for the duration of this
// call (spec.md §4.4 "Memory discipline"); nothing here is retained
// across reads.
//
// Per spec.md §4.4 step 2, a window's score contribution is one point
// per (gene_id, position) entry its k-mer resolves to in the index —
// not one point per window. A gene with internal repeats (e.g. a
// periodic sequence) stores some k-mers under multi-entry hit lists,
// so a read built from such a gene can score higher than its window
// count; see DESIGN.md for the worked reconciliation against spec.md
// §8's S1 example.
func (ix *Index) AlignRead(readName string, sequence []byte) ReadAlignment {
	l := len(sequence)
	if l < KmerSize {
		return noHitAlignment(readName, 0)
	}

	score := make(map[int]uint32)
	covered := make(map[int]*bitset)
	var scanned uint32

	hashes, _ := rollingHashes(sequence)

	last := l - KmerSize
	for i := 0; i <= last; i++ {
		if !validWindow(sequence, i) {
			continue
		}
		if i < len(hashes) && !ix.pre.mayContain(hashes[i]) {
			// Prefilter guarantees no hit for this window; skip
			// the exact Encode+Lookup entirely.
			scanned++
			continue
		}
		code, err := Encode(sequence[i : i+KmerSize])
		if err != nil {
			continue
		}
		scanned++

		entry, ok := ix.Lookup(code)
		if !ok {
			continue
		}
		for _, hit := range entry.hits {
			gid := int(hit.geneID)
			score[gid]++

			bs, ok := covered[gid]
			if !ok {
				gene := ix.Gene(gid)
				bs = newBitset(gene.Length())
				covered[gid] = bs
			}
			bs.set(int(hit.position))
		}
	}

	bestGene, bestScore := NoHit, uint32(0)
	for gid, s := range score {
		if s > bestScore || (s == bestScore && gid < bestGene) {
			bestGene, bestScore = gid, s
		}
	}
	if bestGene == NoHit || bestScore == 0 {
		return noHitAlignment(readName, scanned)
	}

	gene := ix.Gene(bestGene)
	geneLen := gene.Length()

	coverage := 0.0
	if geneLen > 0 {
		coverage = float64(covered[bestGene].count(geneLen)) / float64(geneLen)
	}

	maxPossible := geneLen
	if l < maxPossible {
		maxPossible = l
	}
	maxPossible = maxPossible - KmerSize + 1

	identity := 0.0
	if maxPossible > 0 {
		identity = float64(bestScore) / float64(maxPossible)
		if identity > 1.0 {
			identity = 1.0
		}
	}

	return ReadAlignment{
		ReadName:          readName,
		BestGeneID:        bestGene,
		Score:             bestScore,
		Coverage:          coverage,
		Identity:          identity,
		TotalKmersScanned: scanned,
	}
}

// AlignFASTQ parses fastqBytes record by record and returns one
// ReadAlignment per non-skipped read, in input order (spec.md §5
// "Ordering guarantees"). Reads shorter than KmerSize bases are
// silently skipped and do not appear in the returned batch (spec.md
// §4.5 "Read skipping").
func (ix *Index) AlignFASTQ(fastqBytes []byte) []ReadAlignment {
	records := parseFASTQ(fastqBytes)
	alignments := make([]ReadAlignment, 0, len(records))
	for _, rec := range records {
		if len(rec.sequence) < KmerSize {
			continue
		}
		alignments = append(alignments, ix.AlignRead(string(rec.name), rec.sequence))
	}
	return alignments
}
