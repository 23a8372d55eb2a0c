package swiftamr

import "fmt"

// Stats returns the plaintext status string for get_stats (spec.md
// §6). Called on a nil Index (no Build has run yet), it returns the
// literal "No index loaded".
func (ix *Index) Stats() string {
	if ix == nil {
		return "No index loaded"
	}
	nonEmpty, maxChain := ix.chainStats()
	return fmt.Sprintf(
		"genes=%d hash_table_size=%d occupied_buckets=%d longest_chain=%d max_gene_length=%d",
		ix.NumGenes(), HashTableSize, nonEmpty, maxChain, ix.maxLen,
	)
}

// chainStats walks the hash table once to report how many buckets
// hold at least one entry and the longest collision chain observed —
// useful diagnostics for "AMR databases are small-to-medium but highly
// redundant" (spec.md §4.2 rationale).
func (ix *Index) chainStats() (nonEmpty, maxChain int) {
	for i := range ix.table {
		n := len(ix.table[i].entries)
		if n == 0 {
			continue
		}
		nonEmpty++
		if n > maxChain {
			maxChain = n
		}
	}
	return
}
