package swiftamr

import (
	"fmt"
	"io"
)

// NoHit is the sentinel best_gene_id value for a read with zero
// k-mer matches against the index (I6).
const NoHit = -1

// ReadAlignment is the result of aligning one read against an Index.
// The caller owns ReadName; a batch of ReadAlignments is returned as
// an ordered sequence the caller owns (spec.md §3 Ownership).
type ReadAlignment struct {
	ReadName          string
	BestGeneID        int
	Score             uint32
	Coverage          float64
	Identity          float64
	TotalKmersScanned uint32
}

// noHitAlignment builds the canonical zero-hit result (I6).
func noHitAlignment(readName string, scanned uint32) ReadAlignment {
	return ReadAlignment{
		ReadName:          readName,
		BestGeneID:        NoHit,
		Score:             0,
		Coverage:          0.0,
		Identity:          0.0,
		TotalKmersScanned: scanned,
	}
}

// WriteTSV renders a batch of alignments as the reference TSV report:
// one header row then one row per read, in the order given. gene
// lookups use ix so gene names can be rendered instead of raw ids.
func WriteTSV(w io.Writer, ix *Index, alignments []ReadAlignment) error {
	if _, err := io.WriteString(w, "read_name\tgene\tscore\tcoverage\tidentity\n"); err != nil {
		return err
	}
	for _, a := range alignments {
		geneName := "No_hit"
		if a.BestGeneID != NoHit {
			if g := ix.Gene(a.BestGeneID); g != nil {
				geneName = g.Name
			}
		}
		_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%.4f\t%.4f\n",
			a.ReadName, geneName, a.Score, a.Coverage, a.Identity)
		if err != nil {
			return err
		}
	}
	return nil
}

// ErrorTSV renders the "a TSV whose first row begins with ERROR:"
// shape spec.md §6 requires for align_fastq failures (e.g. no index
// loaded).
func ErrorTSV(w io.Writer, message string) error {
	_, err := fmt.Fprintf(w, "ERROR: %s\n", message)
	return err
}
