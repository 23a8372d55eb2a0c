package swiftamr

import (
	"bytes"
	"strings"
	"testing"
)

func buildIndex(t *testing.T, fasta string) *Index {
	t.Helper()
	ix := NewIndex()
	if _, err := ix.BuildFromFASTA([]byte(fasta)); err != nil {
		t.Fatalf("BuildFromFASTA: %v", err)
	}
	return ix
}

// S1. Perfect self-hit.
func TestScenarioPerfectSelfHit(t *testing.T) {
	ix := buildIndex(t, ">geneA\nACGTACGTACGTACGTACGT\n")
	a := ix.AlignRead("r1", []byte("ACGTACGTACGTACGTACGT"))
	if a.BestGeneID != 0 {
		t.Fatalf("expected hit to geneA (id 0), got %d", a.BestGeneID)
	}
	// geneA has period 4, so the 16-mer at position 0 recurs at position
	// 4: the index stores it as a 2-entry hit list, and scoring counts
	// every (gene_id, position) entry a window's k-mer resolves to (see
	// DESIGN.md "Score vs. spec.md §8 worked example"). The read's 5
	// windows therefore score 2+1+1+1+2 = 7, not one point per window.
	if a.Score != 7 {
		t.Errorf("expected score 7, got %d", a.Score)
	}
	// Coverage counts distinct covered k-mer *start* positions over
	// gene length; a 20-base gene with K=16 has only 5 such positions
	// (0..4), all of them hit here, so coverage = 5/20.
	if a.Coverage != 0.25 {
		t.Errorf("expected coverage 0.25, got %.4f", a.Coverage)
	}
	if a.Identity != 1.0 {
		t.Errorf("expected identity 1.0, got %.4f", a.Identity)
	}
}

// S2. No hit.
func TestScenarioNoHit(t *testing.T) {
	ix := buildIndex(t, ">geneA\nACGTACGTACGTACGTACGT\n")
	a := ix.AlignRead("r2", []byte("TTTTTTTTTTTTTTTTTTTT"))
	if a.BestGeneID != NoHit {
		t.Fatalf("expected no hit, got gene %d", a.BestGeneID)
	}
	if a.Score != 0 || a.Coverage != 0.0 || a.Identity != 0.0 {
		t.Errorf("expected zeroed no-hit result, got %+v", a)
	}
}

// S3. Invalid bases: an N poisons every overlapping window.
func TestScenarioInvalidBases(t *testing.T) {
	ix := buildIndex(t, ">g\nAAAAAAAAAAAAAAAAA\n")
	a := ix.AlignRead("r", []byte("AAAAAAAANAAAAAAAAA"))
	if a.BestGeneID != NoHit {
		t.Fatalf("expected no hit due to N poisoning every window, got gene %d", a.BestGeneID)
	}
	if a.Score != 0 {
		t.Errorf("expected score 0, got %d", a.Score)
	}
}

// S4. Tie-break by gene_id: two identical genes, smaller id wins.
func TestScenarioTieBreak(t *testing.T) {
	ix := buildIndex(t, ">gA\nACGTACGTACGTACGTACGT\n>gB\nACGTACGTACGTACGTACGT\n")
	a := ix.AlignRead("r", []byte("ACGTACGTACGTACGTACGT"))
	if a.BestGeneID != 0 {
		t.Fatalf("expected tie broken to gA (id 0), got %d", a.BestGeneID)
	}
	// Both genes share the same period-4 sequence, so each accumulates
	// the same score (see TestScenarioPerfectSelfHit); the tie is broken
	// by gene id, not by score.
	if a.Score != 7 || a.Coverage != 0.25 || a.Identity != 1.0 {
		t.Errorf("unexpected metrics: %+v", a)
	}
}

// S5. Shorter-than-K read: no row, via AlignFASTQ.
func TestScenarioShortRead(t *testing.T) {
	ix := buildIndex(t, ">geneA\nACGTACGTACGTACGTACGT\n")
	fastq := []byte("@short\nACGTACGTAC\n+\nIIIIIIIIII\n")
	alignments := ix.AlignFASTQ(fastq)
	if len(alignments) != 0 {
		t.Fatalf("expected short read skipped, got %d alignments", len(alignments))
	}
}

// S6. Multi-read ordering.
func TestScenarioMultiReadOrdering(t *testing.T) {
	ix := buildIndex(t, ">geneA\nACGTACGTACGTACGTACGT\n")
	fastq := []byte(
		"@rX\nACGTACGTACGTACGTACGT\n+\nIIIIIIIIIIIIIIIIIIII\n" +
			"@rY\nTTTTTTTTTTTTTTTTTTTT\n+\nIIIIIIIIIIIIIIIIIIII\n" +
			"@rZ\nACGTACGTACGTACGTACGT\n+\nIIIIIIIIIIIIIIIIIIII\n",
	)
	alignments := ix.AlignFASTQ(fastq)
	if len(alignments) != 3 {
		t.Fatalf("expected 3 data rows, got %d", len(alignments))
	}
	names := []string{alignments[0].ReadName, alignments[1].ReadName, alignments[2].ReadName}
	if names[0] != "rX" || names[1] != "rY" || names[2] != "rZ" {
		t.Errorf("expected order rX,rY,rZ, got %v", names)
	}
	if alignments[1].BestGeneID != NoHit {
		t.Errorf("expected rY to be a no-hit, got gene %d", alignments[1].BestGeneID)
	}
}

// End-to-end TSV rendering matching S1's expected row exactly.
func TestWriteTSVPerfectSelfHit(t *testing.T) {
	ix := buildIndex(t, ">geneA\nACGTACGTACGTACGTACGT\n")
	fastq := []byte("@r1\nACGTACGTACGTACGTACGT\n+\nIIIIIIIIIIIIIIIIIIII\n")
	alignments := ix.AlignFASTQ(fastq)

	var buf bytes.Buffer
	if err := WriteTSV(&buf, ix, alignments); err != nil {
		t.Fatalf("WriteTSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != "read_name\tgene\tscore\tcoverage\tidentity" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	want := "r1\tgeneA\t7\t0.2500\t1.0000"
	if lines[1] != want {
		t.Errorf("expected %q, got %q", want, lines[1])
	}
}

func TestWriteTSVNoHit(t *testing.T) {
	ix := buildIndex(t, ">geneA\nACGTACGTACGTACGTACGT\n")
	fastq := []byte("@r2\nTTTTTTTTTTTTTTTTTTTT\n+\nIIIIIIIIIIIIIIIIIIII\n")
	alignments := ix.AlignFASTQ(fastq)

	var buf bytes.Buffer
	if err := WriteTSV(&buf, ix, alignments); err != nil {
		t.Fatalf("WriteTSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := "r2\tNo_hit\t0\t0.0000\t0.0000"
	if lines[1] != want {
		t.Errorf("expected %q, got %q", want, lines[1])
	}
}

// Testable Property 6: adding more genes never decreases the winner's
// score for a fixed read.
func TestCoverageMonotonicity(t *testing.T) {
	read := []byte("ACGTACGTACGTACGTACGT")

	ix1 := buildIndex(t, ">geneA\nACGTACGTACGTACGTACGT\n")
	a1 := ix1.AlignRead("r", read)

	ix2 := buildIndex(t, ">geneA\nACGTACGTACGTACGTACGT\n>geneB\nACGTACGTACGTACGTACGTACGT\n")
	a2 := ix2.AlignRead("r", read)

	if a2.Score < a1.Score {
		t.Errorf("score decreased after adding a gene: %d -> %d", a1.Score, a2.Score)
	}
}

// Testable Property 7: identity never exceeds 1.0.
func TestIdentityClamp(t *testing.T) {
	// A short gene with many repeats of the same 16-mer inflates the
	// raw hit count above the number of distinct read windows.
	ix := buildIndex(t, ">g\nACGTACGTACGTACGTACGTACGTACGTACGT\n")
	a := ix.AlignRead("r", []byte("ACGTACGTACGTACGTACGTACGTACGTACGT"))
	if a.Identity > 1.0 {
		t.Errorf("identity exceeded 1.0: %.4f", a.Identity)
	}
}

func TestNoHitForReadShorterThanK(t *testing.T) {
	ix := buildIndex(t, ">geneA\nACGTACGTACGTACGTACGT\n")
	a := ix.AlignRead("short", []byte("ACGTACGTAC"))
	if a.BestGeneID != NoHit {
		t.Errorf("expected no-hit for sub-K read, got %d", a.BestGeneID)
	}
	if a.TotalKmersScanned != 0 {
		t.Errorf("expected 0 kmers scanned, got %d", a.TotalKmersScanned)
	}
}
