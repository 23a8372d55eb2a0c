package swiftamr

import "bytes"

// fastaRecord is one parsed, not-yet-truncated FASTA record: the
// header text verbatim (minus its leading '>' and trailing \r\n) and
// its uppercased, whitespace-stripped sequence.
type fastaRecord struct {
	name     []byte
	sequence []byte
}

// parseFASTA splits data into records. A '>' only starts a new record
// when it appears at the start of the buffer or immediately after a
// newline — this is the "safe rule" spec.md §9 names to avoid treating
// a '>' that is merely part of a header's text as a second record
// boundary. The sequence is every non-whitespace byte between the
// header's terminating newline and the next record-starting '>' (or
// end of input), uppercased.
func parseFASTA(data []byte) []fastaRecord {
	var records []fastaRecord

	i := 0
	n := len(data)
	atLineStart := true

	for i < n {
		if data[i] == '>' && atLineStart {
			i++ // consume '>'
			headerStart := i
			for i < n && data[i] != '\n' {
				i++
			}
			header := trimCR(data[headerStart:i])
			if i < n {
				i++ // consume '\n'
			}

			seqStart := i
			for i < n {
				if data[i] == '>' && atBOLAfter(data, i) {
					break
				}
				i++
			}
			seq := extractSequence(data[seqStart:i])

			records = append(records, fastaRecord{name: header, sequence: seq})
			atLineStart = i >= n || data[i-1] == '\n'
			continue
		}

		atLineStart = data[i] == '\n'
		i++
	}

	return records
}

// atBOLAfter reports whether byte index i, known to hold '>', is at
// the beginning of a line (i.e. i==0 or data[i-1]=='\n').
func atBOLAfter(data []byte, i int) bool {
	return i == 0 || data[i-1] == '\n'
}

func trimCR(b []byte) []byte {
	b = bytes.TrimRight(b, "\r")
	return b
}

// extractSequence strips all whitespace and uppercases the remaining
// bytes, matching spec.md §4.3's "all non-whitespace bytes ...
// uppercased".
func extractSequence(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		}
		out = append(out, upper(c))
	}
	return out
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// BuildFromFASTA parses an immutable byte range presumed to be FASTA
// and adds one gene per non-empty record, in record order (I1).
// Records with an empty sequence (header with no bases) do not add a
// gene. Returns the count of genes successfully added, or
// ErrEmptyInput if the buffer is empty or contains no '>' records.
func (ix *Index) BuildFromFASTA(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}

	records := parseFASTA(data)
	if len(records) == 0 {
		return 0, ErrEmptyInput
	}

	added := 0
	for _, rec := range records {
		if len(rec.sequence) == 0 {
			continue
		}
		if _, err := ix.AddGene(string(rec.name), rec.sequence); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
