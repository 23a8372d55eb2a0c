package swiftamr

// fastqRecord is one parsed FASTQ read: the read name (owned, already
// truncated) and its uppercased, whitespace-stripped sequence.
// Quality is discarded entirely — spec.md never scores on it.
type fastqRecord struct {
	name     []byte
	sequence []byte
}

// parseFASTQ scans four-line FASTQ records out of data. A record
// starts with a line beginning with '@' that is itself at the start
// of a line (buffer start or right after '\n') — the same column-0
// policy used for FASTA's '>' (SPEC_FULL.md §9 item 1). The sequence
// may be soft-wrapped across more than one line; all of it is
// collected (whitespace stripped, uppercased) up to the line beginning
// with '+'. The quality block is then skipped by exact byte count
// (the stripped sequence's length), not by scanning for a sigil — this
// sidesteps entirely the classic "quality line starts with '@'"
// ambiguity spec.md §9 calls out, since we never need to guess where
// quality ends.
func parseFASTQ(data []byte) []fastqRecord {
	var records []fastqRecord

	i := 0
	n := len(data)

	for i < n {
		if data[i] != '@' || !atBOLAfter(data, i) {
			i++
			continue
		}

		i++ // consume '@'
		headerStart := i
		for i < n && data[i] != '\n' {
			i++
		}
		name := readNameFromHeader(trimCR(data[headerStart:i]))
		if i < n {
			i++ // consume '\n'
		}

		seq := make([]byte, 0, 256)
		for i < n && !(data[i] == '+' && atBOLAfter(data, i)) {
			lineStart := i
			for i < n && data[i] != '\n' {
				i++
			}
			seq = appendSequenceBytes(seq, data[lineStart:i])
			if i < n {
				i++ // consume '\n'
			}
		}

		if i >= n {
			// truncated record: no '+' separator found.
			break
		}

		// consume the '+...' separator line
		for i < n && data[i] != '\n' {
			i++
		}
		if i < n {
			i++ // consume '\n'
		}

		// skip exactly len(seq) quality bytes, ignoring newlines
		// so soft-wrapped quality lines are tolerated the same
		// way sequence lines are.
		remaining := len(seq)
		for i < n && remaining > 0 {
			if data[i] != '\n' && data[i] != '\r' {
				remaining--
			}
			i++
		}
		// consume to end of the quality line's newline, if any
		for i < n && data[i] != '\n' {
			i++
		}
		if i < n {
			i++
		}

		records = append(records, fastqRecord{name: name, sequence: seq})
	}

	return records
}

// appendSequenceBytes appends b to seq, stripping whitespace and
// uppercasing, the same treatment extractSequence gives FASTA bodies.
func appendSequenceBytes(seq, b []byte) []byte {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\r':
			continue
		}
		seq = append(seq, upper(c))
	}
	return seq
}

// readNameFromHeader truncates at the first whitespace byte (the read
// name is "the run of non-whitespace bytes after @") and then to
// MaxGeneName bytes.
func readNameFromHeader(header []byte) []byte {
	end := len(header)
	for i, c := range header {
		if c == ' ' || c == '\t' {
			end = i
			break
		}
	}
	name := header[:end]
	if len(name) > MaxGeneName {
		name = name[:MaxGeneName]
	}
	return name
}
