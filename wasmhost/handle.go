// Package wasmhost is the thin external-boundary adapter described in
// spec.md §6: it marshals raw byte buffers in and TSV/string reports
// out, and owns the single process-wide Index handle a handleless host
// runtime (e.g. a WASM/JS worker dispatch layer) expects. It contains
// no engine logic of its own — every operation delegates straight into
// package swiftamr, which treats the Index as an explicit, caller-owned
// value (SPEC_FULL.md §7).
package wasmhost

import (
	"bytes"
	"sync"

	"github.com/swiftamr/swiftamr"
)

// Handle is the one live Index a host holds a reference to. Every
// operation takes the mutex, so concurrent calls are serialized rather
// than overlapped (spec.md §5 "Shared resources"), matching the
// documented single-threaded, cooperative scheduling model.
type Handle struct {
	mu    sync.Mutex
	index *swiftamr.Index
}

// NewHandle returns an empty handle with no index loaded.
func NewHandle() *Handle {
	return &Handle{}
}

// BuildIndex implements the build_index wire operation. It returns the
// non-negative gene count on success, or -1 on allocation failure or
// zero-length input (spec.md §6). A new Build atomically replaces any
// prior Index (I5): all prior Lookup/Align results obtained through
// this Handle become meaningless once this returns, though Go's
// garbage collector — not an explicit free — reclaims the old Index.
func (h *Handle) BuildIndex(fastaBytes []byte) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	ix := swiftamr.NewIndex()
	n, err := ix.BuildFromFASTA(fastaBytes)
	if err != nil {
		return -1
	}
	h.index = ix
	return n
}

// AlignFASTQ implements the align_fastq wire operation: a UTF-8 TSV
// report, owned by the caller after return. If no index has been
// built, the first row begins with "ERROR:" per spec.md §6/§7
// (PreconditionViolated).
func (h *Handle) AlignFASTQ(fastqBytes []byte) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	var buf bytes.Buffer
	if h.index == nil {
		swiftamr.ErrorTSV(&buf, swiftamr.ErrNoIndex.Error())
		return buf.String()
	}

	alignments := h.index.AlignFASTQ(fastqBytes)
	if err := swiftamr.WriteTSV(&buf, h.index, alignments); err != nil {
		buf.Reset()
		swiftamr.ErrorTSV(&buf, err.Error())
	}
	return buf.String()
}

// GetStats implements the get_stats wire operation.
func (h *Handle) GetStats() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.index.Stats()
}

// Cleanup implements the cleanup wire operation. Idempotent: calling
// it with no index loaded is a no-op.
func (h *Handle) Cleanup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.index = nil
}
