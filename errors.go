package ngramcore

import "errors"

// ═══════════════════════════════════════════════════════════════════════════════
// ERROR DEFINITIONS
// ═══════════════════════════════════════════════════════════════════════════════
// Package-level sentinel errors, so callers can compare with errors.Is even
// after a call site has wrapped one with fmt.Errorf("...: %w", ...) for
// extra context (token id, byte offset, and so on).
// ═══════════════════════════════════════════════════════════════════════════════
var (
	// ErrAllocation reports that a buffer or map could not be grown. Codec
	// also returns it for an unknown compression mode.
	ErrAllocation = errors.New("ngramcore: allocation failed")

	// ErrDecodeCorrupt reports a bit stream that ran out mid-code, or a
	// decoded posting list whose entry count does not match its header.
	ErrDecodeCorrupt = errors.New("ngramcore: posting list decode error")

	// ErrTokenService reports a failure from the external token-id service.
	ErrTokenService = errors.New("ngramcore: token service failed")

	// ErrBlobStore reports a failure from the external blob store.
	ErrBlobStore = errors.New("ngramcore: blob store failed")

	// ErrOverlappingDomains reports that MergePostings was called with two
	// posting lists sharing a document id; this is treated as a programming
	// error rather than a data condition to recover from.
	ErrOverlappingDomains = errors.New("ngramcore: merge called with overlapping document-id domains")
)
