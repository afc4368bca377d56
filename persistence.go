package ngramcore

import (
	"fmt"
	"log/slog"
)

// ═══════════════════════════════════════════════════════════════════════════════
// PERSISTENCE BRIDGE (C7)
// ═══════════════════════════════════════════════════════════════════════════════
// Store sits between the in-memory accumulator and the external blob
// store: it is the only place that calls the codec's Encode/Decode against
// real persisted bytes, one token's posting list at a time.
// ═══════════════════════════════════════════════════════════════════════════════

// Store bridges the in-memory index to an external BlobStore, encoding and
// decoding posting lists with a fixed Codec.
type Store struct {
	Blobs BlobStore
	Codec *Codec
	Log   *slog.Logger
}

// NewStore creates a Store. If log is nil, slog.Default() is used.
func NewStore(blobs BlobStore, codec *Codec, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{Blobs: blobs, Codec: codec, Log: log}
}

// Fetch retrieves and decodes the persisted posting list for tokenID. An
// empty stored blob (never-seen token) yields an empty list, not an error.
func (s *Store) Fetch(tokenID uint32) ([]Posting, uint32, error) {
	docsCount, blob, err := s.Blobs.GetPostings(tokenID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrBlobStore, err)
	}
	if len(blob) == 0 {
		return nil, 0, nil
	}

	postings, err := s.Codec.Decode(blob, docsCount)
	if err != nil {
		return nil, 0, err
	}
	return postings, docsCount, nil
}

// Update merges entry's in-memory postings into whatever is already
// persisted for entry.TokenID, re-encodes, and stores the result as an
// atomic replacement of the prior blob.
//
// If the fetch step fails, the update is abandoned and logged rather than
// propagated: the persistent store is left untouched for this token, and
// put_postings is never called with a partial or stale blob.
func (s *Store) Update(entry *IndexEntry) error {
	existing, existingDocsCount, err := s.Fetch(entry.TokenID)
	if err != nil {
		s.Log.Error("persistence: fetch failed, update abandoned",
			"token_id", entry.TokenID, "error", err)
		return nil
	}

	merged, err := MergePostings(existing, entry.Postings)
	if err != nil {
		return fmt.Errorf("token %d: %w", entry.TokenID, err)
	}
	docsCount := existingDocsCount + entry.DocsCount

	totalDocuments, err := s.Blobs.DocumentCount()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBlobStore, err)
	}

	blob, err := s.Codec.Encode(merged, docsCount, totalDocuments)
	if err != nil {
		return err
	}

	if err := s.Blobs.PutPostings(entry.TokenID, docsCount, blob); err != nil {
		return fmt.Errorf("%w: %v", ErrBlobStore, err)
	}
	return nil
}
