package ngramcore

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
)

// ═══════════════════════════════════════════════════════════════════════════════
// POSTING ACCUMULATOR (C3)
// ═══════════════════════════════════════════════════════════════════════════════
// InMemoryIndex is keyed by the 32-bit token id the external TokenService
// assigns rather than by the term string itself, and carries no ranking
// statistics — query-time scoring is out of scope for this core.
//
// Its lifecycle is one document: built empty, populated by AddOccurrence
// calls in token order, merged entry by entry into the fetched persistent
// list via Store.Update (which uses MergePostings), then discarded.
// ═══════════════════════════════════════════════════════════════════════════════

// Posting is one document's contribution to a token's index entry: the
// document id and the strictly ascending positions at which the token
// occurred in it.
type Posting struct {
	DocumentID uint32
	Positions  []uint32
}

// IndexEntry is the full inverted-index entry for one token id.
type IndexEntry struct {
	TokenID        uint32
	DocsCount      uint32
	PositionsCount uint32
	Postings       []Posting // ascending by DocumentID, no duplicate document ids
}

// InMemoryIndex maps token id to inverted-index entry. Insertion order is
// irrelevant and there are never duplicate keys.
type InMemoryIndex struct {
	Entries map[uint32]*IndexEntry
}

// NewInMemoryIndex creates an empty in-memory index.
func NewInMemoryIndex() *InMemoryIndex {
	return &InMemoryIndex{Entries: make(map[uint32]*IndexEntry)}
}

// AddOccurrence records one occurrence of tokenUTF8 at position within
// docID, interning the token via svc.
//
// In index mode (docID != 0), a freshly created entry's initial DocsCount
// is 1 — this occurrence contributes exactly one new document. In query
// mode (docID == 0) the freshly created entry's DocsCount is seeded from
// whatever the token service already has on record, since a query
// contributes no new document to the persistent store.
func (idx *InMemoryIndex) AddOccurrence(svc TokenService, docID uint32, tokenUTF8 []byte, position uint32) error {
	tokenID, serviceDocsCount, err := svc.GetTokenID(tokenUTF8, docID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTokenService, err)
	}

	entry, exists := idx.Entries[tokenID]
	if !exists {
		initialDocsCount := uint32(1)
		if docID == 0 {
			initialDocsCount = serviceDocsCount
		}
		entry = &IndexEntry{
			TokenID:   tokenID,
			DocsCount: initialDocsCount,
			Postings:  []Posting{{DocumentID: docID, Positions: []uint32{position}}},
		}
		entry.PositionsCount = 1
		idx.Entries[tokenID] = entry
		return nil
	}

	last := &entry.Postings[len(entry.Postings)-1]
	last.Positions = append(last.Positions, position)
	entry.PositionsCount++
	return nil
}

// Merge destructively merges other into base: every entry in other is
// removed from it and either moved into base (if base has no entry for
// that token) or merged with base's existing entry. other is empty on
// return.
func (base *InMemoryIndex) Merge(other *InMemoryIndex) error {
	for tokenID, otherEntry := range other.Entries {
		delete(other.Entries, tokenID)

		baseEntry, exists := base.Entries[tokenID]
		if !exists {
			base.Entries[tokenID] = otherEntry
			continue
		}

		merged, err := MergePostings(baseEntry.Postings, otherEntry.Postings)
		if err != nil {
			return fmt.Errorf("merging token %d: %w", tokenID, err)
		}
		baseEntry.Postings = merged
		baseEntry.DocsCount = baseEntry.DocsCount + otherEntry.DocsCount
		baseEntry.PositionsCount = baseEntry.PositionsCount + otherEntry.PositionsCount
	}
	return nil
}

// MergePostings returns a single posting list ordered ascending by document
// id, from two inputs that are each already sorted. Both sides are assumed
// disjoint in document-id domain: this is checked with a roaring bitmap
// built from a, and overlap is reported as ErrOverlappingDomains rather
// than silently resolved, since it is treated as a programming error on
// the caller's part.
func MergePostings(a, b []Posting) ([]Posting, error) {
	if len(a) == 0 {
		return b, nil
	}
	if len(b) == 0 {
		return a, nil
	}

	seen := roaring.New()
	for _, p := range a {
		seen.Add(p.DocumentID)
	}
	for _, p := range b {
		if seen.Contains(p.DocumentID) {
			return nil, fmt.Errorf("document %d: %w", p.DocumentID, ErrOverlappingDomains)
		}
	}

	merged := make([]Posting, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].DocumentID < b[j].DocumentID {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return merged, nil
}
