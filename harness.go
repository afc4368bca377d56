package ngramcore

import "sort"

// ═══════════════════════════════════════════════════════════════════════════════
// IN-MEMORY HARNESS
// ═══════════════════════════════════════════════════════════════════════════════
// MemTokenService and MemBlobStore are minimal, non-persistent
// implementations of the two external collaborator interfaces, for tests
// and the demonstrative CLI. Neither is meant to back a real database;
// both trade durability for being trivial to reason about.
// ═══════════════════════════════════════════════════════════════════════════════

// MemTokenService interns tokens in a plain map, assigning ids in
// first-seen order starting at 1 (token id 0 is reserved for "none").
type MemTokenService struct {
	ids       map[string]uint32
	docsCount map[uint32]uint32
	seenDocs  map[uint32]map[uint32]bool
	next      uint32
}

// NewMemTokenService creates an empty token service.
func NewMemTokenService() *MemTokenService {
	return &MemTokenService{
		ids:       make(map[string]uint32),
		docsCount: make(map[uint32]uint32),
		seenDocs:  make(map[uint32]map[uint32]bool),
		next:      1,
	}
}

// GetTokenID implements TokenService.
func (m *MemTokenService) GetTokenID(tokenUTF8 []byte, docID uint32) (uint32, uint32, error) {
	key := string(tokenUTF8)
	id, exists := m.ids[key]
	if !exists {
		id = m.next
		m.next++
		m.ids[key] = id
		m.seenDocs[id] = make(map[uint32]bool)
	}

	if docID != 0 {
		if !m.seenDocs[id][docID] {
			m.seenDocs[id][docID] = true
			m.docsCount[id]++
		}
	}

	return id, m.docsCount[id], nil
}

// MemBlobStore holds encoded posting-list blobs in a plain map, keyed by
// token id, alongside the total number of documents ever registered via
// RegisterDocument.
type MemBlobStore struct {
	blobs     map[uint32][]byte
	docsCount map[uint32]uint32
	totalDocs uint32
}

// NewMemBlobStore creates an empty blob store.
func NewMemBlobStore() *MemBlobStore {
	return &MemBlobStore{
		blobs:     make(map[uint32][]byte),
		docsCount: make(map[uint32]uint32),
	}
}

// GetPostings implements BlobStore. A token never stored returns an empty
// blob and a docs_count of 0.
func (m *MemBlobStore) GetPostings(tokenID uint32) (uint32, []byte, error) {
	return m.docsCount[tokenID], m.blobs[tokenID], nil
}

// PutPostings implements BlobStore, replacing any prior blob for tokenID
// wholesale.
func (m *MemBlobStore) PutPostings(tokenID uint32, docsCount uint32, blob []byte) error {
	m.docsCount[tokenID] = docsCount
	m.blobs[tokenID] = blob
	return nil
}

// DocumentCount implements BlobStore.
func (m *MemBlobStore) DocumentCount() (uint32, error) {
	return m.totalDocs, nil
}

// RegisterDocument records that one more document has entered the corpus,
// for Golomb parameter selection. Not part of the BlobStore interface: a
// real store would derive this from its own document table instead.
func (m *MemBlobStore) RegisterDocument() {
	m.totalDocs++
}

// TokenIDs returns every token id currently interned, ascending, for tests
// that need to enumerate the vocabulary deterministically.
func (m *MemTokenService) TokenIDs() []uint32 {
	ids := make([]uint32, 0, len(m.ids))
	for _, id := range m.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
