package ngramcore

// ═══════════════════════════════════════════════════════════════════════════════
// EXTERNAL COLLABORATORS
// ═══════════════════════════════════════════════════════════════════════════════
// These interfaces are the seam between this package's core (tokenization,
// accumulation, codec) and everything outside its scope: the key/value
// database, the CLI, corpus crawling. The core only ever calls through
// these interfaces; it never assumes a particular storage engine.
// ═══════════════════════════════════════════════════════════════════════════════

// TokenService assigns and looks up token ids for UTF-8 token bytes.
//
// GetTokenID interns tokenUTF8, assigning a fresh id the first time it is
// seen. docID is the document currently being indexed; passing docID 0
// means "lookup only, do not record a new document occurrence" (used in
// query mode). It returns the token id and the token's current docs_count
// as already recorded by the persistent store, which the accumulator uses
// to seed a freshly created entry in query mode.
type TokenService interface {
	GetTokenID(tokenUTF8 []byte, docID uint32) (tokenID uint32, currentDocsCount uint32, err error)
}

// BlobStore fetches and stores encoded posting-list blobs by token id, and
// reports the size of the indexed corpus for Golomb parameter selection.
type BlobStore interface {
	GetPostings(tokenID uint32) (docsCount uint32, blob []byte, err error)
	PutPostings(tokenID uint32, docsCount uint32, blob []byte) error
	DocumentCount() (uint32, error)
}

// Compress selects the posting-list wire format. It is chosen once at
// process startup and must stay the same for encode and decode over the
// lifetime of a database.
type Compress int

const (
	// CompressNone stores postings as a flat concatenation of
	// (doc id, positions count, positions) records.
	CompressNone Compress = iota
	// CompressGolomb Golomb-codes the gap sequences of both the doc-id
	// list and each posting's position list.
	CompressGolomb
)

// String renders the flag for logging.
func (c Compress) String() string {
	switch c {
	case CompressNone:
		return "none"
	case CompressGolomb:
		return "golomb"
	default:
		return "unknown"
	}
}
