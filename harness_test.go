package ngramcore

import "testing"

// ═══════════════════════════════════════════════════════════════════════════════
// IN-MEMORY HARNESS TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestMemTokenService_InternsByValue(t *testing.T) {
	svc := NewMemTokenService()

	id1, _, err := svc.GetTokenID([]byte("ab"), 1)
	if err != nil {
		t.Fatalf("GetTokenID failed: %v", err)
	}
	id2, _, err := svc.GetTokenID([]byte("ab"), 2)
	if err != nil {
		t.Fatalf("GetTokenID failed: %v", err)
	}
	if id1 != id2 {
		t.Errorf("same token got different ids: %d, %d", id1, id2)
	}

	id3, _, err := svc.GetTokenID([]byte("cd"), 1)
	if err != nil {
		t.Fatalf("GetTokenID failed: %v", err)
	}
	if id3 == id1 {
		t.Errorf("distinct tokens got the same id %d", id1)
	}
}

func TestMemTokenService_DocsCountTracksDistinctDocuments(t *testing.T) {
	svc := NewMemTokenService()

	svc.GetTokenID([]byte("ab"), 1)
	svc.GetTokenID([]byte("ab"), 1) // same document again, should not double-count
	_, docsCount, _ := svc.GetTokenID([]byte("ab"), 2)

	if docsCount != 2 {
		t.Errorf("docsCount = %d, want 2", docsCount)
	}
}

func TestMemTokenService_QueryModeDoesNotMutateCount(t *testing.T) {
	svc := NewMemTokenService()
	svc.GetTokenID([]byte("ab"), 1)

	_, docsCount, _ := svc.GetTokenID([]byte("ab"), 0)
	if docsCount != 1 {
		t.Errorf("docsCount after query-mode lookup = %d, want 1", docsCount)
	}
}

func TestMemBlobStore_PutThenGet(t *testing.T) {
	store := NewMemBlobStore()
	blob := []byte{1, 2, 3}

	if err := store.PutPostings(5, 2, blob); err != nil {
		t.Fatalf("PutPostings failed: %v", err)
	}

	docsCount, got, err := store.GetPostings(5)
	if err != nil {
		t.Fatalf("GetPostings failed: %v", err)
	}
	if docsCount != 2 || len(got) != 3 {
		t.Errorf("GetPostings() = (%d, %v), want (2, %v)", docsCount, got, blob)
	}
}

func TestMemBlobStore_DocumentCount(t *testing.T) {
	store := NewMemBlobStore()
	store.RegisterDocument()
	store.RegisterDocument()
	store.RegisterDocument()

	count, err := store.DocumentCount()
	if err != nil || count != 3 {
		t.Errorf("DocumentCount() = (%d, %v), want (3, nil)", count, err)
	}
}
