package ngramcore

import (
	"encoding/binary"
	"fmt"
	"log/slog"
)

// ═══════════════════════════════════════════════════════════════════════════════
// POSTING-LIST CODEC (C6)
// ═══════════════════════════════════════════════════════════════════════════════
// Codec turns an in-memory posting list into a compact byte blob and back,
// in one of two formats:
//
//   - CompressNone: a flat concatenation of (doc id, positions count,
//     positions...) records, 32-bit ints, no header.
//   - CompressGolomb: a docs_count header, then a Golomb-coded gap stream
//     of document ids, then for each posting a positions_count header and
//     a Golomb-coded gap stream of positions.
//
// Modeled on a small struct wrapping a buffer with phase methods,
// generalized from "skip-list tower structure" phases to "doc-id section,
// then per-posting position sections". 32-bit integer fields are written
// little-endian for portability across machines; see DESIGN.md for why
// that was chosen over host-native order.
// ═══════════════════════════════════════════════════════════════════════════════

// Codec encodes and decodes posting lists in one compression mode.
type Codec struct {
	Compress Compress
}

// NewCodec creates a Codec fixed to the given compression mode for its
// entire lifetime: encode and decode must always agree on the mode.
func NewCodec(c Compress) *Codec {
	return &Codec{Compress: c}
}

// Encode serializes postings (already sorted ascending by DocumentID) into
// a byte blob. totalDocuments is the corpus-wide document count, used only
// by the Golomb mode to pick m_doc; it must be >= docsCount for the
// round-trip guarantee to hold.
func (c *Codec) Encode(postings []Posting, docsCount uint32, totalDocuments uint32) ([]byte, error) {
	switch c.Compress {
	case CompressNone:
		return encodeRaw(postings), nil
	case CompressGolomb:
		return encodeGolombPostings(postings, docsCount, totalDocuments), nil
	default:
		return nil, fmt.Errorf("%w: unknown compression mode %d", ErrAllocation, c.Compress)
	}
}

// Decode deserializes a byte blob back into a posting list. docsCount is
// the out-of-band count the blob store recorded alongside the blob; it is
// cross-checked against the number of entries actually decoded, and a
// mismatch is reported as ErrDecodeCorrupt rather than silently accepted.
func (c *Codec) Decode(blob []byte, docsCount uint32) ([]Posting, error) {
	var postings []Posting
	var err error

	switch c.Compress {
	case CompressNone:
		postings, err = decodeRaw(blob)
	case CompressGolomb:
		postings, err = decodeGolombPostings(blob)
	default:
		return nil, fmt.Errorf("%w: unknown compression mode %d", ErrAllocation, c.Compress)
	}
	if err != nil {
		return nil, err
	}

	if uint32(len(postings)) != docsCount {
		return nil, fmt.Errorf("%w: header says %d documents, decoded %d", ErrDecodeCorrupt, docsCount, len(postings))
	}
	return postings, nil
}

// ─── raw (CompressNone) ──────────────────────────────────────────────────

func encodeRaw(postings []Posting) []byte {
	buf := make([]byte, 0, 64)
	var tmp [4]byte
	for _, p := range postings {
		binary.LittleEndian.PutUint32(tmp[:], p.DocumentID)
		buf = append(buf, tmp[:]...)
		binary.LittleEndian.PutUint32(tmp[:], uint32(len(p.Positions)))
		buf = append(buf, tmp[:]...)
		for _, pos := range p.Positions {
			binary.LittleEndian.PutUint32(tmp[:], pos)
			buf = append(buf, tmp[:]...)
		}
	}
	return buf
}

// decodeRaw decodes the fixed-width raw format. Because every record has a
// byte length known from its own positions_count field, a single malformed
// record (positions not strictly ascending) can be logged and have its
// positions dropped (the posting is kept with no positions) without losing
// track of where the next record starts. This only has a
// well-defined meaning for fixed-width records; the Golomb format has no
// equivalent (see decodeGolombPostings).
func decodeRaw(blob []byte) ([]Posting, error) {
	var postings []Posting
	offset := 0
	for offset < len(blob) {
		if offset+8 > len(blob) {
			return nil, fmt.Errorf("%w: truncated raw posting header", ErrDecodeCorrupt)
		}
		docID := binary.LittleEndian.Uint32(blob[offset:])
		offset += 4
		count := binary.LittleEndian.Uint32(blob[offset:])
		offset += 4

		if offset+int(count)*4 > len(blob) {
			return nil, fmt.Errorf("%w: truncated raw positions for document %d", ErrDecodeCorrupt, docID)
		}
		positions := make([]uint32, count)
		ascending := true
		for i := range positions {
			positions[i] = binary.LittleEndian.Uint32(blob[offset:])
			offset += 4
			if i > 0 && positions[i] <= positions[i-1] {
				ascending = false
			}
		}
		if !ascending {
			slog.Warn("ngramcore: dropping non-ascending position record", "document_id", docID)
			positions = nil
		}
		postings = append(postings, Posting{DocumentID: docID, Positions: positions})
	}
	return postings, nil
}

// ─── Golomb ──────────────────────────────────────────────────────────────

func encodeGolombPostings(postings []Posting, docsCount uint32, totalDocuments uint32) []byte {
	buf := make([]byte, 0, 64)
	var tmp [4]byte

	putU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(tmp[:], v)
		buf = append(buf, tmp[:]...)
	}

	putU32(docsCount)

	if docsCount > 0 {
		mDoc := totalDocuments / docsCount
		if mDoc == 0 {
			mDoc = 1
		}
		putU32(mDoc)

		w := NewBitWriter()
		prev := uint32(0) // doc_id[-1] = 0
		for _, p := range postings {
			gap := p.DocumentID - prev - 1
			EncodeGolomb(w, mDoc, gap)
			prev = p.DocumentID
		}
		buf = append(buf, w.Bytes()...)
	}

	for _, p := range postings {
		putU32(uint32(len(p.Positions)))
		if len(p.Positions) == 0 {
			continue
		}

		last := p.Positions[len(p.Positions)-1]
		mPos := (last + 1) / uint32(len(p.Positions))
		if mPos == 0 {
			mPos = 1
		}
		putU32(mPos)

		w := NewBitWriter()
		var prev int64 = -1
		for _, pos := range p.Positions {
			gap := int64(pos) - prev - 1
			EncodeGolomb(w, mPos, uint32(gap))
			prev = int64(pos)
		}
		buf = append(buf, w.Bytes()...)
	}

	return buf
}

func decodeGolombPostings(blob []byte) ([]Posting, error) {
	if len(blob) < 4 {
		return nil, fmt.Errorf("%w: truncated docs_count header", ErrDecodeCorrupt)
	}
	offset := 0
	readU32 := func() (uint32, error) {
		if offset+4 > len(blob) {
			return 0, fmt.Errorf("%w: truncated int field", ErrDecodeCorrupt)
		}
		v := binary.LittleEndian.Uint32(blob[offset:])
		offset += 4
		return v, nil
	}

	docsCount, err := readU32()
	if err != nil {
		return nil, err
	}

	docIDs := make([]uint32, 0, docsCount)
	if docsCount > 0 {
		mDoc, err := readU32()
		if err != nil {
			return nil, err
		}

		r := NewBitReader(blob[offset:])
		prev := uint32(0) // doc_id[-1] = 0
		for i := uint32(0); i < docsCount; i++ {
			gap, err := DecodeGolomb(r, mDoc)
			if err != nil {
				return nil, err
			}
			docID := prev + gap + 1
			docIDs = append(docIDs, docID)
			prev = docID
		}
		consumed := r.byteCursor
		if r.bitMask != 0x80 {
			consumed++
		}
		offset += consumed
	}

	postings := make([]Posting, 0, len(docIDs))
	for _, docID := range docIDs {
		positionsCount, err := readU32()
		if err != nil {
			return nil, err
		}

		var positions []uint32
		if positionsCount > 0 {
			mPos, err := readU32()
			if err != nil {
				return nil, err
			}

			r := NewBitReader(blob[offset:])
			positions = make([]uint32, 0, positionsCount)
			var prev int64 = -1
			for i := uint32(0); i < positionsCount; i++ {
				gap, err := DecodeGolomb(r, mPos)
				if err != nil {
					return nil, err
				}
				pos := prev + int64(gap) + 1
				positions = append(positions, uint32(pos))
				prev = pos
			}
			consumed := r.byteCursor
			if r.bitMask != 0x80 {
				consumed++
			}
			offset += consumed
		}

		postings = append(postings, Posting{DocumentID: docID, Positions: positions})
	}

	return postings, nil
}
