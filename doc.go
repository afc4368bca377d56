// Package ngramcore implements the indexing core of a small full-text
// search engine: N-gram tokenization over Unicode text, in-memory posting
// accumulation keyed by token id, and a compact posting-list codec that can
// either store postings raw or Golomb-code the gap sequences.
//
// ═══════════════════════════════════════════════════════════════════════════════
// WHAT IS AN N-GRAM INDEX?
// ═══════════════════════════════════════════════════════════════════════════════
// Where a word-level inverted index maps whole words to the documents that
// contain them, an N-gram index maps fixed-width, overlapping windows of
// code points. Indexing "hello" with N=3 produces the grams "hel", "ell",
// "llo" (and the short tail windows "lo", "o" in query mode). This trades a
// larger vocabulary for the ability to match substrings and to tolerate
// scripts where "word" is not a well-defined unit.
//
// ═══════════════════════════════════════════════════════════════════════════════
// PIPELINE
// ═══════════════════════════════════════════════════════════════════════════════
//
//	text ──Splitter──▶ (offset, token) pairs ──Accumulator──▶ in-memory index
//	                                                                │
//	                                                        Store.Update (C7)
//	                                                                │
//	                                                 fetch old ──▶ Codec.Decode (C6)
//	                                                      merge ──▶ MergePostings
//	                                                    re-encode ──▶ Codec.Encode (C6)
//	                                                                │
//	                                                     BlobStore.PutPostings
//
// One document is carried through this pipeline to completion before the
// next begins; there is no concurrency inside the core (see Store).
package ngramcore
