package ngramcore

// ═══════════════════════════════════════════════════════════════════════════════
// N-GRAM SPLITTER (C2)
// ═══════════════════════════════════════════════════════════════════════════════
// Splitter walks a buffer of code points and yields overlapping windows of
// up to N consecutive non-separator code points.
//
// ALGORITHM:
// ----------
//  1. Skip separators.
//  2. Read up to N consecutive non-separators starting at the cursor.
//  3. Yield (start, length).
//  4. Advance the cursor by exactly one code point (never by length) and
//     repeat.
//
// EXAMPLE (N=2, text "ab cd" as code points [a,b,' ',c,d]):
//
//	cursor 0: window "ab"  -> (start=0, length=2)
//	cursor 1: window "b"   -> (start=1, length=1)   [tail: length < N]
//	cursor 2: separator, skipped
//	cursor 3: window "cd"  -> (start=3, length=2)
//	cursor 4: window "d"   -> (start=4, length=1)   [tail: length < N]
//
// The cursor advances by exactly one position for every window it yields,
// including ones the caller discards — this is what makes "position" a
// faithful index-in-the-source-text rather than a count of kept tokens.
// ═══════════════════════════════════════════════════════════════════════════════

// Ngram is one (start, length) window produced by a Splitter.
type Ngram struct {
	Start  int // index into the code-point buffer where the window begins
	Length int // number of code points in the window, 1..N
}

// Splitter is a lazy cursor over a code-point buffer, producing Ngram
// windows one at a time via Next.
type Splitter struct {
	buf    []rune
	n      int
	cursor int
}

// NewSplitter creates a Splitter over buf with window size n. n must be
// at least 1; the caller is responsible for that invariant.
func NewSplitter(buf []rune, n int) *Splitter {
	return &Splitter{buf: buf, n: n}
}

// Next produces the next window, skipping separators first. It reports
// false once the buffer is exhausted.
func (s *Splitter) Next() (Ngram, bool) {
	for s.cursor < len(s.buf) && IsSeparator(s.buf[s.cursor]) {
		s.cursor++
	}
	if s.cursor >= len(s.buf) {
		return Ngram{}, false
	}

	start := s.cursor
	length := 0
	for length < s.n && start+length < len(s.buf) && !IsSeparator(s.buf[start+length]) {
		length++
	}

	s.cursor++
	return Ngram{Start: start, Length: length}, true
}

// Text returns the code points making up ng within buf, as a subslice of
// buf (not a copy).
func (ng Ngram) Text(buf []rune) []rune {
	return buf[ng.Start : ng.Start+ng.Length]
}

// TailFiltered reports whether ng should be discarded in index mode: a
// window shorter than n, cut short by a separator or by the end of the
// buffer. It does not look at the document id; a query-mode caller
// (document id 0) keeps every window and does not apply this check.
func (ng Ngram) TailFiltered(n int) bool {
	return ng.Length < n
}
