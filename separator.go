package ngramcore

// ═══════════════════════════════════════════════════════════════════════════════
// SEPARATOR TABLE (C1)
// ═══════════════════════════════════════════════════════════════════════════════
// IsSeparator decides whether a code point may sit inside a token. It is
// deliberately a pure, branch-only predicate over rune (Go's code-point
// type): no map, no slice, no allocation, so it can sit in the hot loop of
// the N-gram splitter without ever touching the heap.
//
// The rule set:
//   - ASCII whitespace: space, tab, LF, VT, FF, CR
//   - ASCII punctuation ranges: 0x21..0x2F, 0x3A..0x40, 0x5B..0x60, 0x7B..0x7E
//   - A fixed set of CJK and fullwidth punctuation code points
//
// Everything else — including all letters, digits, and code points outside
// these ranges — is indexable.
// ═══════════════════════════════════════════════════════════════════════════════

// IsSeparator reports whether cp is a non-indexable separator code point.
func IsSeparator(cp rune) bool {
	switch {
	case cp == 0x20 || cp == 0x09 || cp == 0x0A || cp == 0x0B || cp == 0x0C || cp == 0x0D:
		return true
	case cp >= 0x21 && cp <= 0x2F:
		return true
	case cp >= 0x3A && cp <= 0x40:
		return true
	case cp >= 0x5B && cp <= 0x60:
		return true
	case cp >= 0x7B && cp <= 0x7E:
		return true
	}
	return isFixedSeparator(cp)
}

// isFixedSeparator checks the small fixed set of CJK/fullwidth punctuation
// code points that fall outside the ASCII ranges above.
func isFixedSeparator(cp rune) bool {
	switch cp {
	case 0x3000, 0x3001, 0x3002,
		0xFF01, 0xFF08, 0xFF09, 0xFF0C, 0xFF1A, 0xFF1B, 0xFF1F:
		return true
	}
	return false
}
