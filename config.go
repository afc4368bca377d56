package ngramcore

// ═══════════════════════════════════════════════════════════════════════════════
// INDEX CONFIGURATION
// ═══════════════════════════════════════════════════════════════════════════════
// IndexConfig bundles the two choices that must stay fixed for the
// lifetime of a database: the n-gram window width and the posting-list
// compression mode. Bundling them in one struct with a DefaultIndexConfig
// constructor keeps callers from having to thread two loose parameters
// through Splitter and Codec construction separately.
// ═══════════════════════════════════════════════════════════════════════════════

// IndexConfig holds configuration options for building a Splitter and a
// Codec that agree with each other over the lifetime of a database.
type IndexConfig struct {
	NgramWidth int      // n-gram window width, at least 1 (default: 3)
	Compress   Compress // posting-list wire format (default: CompressGolomb)
}

// DefaultIndexConfig returns the standard indexing configuration.
func DefaultIndexConfig() IndexConfig {
	return IndexConfig{
		NgramWidth: 3,
		Compress:   CompressGolomb,
	}
}

// NewSplitter creates a Splitter over buf using cfg's n-gram width.
func (cfg IndexConfig) NewSplitter(buf []rune) *Splitter {
	return NewSplitter(buf, cfg.NgramWidth)
}

// NewCodec creates a Codec fixed to cfg's compression mode.
func (cfg IndexConfig) NewCodec() *Codec {
	return NewCodec(cfg.Compress)
}
