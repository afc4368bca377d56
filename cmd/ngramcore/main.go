// Command ngramcore is a thin demonstration of the package core: it indexes
// a handful of text files into an in-memory store and reports, for a
// queried token, which documents it appears in.
//
// Modeled on cindex's flag-based shape (google/codesearch), trimmed down
// since this core has no on-disk database format of its own to manage —
// that is left to whatever system embeds the package.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"unicode/utf8"

	"github.com/wizenheimer/ngramcore"
)

var usageMessage = `usage: ngramcore [-n width] [-compress mode] [-query token] path...

ngramcore indexes the named files as an in-memory n-gram inverted index
and, if -query is given, reports which files contain that token.
`

func usage() {
	fmt.Fprint(os.Stderr, usageMessage)
	os.Exit(2)
}

var (
	widthFlag    = flag.Int("n", 3, "n-gram width")
	compressFlag = flag.String("compress", "golomb", "posting-list compression: none or golomb")
	queryFlag    = flag.String("query", "", "report documents containing this token")
)

func main() {
	log.SetPrefix("ngramcore: ")
	flag.Usage = usage
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		usage()
	}

	cfg := ngramcore.DefaultIndexConfig()
	cfg.NgramWidth = *widthFlag
	switch *compressFlag {
	case "none":
		cfg.Compress = ngramcore.CompressNone
	case "golomb":
		cfg.Compress = ngramcore.CompressGolomb
	default:
		log.Fatalf("unknown -compress mode %q", *compressFlag)
	}

	tokens := ngramcore.NewMemTokenService()
	blobs := ngramcore.NewMemBlobStore()
	store := ngramcore.NewStore(blobs, cfg.NewCodec(), nil)

	for i, path := range paths {
		docID := uint32(i + 1)
		if err := indexFile(store, tokens, blobs, docID, path, cfg); err != nil {
			log.Fatalf("indexing %s: %v", path, err)
		}
	}

	if *queryFlag == "" {
		fmt.Printf("indexed %d files, %d distinct tokens\n", len(paths), len(tokens.TokenIDs()))
		return
	}

	tokenID, docsCount, err := tokens.GetTokenID([]byte(*queryFlag), 0)
	if err != nil {
		log.Fatalf("querying %q: %v", *queryFlag, err)
	}
	postings, _, err := store.Fetch(tokenID)
	if err != nil {
		log.Fatalf("fetching postings for %q: %v", *queryFlag, err)
	}

	fmt.Printf("%q appears in %d document(s) (token seen in %d overall):\n", *queryFlag, len(postings), docsCount)
	for _, p := range postings {
		fmt.Printf("  doc %d at positions %v\n", p.DocumentID, p.Positions)
	}
}

func indexFile(store *ngramcore.Store, tokens *ngramcore.MemTokenService, blobs *ngramcore.MemBlobStore, docID uint32, path string, cfg ngramcore.IndexConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	runes := make([]rune, 0, len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		runes = append(runes, r)
		data = data[size:]
	}

	idx := ngramcore.NewInMemoryIndex()
	splitter := cfg.NewSplitter(runes)
	for {
		gram, ok := splitter.Next()
		if !ok {
			break
		}
		if gram.TailFiltered(cfg.NgramWidth) {
			continue
		}
		tokenBytes := []byte(string(gram.Text(runes)))
		if err := idx.AddOccurrence(tokens, docID, tokenBytes, uint32(gram.Start)); err != nil {
			return err
		}
	}

	for _, entry := range idx.Entries {
		if err := store.Update(entry); err != nil {
			return err
		}
	}
	blobs.RegisterDocument()
	return nil
}
