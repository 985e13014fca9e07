// Package dict supplies the game vocabulary: it parses a local JMdict
// file into game words and caches the result in SQLite so later runs skip
// the XML pass.
package dict

import (
	"compress/gzip"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"shiritori.exe.dev/game"
)

// posEntities resolves the JMdict DTD entities that appear in <pos>
// elements. The decoder runs with Strict off, so entities missing from
// this table pass through as literal text instead of aborting the parse.
var posEntities = map[string]string{
	"n":      "noun (common) (futsuumeishi)",
	"n-adv":  "adverbial noun (fukushitekimeishi)",
	"n-t":    "noun (temporal) (jisoumeishi)",
	"n-suf":  "noun, used as a suffix",
	"n-pref": "noun, used as a prefix",
	"adj-na": "adjectival nouns or quasi-adjectives (keiyodoshi)",
	"adj-no": "nouns which may take the genitive case particle `no'",
	"adj-pn": "pre-noun adjectival (rentaishi)",
	"adj-f":  "noun or verb acting prenominally",
	"adj-i":  "adjective (keiyoushi)",
	"exp":    "expressions (phrases, clauses, etc.)",
	"id":     "idiomatic expression",
	"on-mim": "onomatopoeic or mimetic word",
	"vs":     "noun or participle which takes the aux. verb suru",
	"v1":     "Ichidan verb",
	"v5k":    "Godan verb with `ku' ending",
	"v5r":    "Godan verb with `ru' ending",
	"v5s":    "Godan verb with `su' ending",
	"adv":    "adverb (fukushi)",
	"int":    "interjection (kandoushi)",
	"conj":   "conjunction",
	"prt":    "particle",
}

// nounPOS lists the part-of-speech categories counted as nouns for
// shiritori purposes.
var nounPOS = map[string]bool{
	"adjectival nouns or quasi-adjectives (keiyodoshi)":    true,
	"nouns which may take the genitive case particle `no'": true,
	"pre-noun adjectival (rentaishi)":                      true,
	"noun or verb acting prenominally":                     true,
	"idiomatic expression":                                 true,
	"noun (common) (futsuumeishi)":                         true,
	"adverbial noun (fukushitekimeishi)":                   true,
	"noun, used as a suffix":                               true,
	"noun, used as a prefix":                               true,
	"noun (temporal) (jisoumeishi)":                        true,
	"onomatopoeic or mimetic word":                         true,
}

// entry mirrors the JMdict <entry> element; see the JMdict DTD.
type entry struct {
	KEle  []kEle  `xml:"k_ele"`
	REle  []rEle  `xml:"r_ele"`
	Sense []sense `xml:"sense"`
}

type kEle struct {
	Keb string   `xml:"keb"`
	Pri []string `xml:"ke_pri"`
}

type rEle struct {
	Reb string   `xml:"reb"`
	Pri []string `xml:"re_pri"`
}

type sense struct {
	Pos []string `xml:"pos"`
}

// word converts an entry to a game word. Entries without an nf frequency
// priority or without a reading are dropped; only the first kanji and
// first reading of an entry are kept.
func (e *entry) word() (game.Word, bool) {
	rank := 0
	for _, k := range e.KEle {
		for _, p := range k.Pri {
			if n, ok := nfRank(p); ok {
				rank = n
			}
		}
	}
	for _, r := range e.REle {
		for _, p := range r.Pri {
			if n, ok := nfRank(p); ok {
				rank = n
			}
		}
	}
	if rank == 0 {
		return game.Word{}, false
	}
	if len(e.REle) == 0 || e.REle[0].Reb == "" {
		return game.Word{}, false
	}

	kanji := ""
	if len(e.KEle) > 0 {
		kanji = e.KEle[0].Keb
	}
	noun := false
	for _, s := range e.Sense {
		for _, p := range s.Pos {
			if nounPOS[p] {
				noun = true
			}
		}
	}
	return game.Word{Kanji: kanji, Kana: e.REle[0].Reb, Rank: rank, Noun: noun}, true
}

// nfRank extracts the rank from an nfXX priority tag.
func nfRank(pri string) (int, bool) {
	if !strings.HasPrefix(pri, "nf") {
		return 0, false
	}
	n, err := strconv.Atoi(pri[2:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Parse streams JMdict XML from r and returns the common words.
func Parse(r io.Reader) ([]game.Word, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false
	dec.Entity = posEntities

	var words []game.Word
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode jmdict: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "entry" {
			continue
		}
		var ent entry
		if err := dec.DecodeElement(&ent, &se); err != nil {
			return nil, fmt.Errorf("decode entry: %w", err)
		}
		if w, ok := ent.word(); ok {
			words = append(words, w)
		}
	}
	slog.Info("parsed jmdict", "words", len(words))
	return words, nil
}

// ParseFile parses a JMdict file from disk, gunzipping .gz files
// transparently.
func ParseFile(path string) ([]game.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open jmdict: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gunzip jmdict: %w", err)
		}
		defer gz.Close()
		r = gz
	}
	return Parse(r)
}
