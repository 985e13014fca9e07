package game

import (
	"math/rand/v2"
	"slices"
	"strings"
)

const (
	// forbiddenMora ends the game when a word closes with it: nothing
	// starts with ん, so the next player would have no move.
	forbiddenMora = 'ん'
	// candidateWindow caps how many matching words the engine collects
	// before choosing its own move. A bounded sample keeps the scan cheap
	// on a large vocabulary and keeps the engine beatable.
	candidateWindow = 10
)

// Word is a single vocabulary entry. Words are plain values: two entries
// with identical fields are the same word.
type Word struct {
	Kanji string // logographic spelling; may be empty for kana-only entries
	Kana  string // syllabary reading as given by the source
	Rank  int    // source frequency rank; lower is more common
	Noun  bool   // whether any sense of the entry is a noun
}

// Settings configures engine construction.
type Settings struct {
	// MaxRank keeps only words with Rank <= MaxRank (inclusive).
	// Zero or negative means no filtering beyond the corpus maximum.
	MaxRank int
	// Source drives the engine's word choices. Nil seeds a fresh PCG from
	// the global generator; tests inject a fixed source for determinism.
	Source rand.Source
}

// Engine runs one game of shiritori for one player: it validates the
// player's words and picks its own. An Engine confines itself to a single
// goroutine; the vocabulary index is read-only after construction.
type Engine struct {
	index   map[string]Word // hiragana reading -> word
	keys    []string        // sorted index keys, fixed scan order
	chain   []Word          // play history, append-only
	played  map[Word]bool
	score   int
	maxRank int
	rng     *rand.Rand
}

// NewEngine builds the vocabulary index from words, applying the rank
// filter, and picks the engine's opening word. It fails with a ConfigError
// when words is empty or when no word qualifies as an opener (a noun not
// ending in ん).
func NewEngine(words []Word, s Settings) (*Engine, error) {
	if len(words) == 0 {
		return nil, &ConfigError{msg: "at least one word is required"}
	}

	maxRank := s.MaxRank
	if maxRank <= 0 {
		for _, w := range words {
			if w.Rank > maxRank {
				maxRank = w.Rank
			}
		}
	}

	// Homophones collapse onto one key; the last entry wins.
	index := make(map[string]Word)
	for _, w := range words {
		if w.Rank > maxRank {
			continue
		}
		index[ToHiragana(w.Kana)] = w
	}

	keys := make([]string, 0, len(index))
	for k := range index {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	src := s.Source
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	e := &Engine{
		index:   index,
		keys:    keys,
		played:  make(map[Word]bool),
		maxRank: maxRank,
		rng:     rand.New(src),
	}

	// Collect every qualifying opener up front. Rejection sampling could
	// spin forever on a vocabulary with no playable noun.
	var openers []string
	for _, k := range keys {
		if e.index[k].Noun && lastRune(k) != forbiddenMora {
			openers = append(openers, k)
		}
	}
	if len(openers) == 0 {
		return nil, &ConfigError{msg: "no playable noun in the vocabulary"}
	}
	e.push(e.index[openers[e.rng.IntN(len(openers))]])
	return e, nil
}

// push records a word as played.
func (e *Engine) push(w Word) {
	e.chain = append(e.chain, w)
	e.played[w] = true
}

// requiredMora returns the sound the next word must start with: the last
// kana of the last played word, with small kana folded to full size.
func (e *Engine) requiredMora() rune {
	last := e.chain[len(e.chain)-1]
	return foldSmallKana(lastRune(ToHiragana(last.Kana)))
}

// NextWord returns the engine's own move and appends it to the chain.
// The very first call returns the opening word chosen at construction,
// which has not been shown to the player yet. When no candidate exists
// the engine concedes with a NoCandidateError.
func (e *Engine) NextWord() (Word, error) {
	if len(e.chain) == 1 {
		return e.chain[0], nil
	}

	mora := e.requiredMora()
	var candidates []Word
	for _, k := range e.keys {
		if !strings.HasPrefix(k, string(mora)) {
			continue
		}
		w := e.index[k]
		if e.played[w] || !w.Noun || lastRune(k) == forbiddenMora {
			continue
		}
		candidates = append(candidates, w)
		if len(candidates) == candidateWindow {
			break
		}
	}
	if len(candidates) == 0 {
		return Word{}, &NoCandidateError{Mora: mora}
	}

	w := candidates[e.rng.IntN(len(candidates))]
	e.push(w)
	return w, nil
}

// Submit validates the player's word and, if legal, plays it.
// text may be hiragana or katakana; the caller strips whitespace.
// The rules run in a fixed order and the first violation wins:
// continuity, known word, no repeat, must be a noun, must not end in ん.
func (e *Engine) Submit(text string) (Word, error) {
	normalized := ToHiragana(text)

	mora := e.requiredMora()
	if firstRune(normalized) != mora {
		return Word{}, &InvalidMoveError{Reason: ReasonContinuity, Text: text, Mora: mora}
	}
	w, ok := e.index[normalized]
	if !ok {
		return Word{}, &UnknownWordError{Text: text}
	}
	if e.played[w] {
		return Word{}, &InvalidMoveError{Reason: ReasonRepeat, Text: text}
	}
	if !w.Noun {
		return Word{}, &InvalidMoveError{Reason: ReasonPartOfSpeech, Text: text}
	}
	if lastRune(normalized) == forbiddenMora {
		return Word{}, &InvalidMoveError{Reason: ReasonTerminal, Text: text}
	}

	e.score++
	e.push(w)
	return w, nil
}

// Score returns how many words the player has had accepted.
func (e *Engine) Score() int { return e.score }

// MaxRank returns the resolved rank filter.
func (e *Engine) MaxRank() int { return e.maxRank }

// Chain returns a copy of the play history in order.
func (e *Engine) Chain() []Word {
	chain := make([]Word, len(e.chain))
	copy(chain, e.chain)
	return chain
}
