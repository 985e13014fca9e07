package game

import "strings"

// smallToNormalKana maps the three small y-row kana to their full-sized
// equivalents. Shiritori convention: a word ending in ちゃ chains on や.
var smallToNormalKana = map[rune]rune{
	'ゃ': 'や', 'ゅ': 'ゆ', 'ょ': 'よ',
}

// foldSmallKana converts a small kana to its normal-sized kana.
// Other runes are returned unchanged.
func foldSmallKana(r rune) rune {
	if n, ok := smallToNormalKana[r]; ok {
		return n
	}
	return r
}

// IsHiragana reports whether every rune of s falls in the hiragana block
// (U+3041 ぁ through U+309F ゟ). The empty string is vacuously true, so
// callers must not use this alone to mean "s is hiragana text".
func IsHiragana(s string) bool {
	for _, r := range s {
		if r < 0x3041 || r > 0x309F {
			return false
		}
	}
	return true
}

// IsKatakana reports whether every rune of s falls in the katakana block
// (U+30A0 ゠ through U+30FF ヿ). The empty string is vacuously true.
func IsKatakana(s string) bool {
	for _, r := range s {
		if r < 0x30A0 || r > 0x30FF {
			return false
		}
	}
	return true
}

// katakanaToHiragana converts a single katakana rune to hiragana.
// Only ァ (U+30A1) through ン (U+30F3) shift; the two blocks are parallel,
// so the phonetic a-to-n range maps by a fixed offset. Long vowel marks,
// iteration marks and punctuation are returned unchanged.
func katakanaToHiragana(r rune) rune {
	if r >= 0x30A1 && r <= 0x30F3 {
		return r - 0x60
	}
	return r
}

// ToHiragana folds an entire string from katakana onto hiragana so that
// readings match regardless of which syllabary they were typed in.
// Non-katakana characters are left unchanged.
func ToHiragana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(katakanaToHiragana(r))
	}
	return b.String()
}

// firstRune returns the first rune of s, or 0 if s is empty.
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// lastRune returns the last rune of s, or 0 if s is empty.
func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}
