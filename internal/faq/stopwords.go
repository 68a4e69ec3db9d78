package faq

// stopWords are dropped from query and entry tokens before overlap matching.
var stopWords = newWordSet(
	"a", "about", "after", "all", "also", "am", "an", "and", "any", "are",
	"as", "at", "be", "because", "been", "before", "being", "but", "by", "can",
	"could", "did", "do", "does", "doing", "for", "from", "get", "got", "had",
	"has", "have", "having", "he", "her", "here", "him", "his", "how", "i",
	"if", "in", "into", "is", "it", "its", "just", "me", "more", "most",
	"my", "no", "not", "of", "on", "or", "our", "out", "over", "please",
	"she", "should", "so", "some", "than", "that", "the", "their", "them", "then",
	"there", "these", "they", "this", "those", "to", "too", "up", "us", "very",
	"was", "we", "were", "what", "when", "where", "which", "who", "why", "will",
	"with", "would", "you", "your",
)

// punctuation is stripped from text before it is split into tokens.
var punctuation = newRuneSet(`?!.,;:'"()[]{}`)

type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	set := make(wordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func (s wordSet) has(w string) bool {
	_, ok := s[w]
	return ok
}

type runeSet map[rune]struct{}

func newRuneSet(chars string) runeSet {
	set := make(runeSet, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}

func (s runeSet) has(r rune) bool {
	_, ok := s[r]
	return ok
}

// IsStopWord reports whether w (already lowercased) is ignored during matching.
func IsStopWord(w string) bool {
	return stopWords.has(w)
}
