// Package faq ranks Help Center knowledge-base entries against free-text
// queries using word-overlap heuristics. Everything here is pure and safe
// for concurrent use.
package faq

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Query gates, measured by SignificantLength.
const (
	MinSearchLength = 2
	MinAskLength    = 3
)

// Score weights.
const (
	questionPhraseBonus = 10.0
	answerPhraseBonus   = 5.0
	questionExact       = 3.0
	questionPartial     = 2.0
	answerExact         = 1.0
	answerPartial       = 0.5
)

// Entry is a single question/answer pair of the knowledge base.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// ScoredResult pairs an entry with its relevance to a query.
type ScoredResult struct {
	Entry Entry   `json:"entry"`
	Score float64 `json:"score"`
}

// Normalize lowercases s, strips punctuation and splits it on whitespace.
func Normalize(s string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if punctuation.has(r) {
			return -1
		}
		return r
	}, strings.ToLower(s))
	return strings.Fields(cleaned)
}

// Tokenize normalizes s and drops stop words.
func Tokenize(s string) []string {
	words := Normalize(s)
	tokens := words[:0]
	for _, w := range words {
		if !IsStopWord(w) {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// SignificantLength counts the runes of the query tokens left once stop words
// and punctuation are removed. Whitespace between tokens does not count.
func SignificantLength(query string) int {
	n := 0
	for _, token := range Tokenize(query) {
		n += utf8.RuneCountInString(token)
	}
	return n
}

// CanSearch reports whether query is long enough to run local ranking.
func CanSearch(query string) bool {
	return SignificantLength(query) >= MinSearchLength
}

// CanAskAI reports whether query is long enough to be sent to the AI answerer.
func CanAskAI(query string) bool {
	return SignificantLength(query) >= MinAskLength
}

// ScoreEntry returns how well entry matches query. Zero means no match.
func ScoreEntry(query string, entry Entry) float64 {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return 0
	}

	var score float64

	phrase := strings.ToLower(strings.TrimSpace(query))
	if strings.Contains(strings.ToLower(entry.Question), phrase) {
		score += questionPhraseBonus
	}
	if strings.Contains(strings.ToLower(entry.Answer), phrase) {
		score += answerPhraseBonus
	}

	questionTokens := Tokenize(entry.Question)
	answerTokens := Tokenize(entry.Answer)
	for _, token := range tokens {
		score += tokenWeight(token, questionTokens, questionExact, questionPartial)
		score += tokenWeight(token, answerTokens, answerExact, answerPartial)
	}

	return score
}

// tokenWeight finds the first field token related to token and weighs it.
func tokenWeight(token string, field []string, exact, partial float64) float64 {
	i := slices.IndexFunc(field, func(w string) bool {
		return strings.Contains(w, token) || strings.Contains(token, w)
	})
	switch {
	case i < 0:
		return 0
	case field[i] == token:
		return exact
	default:
		return partial
	}
}

// RankEntries scores every entry against query and returns the matches in
// descending score order. Equal scores keep their input order.
func RankEntries(query string, entries []Entry) []ScoredResult {
	results := make([]ScoredResult, 0, len(entries))
	for _, entry := range entries {
		if score := ScoreEntry(query, entry); score > 0 {
			results = append(results, ScoredResult{Entry: entry, Score: score})
		}
	}

	slices.SortStableFunc(results, func(a, b ScoredResult) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	return results
}

// Top returns at most n results. n <= 0 returns all of them.
func Top(results []ScoredResult, n int) []ScoredResult {
	if n <= 0 || n >= len(results) {
		return results
	}
	return results[:n]
}
