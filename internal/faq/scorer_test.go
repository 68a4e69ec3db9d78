package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var escrowEntry = Entry{
	Question: "How does M-Pesa escrow work?",
	Answer:   "Clients deposit funds into escrow via M-Pesa. Funds are released to the freelancer when the milestone is approved.",
	Category: "escrow",
}

var paymentsEntry = Entry{
	Question: "Which payment methods do you accept?",
	Answer:   "We accept M-Pesa and card payments for escrow deposits.",
	Category: "payments",
}

var profileEntry = Entry{
	Question: "Can I change my username?",
	Answer:   "Yes, open Settings and edit your profile.",
	Category: "account",
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []string{"how", "does", "m-pesa", "work"}, Normalize("  How does (M-Pesa) work?! "))
	assert.Empty(t, Normalize("?!.,;:'\"()[]{}"))
}

func TestTokenize_DropsStopWords(t *testing.T) {
	assert.Equal(t, []string{"m-pesa", "escrow", "work"}, Tokenize("How does M-Pesa escrow work?"))
	assert.Empty(t, Tokenize("the a is"))
}

func TestScoreEntry_EmptyQuery(t *testing.T) {
	for _, e := range []Entry{escrowEntry, paymentsEntry, profileEntry} {
		assert.Zero(t, ScoreEntry("", e))
		assert.Zero(t, ScoreEntry("   ", e))
	}
}

func TestScoreEntry_StopWordsOnly(t *testing.T) {
	for _, e := range []Entry{escrowEntry, paymentsEntry, profileEntry} {
		assert.Zero(t, ScoreEntry("the a is", e))
	}
}

func TestScoreEntry_ExactQuestion(t *testing.T) {
	// phrase in question (10) + three exact question tokens (9) + m-pesa and escrow in answer (2)
	score := ScoreEntry("How does M-Pesa escrow work?", escrowEntry)
	assert.Equal(t, 21.0, score)
	assert.GreaterOrEqual(t, score, 10.0)
}

func TestScoreEntry_ExactBeatsAnswerOnly(t *testing.T) {
	query := "How does M-Pesa escrow work?"
	exact := ScoreEntry(query, escrowEntry)
	scattered := ScoreEntry(query, paymentsEntry)

	assert.Equal(t, 2.0, scattered)
	assert.Greater(t, exact, scattered)
}

func TestScoreEntry_PartialMatches(t *testing.T) {
	// phrase bonus in both fields, then "payment" and "payments" contain "pay"
	assert.Equal(t, 17.5, ScoreEntry("pay", paymentsEntry))
}

func TestScoreEntry_OneContributionPerField(t *testing.T) {
	e := Entry{Question: "escrow escrow escrow", Answer: "escrow escrow"}
	// phrase 10 + 5, then a single exact hit per field
	assert.Equal(t, 19.0, ScoreEntry("escrow", e))
}

func TestScoreEntry_NoMatch(t *testing.T) {
	assert.Zero(t, ScoreEntry("withdrawal", profileEntry))
}

func TestRankEntries(t *testing.T) {
	entries := []Entry{profileEntry, paymentsEntry, escrowEntry}

	results := RankEntries("How does M-Pesa escrow work?", entries)
	require.Len(t, results, 2)
	assert.Equal(t, escrowEntry, results[0].Entry)
	assert.Equal(t, paymentsEntry, results[1].Entry)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestRankEntries_NoMatchesIsEmptyNotNil(t *testing.T) {
	results := RankEntries("zzz", []Entry{profileEntry})
	require.NotNil(t, results)
	assert.Empty(t, results)

	results = RankEntries("", nil)
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRankEntries_TiesKeepInputOrder(t *testing.T) {
	first := Entry{Question: "Withdraw to M-Pesa", Answer: "Open wallet.", Category: "payments"}
	second := Entry{Question: "Withdraw to bank", Answer: "Open wallet.", Category: "payments"}
	third := Entry{Question: "Withdraw limits", Answer: "Open wallet.", Category: "payments"}

	results := RankEntries("withdraw", []Entry{first, second, third})
	require.Len(t, results, 3)
	assert.Equal(t, results[0].Score, results[2].Score)
	assert.Equal(t, []Entry{first, second, third}, []Entry{results[0].Entry, results[1].Entry, results[2].Entry})

	results = RankEntries("withdraw", []Entry{third, first, second})
	assert.Equal(t, []Entry{third, first, second}, []Entry{results[0].Entry, results[1].Entry, results[2].Entry})
}

func TestRankEntries_Idempotent(t *testing.T) {
	entries := []Entry{profileEntry, paymentsEntry, escrowEntry}
	assert.Equal(t, RankEntries("escrow payments", entries), RankEntries("escrow payments", entries))
}

func TestRankEntries_ScoresNeverNegative(t *testing.T) {
	queries := []string{"", "the", "escrow", "M-PESA!!", "profile username", "{}[]"}
	for _, q := range queries {
		for _, e := range []Entry{escrowEntry, paymentsEntry, profileEntry} {
			assert.GreaterOrEqual(t, ScoreEntry(q, e), 0.0, "query %q", q)
		}
	}
}

func TestGates(t *testing.T) {
	tests := []struct {
		query     string
		canSearch bool
		canAsk    bool
	}{
		{query: "", canSearch: false, canAsk: false},
		{query: "a", canSearch: false, canAsk: false},
		{query: "the is", canSearch: false, canAsk: false},
		{query: "ab", canSearch: true, canAsk: false},
		{query: "the ab?", canSearch: true, canAsk: false},
		{query: "fee", canSearch: true, canAsk: true},
		{query: "a b", canSearch: false, canAsk: false},
		{query: "x y", canSearch: true, canAsk: false},
		{query: "x y z", canSearch: true, canAsk: true},
		{query: "ñé", canSearch: true, canAsk: false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.canSearch, CanSearch(tt.query))
			assert.Equal(t, tt.canAsk, CanAskAI(tt.query))
		})
	}
}

func TestSignificantLength(t *testing.T) {
	assert.Equal(t, 0, SignificantLength("the is a"))
	assert.Equal(t, 2, SignificantLength("x   y"))
	assert.Equal(t, 10, SignificantLength("What are the escrow fees?"))
}

func TestTop(t *testing.T) {
	results := []ScoredResult{{Score: 3}, {Score: 2}, {Score: 1}}
	assert.Len(t, Top(results, 2), 2)
	assert.Len(t, Top(results, 0), 3)
	assert.Len(t, Top(results, 10), 3)
}
