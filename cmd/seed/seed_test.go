package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hustleke/internal/faq"
	"hustleke/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingWriter struct {
	batches [][]*models.KnowledgeEntry
}

func (w *recordingWriter) CreateBatch(ctx context.Context, entries []*models.KnowledgeEntry) error {
	w.batches = append(w.batches, entries)
	return nil
}

const sampleSeed = `
categories:
  - name: escrow
    entries:
      - question: How does M-Pesa escrow work?
        answer: Clients deposit funds into escrow via M-Pesa.
  - name: payments
    entries:
      - question: How do I withdraw my earnings?
        answer: Open Wallet and withdraw to M-Pesa.
`

func TestParseSeedFile(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	entries, err := parseSeedFile([]byte(sampleSeed), now)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, models.CategoryEscrow, entries[0].Category)
	assert.Equal(t, 0, entries[0].SortOrder)
	assert.Equal(t, 1, entries[1].SortOrder)
	assert.True(t, entries[1].IsActive)
	assert.Equal(t, now, entries[1].CreatedAt)

	again, err := parseSeedFile([]byte(sampleSeed), now)
	require.NoError(t, err)
	assert.Equal(t, entries[0].ID, again[0].ID, "IDs are stable across runs")
}

func TestParseSeedFile_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":         "categories: [",
		"unknown category": "categories:\n  - name: crypto\n    entries:\n      - question: q\n        answer: a\n",
		"empty answer":     "categories:\n  - name: general\n    entries:\n      - question: q\n        answer: ' '\n",
		"duplicate": "categories:\n  - name: general\n    entries:\n      - question: q\n        answer: a\n" +
			"  - name: account\n    entries:\n      - question: q\n        answer: b\n",
		"no entries": "categories: []\n",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseSeedFile([]byte(input), time.Now())
			assert.Error(t, err)
		})
	}
}

func TestSeedKnowledgeBase_SkipsUnchangedFile(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "kb.yaml")
	cachePath := filepath.Join(dir, ".cache.json")
	require.NoError(t, os.WriteFile(seedPath, []byte(sampleSeed), 0644))

	writer := &recordingWriter{}
	n, err := seedKnowledgeBase(context.Background(), seedPath, cachePath, writer, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = seedKnowledgeBase(context.Background(), seedPath, cachePath, writer, zap.NewNop())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, writer.batches, 1)

	require.NoError(t, os.WriteFile(seedPath, []byte(sampleSeed+"      - question: Is signup free?\n        answer: Yes.\n"), 0644))
	n, err = seedKnowledgeBase(context.Background(), seedPath, cachePath, writer, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestBundledKnowledgeBase(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "data", "knowledge_base.yaml"))
	require.NoError(t, err)

	entries, err := parseSeedFile(data, time.Now())
	require.NoError(t, err)

	kb := make([]faq.Entry, 0, len(entries))
	for _, e := range entries {
		kb = append(kb, e.ToFAQ())
	}

	results := faq.RankEntries("How does M-Pesa escrow work?", kb)
	require.NotEmpty(t, results)
	assert.Equal(t, "How does M-Pesa escrow work?", results[0].Entry.Question)
}
