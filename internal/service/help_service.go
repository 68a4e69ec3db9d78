package service

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"hustleke/internal/dto"
	"hustleke/internal/faq"
	"hustleke/internal/models"
	"hustleke/pkg/config"

	"go.uber.org/zap"
)

// KnowledgeSource provides the active knowledge base in display order.
type KnowledgeSource interface {
	ListActive(ctx context.Context) ([]models.KnowledgeEntry, error)
}

// HelpService answers Help Center searches from an in-memory snapshot of the
// knowledge base. Snapshots are replaced whole, never mutated.
type HelpService struct {
	source  KnowledgeSource
	config  *config.SearchConfig
	logger  *zap.Logger
	entries atomic.Pointer[[]faq.Entry]
}

func NewHelpService(source KnowledgeSource, cfg *config.SearchConfig, logger *zap.Logger) *HelpService {
	s := &HelpService{
		source: source,
		config: cfg,
		logger: logger,
	}
	s.entries.Store(&[]faq.Entry{})
	return s
}

// Reload replaces the snapshot with the current active entries.
func (s *HelpService) Reload(ctx context.Context) (int, error) {
	rows, err := s.source.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load knowledge base: %w", err)
	}

	entries := make([]faq.Entry, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].ToFAQ())
	}
	s.entries.Store(&entries)

	s.logger.Info("Knowledge base loaded", zap.Int("entries", len(entries)))
	return len(entries), nil
}

// Run reloads the snapshot every interval until ctx is cancelled. A failed
// reload keeps the previous snapshot.
func (s *HelpService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Reload(ctx); err != nil && ctx.Err() == nil {
				s.logger.Warn("Knowledge base refresh failed, keeping previous snapshot", zap.Error(err))
			}
		}
	}
}

// Snapshot returns the entries currently searched. Callers must not modify it.
func (s *HelpService) Snapshot() []faq.Entry {
	return *s.entries.Load()
}

// Search ranks the knowledge base against query. Queries below the search
// gate return an empty, unsearched response.
func (s *HelpService) Search(query, category string, limit int) *dto.SearchResponse {
	resp := &dto.SearchResponse{
		Query:   query,
		Results: []dto.SearchResultItem{},
	}
	if !faq.CanSearch(query) {
		return resp
	}

	entries := s.Snapshot()
	if category != "" {
		entries = filterCategory(entries, category)
	}

	ranked := faq.RankEntries(query, entries)
	resp.Searched = true
	resp.Total = len(ranked)
	resp.Results = toResultItems(faq.Top(ranked, s.clampLimit(limit)))

	s.logger.Debug("Help search completed",
		zap.String("query", query),
		zap.String("category", category),
		zap.Int("matches", len(ranked)),
	)

	return resp
}

// Related returns the n best local matches for query, ignoring the search gate.
func (s *HelpService) Related(query string, n int) []faq.ScoredResult {
	return faq.Top(faq.RankEntries(query, s.Snapshot()), n)
}

// Categories lists the categories present in the snapshot, sorted.
func (s *HelpService) Categories() []string {
	seen := make(map[string]bool)
	categories := []string{}
	for _, e := range s.Snapshot() {
		if !seen[e.Category] {
			seen[e.Category] = true
			categories = append(categories, e.Category)
		}
	}
	slices.Sort(categories)
	return categories
}

func (s *HelpService) clampLimit(limit int) int {
	if limit <= 0 {
		return s.config.DefaultLimit
	}
	if s.config.MaxLimit > 0 && limit > s.config.MaxLimit {
		return s.config.MaxLimit
	}
	return limit
}

func filterCategory(entries []faq.Entry, category string) []faq.Entry {
	out := make([]faq.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

func toResultItems(results []faq.ScoredResult) []dto.SearchResultItem {
	items := make([]dto.SearchResultItem, 0, len(results))
	for _, r := range results {
		items = append(items, dto.SearchResultItem{
			Question: r.Entry.Question,
			Answer:   r.Entry.Answer,
			Category: r.Entry.Category,
			Score:    r.Score,
		})
	}
	return items
}
