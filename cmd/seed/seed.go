package main

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"hustleke/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// knowledgeNamespace keys deterministic entry IDs so reseeding keeps them stable.
var knowledgeNamespace = uuid.MustParse("5b0d3f0e-6c1a-4e61-9a57-2f1f0b7f4c11")

// seedFile is the on-disk layout of data/knowledge_base.yaml.
type seedFile struct {
	Categories []seedCategory `yaml:"categories"`
}

type seedCategory struct {
	Name    string      `yaml:"name"`
	Entries []seedEntry `yaml:"entries"`
}

type seedEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// seedCache records the hash of the last seeded file.
type seedCache struct {
	FileHash string    `json:"file_hash"`
	SeededAt time.Time `json:"seeded_at"`
}

// KnowledgeWriter is satisfied by repository.KnowledgeRepository.
type KnowledgeWriter interface {
	CreateBatch(ctx context.Context, entries []*models.KnowledgeEntry) error
}

func seedKnowledgeBase(ctx context.Context, path, cacheFile string, repo KnowledgeWriter, logger *zap.Logger) (int, error) {
	hash, err := calculateFileHash(path)
	if err != nil {
		return 0, err
	}

	cache, err := loadCache(cacheFile)
	if err != nil {
		logger.Warn("Failed to load cache, seeding anyway", zap.Error(err))
	} else if cache != nil && cache.FileHash == hash {
		logger.Info("Knowledge base file unchanged, skipping",
			zap.String("path", path),
			zap.Time("seeded_at", cache.SeededAt),
		)
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	entries, err := parseSeedFile(data, time.Now())
	if err != nil {
		return 0, err
	}

	if err := repo.CreateBatch(ctx, entries); err != nil {
		return 0, fmt.Errorf("failed to store entries: %w", err)
	}

	if err := saveCache(cacheFile, &seedCache{FileHash: hash, SeededAt: time.Now()}); err != nil {
		logger.Warn("Failed to save cache", zap.Error(err))
	}

	return len(entries), nil
}

// parseSeedFile decodes and validates the YAML knowledge base. Entry order in
// the file becomes the sort order.
func parseSeedFile(data []byte, now time.Time) ([]*models.KnowledgeEntry, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	var entries []*models.KnowledgeEntry
	seen := make(map[string]bool)
	for _, cat := range file.Categories {
		category := models.KnowledgeCategory(cat.Name)
		if !category.Valid() {
			return nil, fmt.Errorf("unknown category %q", cat.Name)
		}

		for _, e := range cat.Entries {
			question := strings.TrimSpace(e.Question)
			answer := strings.TrimSpace(e.Answer)
			if question == "" || answer == "" {
				return nil, fmt.Errorf("category %q: entry with empty question or answer", cat.Name)
			}
			if seen[question] {
				return nil, fmt.Errorf("duplicate question %q", question)
			}
			seen[question] = true

			entries = append(entries, &models.KnowledgeEntry{
				ID:        uuid.NewSHA1(knowledgeNamespace, []byte(question)),
				Question:  question,
				Answer:    answer,
				Category:  category,
				IsActive:  true,
				SortOrder: len(entries),
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
	}

	if len(entries) == 0 {
		return nil, errors.New("seed file has no entries")
	}
	return entries, nil
}

func calculateFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to calculate hash: %w", err)
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// loadCache returns nil without error when no cache exists yet.
func loadCache(cacheFile string) (*seedCache, error) {
	data, err := os.ReadFile(cacheFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var cache seedCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}
	return &cache, nil
}

func saveCache(cacheFile string, cache *seedCache) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(cacheFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}
