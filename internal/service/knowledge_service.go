package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hustleke/internal/dto"
	"hustleke/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidKnowledge = errors.New("question, answer and a known category are required")

// KnowledgeStore is the writable side of the knowledge base.
type KnowledgeStore interface {
	KnowledgeSource
	GetByID(ctx context.Context, id uuid.UUID) (*models.KnowledgeEntry, error)
	Create(ctx context.Context, entry *models.KnowledgeEntry) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// KnowledgeService manages entries and keeps the search snapshot in step.
type KnowledgeService struct {
	store  KnowledgeStore
	help   *HelpService
	logger *zap.Logger
}

func NewKnowledgeService(store KnowledgeStore, help *HelpService, logger *zap.Logger) *KnowledgeService {
	return &KnowledgeService{
		store:  store,
		help:   help,
		logger: logger,
	}
}

func (s *KnowledgeService) Create(ctx context.Context, req *dto.CreateKnowledgeRequest) (*dto.KnowledgeResponse, error) {
	question := sanitizeText(req.Question)
	answer := sanitizeText(req.Answer)
	category := models.KnowledgeCategory(req.Category)
	if question == "" || answer == "" || !category.Valid() {
		return nil, ErrInvalidKnowledge
	}

	now := time.Now()
	entry := &models.KnowledgeEntry{
		ID:        uuid.New(),
		Question:  question,
		Answer:    answer,
		Category:  category,
		IsActive:  true,
		SortOrder: req.SortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create knowledge entry: %w", err)
	}
	s.reload(ctx)

	s.logger.Info("Knowledge entry created",
		zap.String("id", entry.ID.String()),
		zap.String("category", string(entry.Category)),
	)

	return toKnowledgeResponse(entry), nil
}

func (s *KnowledgeService) Get(ctx context.Context, id uuid.UUID) (*dto.KnowledgeResponse, error) {
	entry, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toKnowledgeResponse(entry), nil
}

func (s *KnowledgeService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Deactivate(ctx, id); err != nil {
		return err
	}
	s.reload(ctx)

	s.logger.Info("Knowledge entry deactivated", zap.String("id", id.String()))
	return nil
}

// Reload forces a snapshot refresh.
func (s *KnowledgeService) Reload(ctx context.Context) (*dto.ReloadResponse, error) {
	n, err := s.help.Reload(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ReloadResponse{Entries: n}, nil
}

// reload refreshes after a write. The write already succeeded, so a failure
// here is only logged; the periodic refresher will catch up.
func (s *KnowledgeService) reload(ctx context.Context) {
	if _, err := s.help.Reload(ctx); err != nil {
		s.logger.Warn("Knowledge base reload after write failed", zap.Error(err))
	}
}

func toKnowledgeResponse(entry *models.KnowledgeEntry) *dto.KnowledgeResponse {
	return &dto.KnowledgeResponse{
		ID:        entry.ID.String(),
		Question:  entry.Question,
		Answer:    entry.Answer,
		Category:  string(entry.Category),
		IsActive:  entry.IsActive,
		SortOrder: entry.SortOrder,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}
}
