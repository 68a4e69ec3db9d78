package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hustleke/internal/dto"
	"hustleke/internal/faq"
	"hustleke/pkg/config"

	"go.uber.org/zap"
)

var (
	ErrQueryTooShort = errors.New("question is too short")
	ErrAIUnavailable = errors.New("AI answers are not configured")
)

// Answerer is the remote AI model behind "Ask HustleKE".
type Answerer interface {
	Answer(ctx context.Context, question, knowledgeContext string) (string, error)
}

type AnswerService struct {
	help     *HelpService
	answerer Answerer
	config   *config.SearchConfig
	timeout  time.Duration
	logger   *zap.Logger
}

// NewAnswerService wires an answerer; a nil answerer disables AI answers.
func NewAnswerService(help *HelpService, answerer Answerer, cfg *config.SearchConfig, timeout time.Duration, logger *zap.Logger) *AnswerService {
	return &AnswerService{
		help:     help,
		answerer: answerer,
		config:   cfg,
		timeout:  timeout,
		logger:   logger,
	}
}

// Ask asks the AI answerer, grounding it on the best local matches. A failed
// AI call still returns the local matches with AIError set.
func (s *AnswerService) Ask(ctx context.Context, question string) (*dto.AskResponse, error) {
	question = strings.TrimSpace(question)
	if !faq.CanAskAI(question) {
		return nil, ErrQueryTooShort
	}
	if s.answerer == nil {
		return nil, ErrAIUnavailable
	}

	related := s.help.Related(question, s.config.ContextEntries)
	resp := &dto.AskResponse{
		Question: question,
		Related:  toResultItems(related),
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()
	answer, err := s.answerer.Answer(ctx, question, BuildContext(related))
	if err != nil {
		s.logger.Warn("AI answer failed, returning local matches",
			zap.String("question", question),
			zap.Error(err),
		)
		resp.AIError = "AI answer is temporarily unavailable"
		return resp, nil
	}

	resp.Answer = sanitizeText(answer)
	s.logger.Info("AI answer generated",
		zap.Int("related", len(related)),
		zap.Duration("took", time.Since(started)),
	)
	return resp, nil
}

// BuildContext renders knowledge-base matches as prompt context.
func BuildContext(results []faq.ScoredResult) string {
	if len(results) == 0 {
		return "No relevant entries in the HustleKE help center."
	}

	var builder strings.Builder
	builder.WriteString("Relevant HustleKE help center entries:\n\n")

	for i, r := range results {
		builder.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, r.Entry.Category, r.Entry.Question))
		builder.WriteString(fmt.Sprintf("   %s\n\n", r.Entry.Answer))
	}

	return builder.String()
}
