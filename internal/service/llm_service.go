package service

import (
	"context"
	"fmt"

	"hustleke/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// LLMService answers Help Center questions with a GigaChat model.
type LLMService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	config *config.GigaChatConfig
	logger *zap.Logger
}

func buildSystemInstruction() string {
	return `You are the HustleKE support assistant. HustleKE is a Kenyan freelance marketplace where clients hire freelancers, fund projects through M-Pesa escrow and release payment milestone by milestone.

Rules:
- Answer in plain English, in at most 5 short sentences.
- Prefer the help center entries given in the prompt. If they do not cover the question, say so and suggest contacting support@hustleke.co.ke.
- Never invent fees, limits or timelines. Withdrawal fees follow the M-Pesa tariff bands shown in the fee calculator.
- Never ask for M-Pesa PINs, passwords or one-time codes.`
}

func NewLLMService(cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SystemInstruction = buildSystemInstruction()
	model.Temperature = 0.2

	logger.Info("AI answerer ready", zap.String("model", cfg.Model))

	return &LLMService{
		client: client,
		model:  model,
		config: cfg,
		logger: logger,
	}, nil
}

// Answer implements Answerer.
func (s *LLMService) Answer(ctx context.Context, question, knowledgeContext string) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: buildAnswerPrompt(question, knowledgeContext)},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return resp.Choices[0].Message.Content, nil
}

func buildAnswerPrompt(question, knowledgeContext string) string {
	return fmt.Sprintf(`%s
User question: %s

Answer the question for a HustleKE user.`, knowledgeContext, question)
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
