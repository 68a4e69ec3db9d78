package models

import (
	"time"

	"hustleke/internal/faq"

	"github.com/google/uuid"
)

type KnowledgeCategory string

const (
	CategoryGeneral     KnowledgeCategory = "general"
	CategoryPayments    KnowledgeCategory = "payments"
	CategoryEscrow      KnowledgeCategory = "escrow"
	CategoryAccount     KnowledgeCategory = "account"
	CategoryFreelancers KnowledgeCategory = "freelancers"
	CategoryClients     KnowledgeCategory = "clients"
)

var knownCategories = map[KnowledgeCategory]bool{
	CategoryGeneral:     true,
	CategoryPayments:    true,
	CategoryEscrow:      true,
	CategoryAccount:     true,
	CategoryFreelancers: true,
	CategoryClients:     true,
}

// Valid reports whether c is one of the Help Center categories.
func (c KnowledgeCategory) Valid() bool {
	return knownCategories[c]
}

type KnowledgeEntry struct {
	ID        uuid.UUID         `db:"id"`
	Question  string            `db:"question"`
	Answer    string            `db:"answer"`
	Category  KnowledgeCategory `db:"category"`
	IsActive  bool              `db:"is_active"`
	SortOrder int               `db:"sort_order"`
	CreatedAt time.Time         `db:"created_at"`
	UpdatedAt time.Time         `db:"updated_at"`
}

// ToFAQ strips storage fields for the scorer.
func (e *KnowledgeEntry) ToFAQ() faq.Entry {
	return faq.Entry{
		Question: e.Question,
		Answer:   e.Answer,
		Category: string(e.Category),
	}
}
