package repository

import (
	"context"
	"errors"
	"fmt"

	"hustleke/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var (
	ErrKnowledgeNotFound = errors.New("knowledge entry not found")
	ErrDuplicateQuestion = errors.New("knowledge entry with this question already exists")
)

const uniqueViolation = "23505"

const knowledgeTable = "knowledge_base"

var knowledgeColumns = []string{
	"id", "question", "answer", "category", "is_active", "sort_order", "created_at", "updated_at",
}

type KnowledgeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewKnowledgeRepository(db *pgxpool.Pool, logger *zap.Logger) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:     db,
		logger: logger,
	}
}

// ListActive returns active entries in display order. Search ties keep this order.
func (r *KnowledgeRepository) ListActive(ctx context.Context) ([]models.KnowledgeEntry, error) {
	sql, args, err := listActiveQuery().ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query knowledge base: %w", err)
	}
	defer rows.Close()

	var entries []models.KnowledgeEntry
	for rows.Next() {
		var e models.KnowledgeEntry
		if err := rows.Scan(
			&e.ID, &e.Question, &e.Answer, &e.Category, &e.IsActive, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// GetByID returns an entry whether or not it is active.
func (r *KnowledgeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.KnowledgeEntry, error) {
	sql, args, err := getByIDQuery(id).ToSql()
	if err != nil {
		return nil, err
	}

	var e models.KnowledgeEntry
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&e.ID, &e.Question, &e.Answer, &e.Category, &e.IsActive, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrKnowledgeNotFound
	}
	if err != nil {
		return nil, err
	}

	return &e, nil
}

// Create inserts a single entry. An existing question, active or not, is
// reported as ErrDuplicateQuestion and left untouched.
func (r *KnowledgeRepository) Create(ctx context.Context, entry *models.KnowledgeEntry) error {
	sql, args, err := insertQuery(entry).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateQuestion
		}
		return fmt.Errorf("failed to insert knowledge entry: %w", err)
	}
	return nil
}

// CreateBatch inserts entries, updating any existing entry with the same
// question. Used by seeding, where IDs are derived from the question.
func (r *KnowledgeRepository) CreateBatch(ctx context.Context, entries []*models.KnowledgeEntry) error {
	if len(entries) == 0 {
		return nil
	}

	sql, args, err := upsertQuery(entries).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert knowledge entries: %w", err)
	}

	r.logger.Debug("Knowledge entries upserted", zap.Int64("rows", tag.RowsAffected()))
	return nil
}

// Deactivate hides an entry from search without deleting it.
func (r *KnowledgeRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	sql, args, err := squirrel.Update(knowledgeTable).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrKnowledgeNotFound
	}
	return nil
}

func listActiveQuery() squirrel.SelectBuilder {
	return squirrel.Select(knowledgeColumns...).
		From(knowledgeTable).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("sort_order ASC", "created_at ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func getByIDQuery(id uuid.UUID) squirrel.SelectBuilder {
	return squirrel.Select(knowledgeColumns...).
		From(knowledgeTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)
}

func insertQuery(e *models.KnowledgeEntry) squirrel.InsertBuilder {
	return squirrel.Insert(knowledgeTable).
		Columns(knowledgeColumns...).
		Values(e.ID, e.Question, e.Answer, e.Category, e.IsActive, e.SortOrder, e.CreatedAt, e.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func upsertQuery(entries []*models.KnowledgeEntry) squirrel.InsertBuilder {
	builder := squirrel.Insert(knowledgeTable).
		Columns(knowledgeColumns...).
		Suffix("ON CONFLICT (question) DO UPDATE SET " +
			"answer = EXCLUDED.answer, category = EXCLUDED.category, sort_order = EXCLUDED.sort_order, " +
			"is_active = TRUE, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, e := range entries {
		builder = builder.Values(e.ID, e.Question, e.Answer, e.Category, e.IsActive, e.SortOrder, e.CreatedAt, e.UpdatedAt)
	}
	return builder
}
