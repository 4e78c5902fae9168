// Package proposal implements the moderation-proposal repository using
// PostgreSQL. Status transitions are guarded at the SQL level so terminal
// proposals can never be re-finalized.
package proposal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres"
	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

const table = "proposals"

var columns = []string{
	"id", "kind", "target_type", "target_id", "proposer_id",
	"proposed_value", "reason", "status", "created_at",
}

// Repo provides proposal persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new proposal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new proposal and returns the persisted row.
func (r *Repo) Create(ctx context.Context, p domain.Proposal) (domain.Proposal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var valueJSON []byte
	if p.ProposedValue != nil {
		var err error
		valueJSON, err = json.Marshal(p.ProposedValue)
		if err != nil {
			return domain.Proposal{}, fmt.Errorf("proposal marshal proposed_value: %w", err)
		}
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(p.ID, p.Kind, p.TargetType, p.TargetID, p.ProposerID,
			valueJSON, p.Reason, p.Status, p.CreatedAt).
		Suffix("RETURNING " + allColumns()).
		ToSql()
	if err != nil {
		return domain.Proposal{}, fmt.Errorf("proposal build insert: %w", err)
	}

	row := q.QueryRow(ctx, sql, args...)
	created, err := scanProposal(row)
	if err != nil {
		return domain.Proposal{}, postgres.MapError(err, "proposal", p.ID)
	}
	return created, nil
}

// GetByID returns a proposal by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Proposal, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate returns a proposal by ID with a row lock. It must be
// called inside a transaction; concurrent execution attempts on the same
// proposal serialize on this lock.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Proposal, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, forUpdate bool) (domain.Proposal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return domain.Proposal{}, fmt.Errorf("proposal build select: %w", err)
	}

	p, err := scanProposal(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Proposal{}, postgres.MapError(err, "proposal", id)
	}
	return p, nil
}

// List returns proposals newest first, optionally filtered by status.
func (r *Repo) List(ctx context.Context, status *domain.ProposalStatus, limit, offset int) ([]domain.Proposal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("proposal build list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("proposal list: %w", err)
	}
	defer rows.Close()

	var proposals []domain.Proposal
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("proposal scan: %w", err)
		}
		proposals = append(proposals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("proposal rows: %w", err)
	}

	return proposals, nil
}

// MarkApproved transitions a pending proposal to APPROVED.
// Returns domain.ErrConflict if the proposal is no longer pending.
func (r *Repo) MarkApproved(ctx context.Context, id uuid.UUID) error {
	return r.finalize(ctx, id, domain.ProposalStatusApproved)
}

// MarkRejected transitions a pending proposal to REJECTED.
// Returns domain.ErrConflict if the proposal is no longer pending.
func (r *Repo) MarkRejected(ctx context.Context, id uuid.UUID) error {
	return r.finalize(ctx, id, domain.ProposalStatusRejected)
}

// finalize performs the guarded status transition. The WHERE status='PENDING'
// clause makes double-finalization impossible regardless of caller ordering.
func (r *Repo) finalize(ctx context.Context, id uuid.UUID, to domain.ProposalStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("status", to).
		Where(squirrel.Eq{"id": id, "status": domain.ProposalStatusPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("proposal build finalize: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "proposal", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("proposal %s is not pending: %w", id, domain.ErrConflict)
	}
	return nil
}

func allColumns() string {
	out := ""
	for i, c := range columns {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}

// scanProposal reads one proposal row from a pgx.Row or pgx.Rows.
func scanProposal(row pgx.Row) (domain.Proposal, error) {
	var (
		p         domain.Proposal
		valueJSON []byte
	)
	err := row.Scan(&p.ID, &p.Kind, &p.TargetType, &p.TargetID, &p.ProposerID,
		&valueJSON, &p.Reason, &p.Status, &p.CreatedAt)
	if err != nil {
		return domain.Proposal{}, err
	}

	if len(valueJSON) > 0 {
		value := make(map[string]any)
		if err := json.Unmarshal(valueJSON, &value); err != nil {
			return domain.Proposal{}, fmt.Errorf("proposal %s unmarshal proposed_value: %w", p.ID, err)
		}
		p.ProposedValue = value
	}

	return p, nil
}
